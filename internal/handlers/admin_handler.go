package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/SAP-F-2025/employability-assessment/internal/utils"
	"github.com/gin-gonic/gin"
)

const (
	messageParticipantDeleted = "用户数据删除成功"
	xlsxContentType           = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type AdminHandler struct {
	BaseHandler
	adminService  services.AdminService
	exportService services.ExportService
}

func NewAdminHandler(adminService services.AdminService, exportService services.ExportService, logger utils.Logger) *AdminHandler {
	return &AdminHandler{
		BaseHandler:   NewBaseHandler(logger),
		adminService:  adminService,
		exportService: exportService,
	}
}

func (h *AdminHandler) ListParticipants(c *gin.Context) {
	participants, err := h.adminService.ListParticipants(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, participants)
}

func (h *AdminHandler) GetStats(c *gin.Context) {
	stats, err := h.adminService.Stats(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) DeleteParticipant(c *gin.Context) {
	id := ParseIDParam(c, "id")
	if id == 0 {
		return
	}

	if err := h.adminService.DeleteParticipant(c.Request.Context(), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Participant deleted", "participant_id", id)
	c.JSON(http.StatusOK, MessageResponse{Message: messageParticipantDeleted})
}

// ExportWorkbook downloads every participant and score as an xlsx file
func (h *AdminHandler) ExportWorkbook(c *gin.Context) {
	data, err := h.exportService.ExportWorkbook(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("employability-assessment-%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

// GetReport downloads the JSON report of one participant
func (h *AdminHandler) GetReport(c *gin.Context) {
	id := ParseIDParam(c, "id")
	if id == 0 {
		return
	}

	report, err := h.adminService.Report(c.Request.Context(), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="assessment-report-%d.json"`, id))
	c.JSON(http.StatusOK, report)
}
