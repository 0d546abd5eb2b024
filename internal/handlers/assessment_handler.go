package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/SAP-F-2025/employability-assessment/internal/utils"
	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	BaseHandler
	assessmentService services.AssessmentService
}

func NewAssessmentHandler(assessmentService services.AssessmentService, logger utils.Logger) *AssessmentHandler {
	return &AssessmentHandler{
		BaseHandler:       NewBaseHandler(logger),
		assessmentService: assessmentService,
	}
}

// SubmitAssessment scores and stores a completed answer set
// @Summary Submit assessment
// @Tags assessments
// @Accept json
// @Produce json
// @Param submission body models.SubmitAssessmentRequest true "Answers"
// @Success 200 {object} models.SubmitAssessmentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /assessments [post]
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	var req models.SubmitAssessmentRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.assessmentService.Submit(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Assessment submitted", "assessment_id", resp.ID, "total_score", resp.Result.TotalScore)
	c.JSON(http.StatusOK, resp)
}

// GetLatestAssessment returns the latest result of the participant with the given phone
// @Summary Latest assessment
// @Tags assessments
// @Produce json
// @Param phone path string true "Phone"
// @Success 200 {object} models.AssessmentReport
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /assessments/{phone}/latest [get]
func (h *AssessmentHandler) GetLatestAssessment(c *gin.Context) {
	report, err := h.assessmentService.GetLatestByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
