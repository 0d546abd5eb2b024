package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/SAP-F-2025/employability-assessment/internal/utils"
	"github.com/gin-gonic/gin"
)

type ParticipantHandler struct {
	BaseHandler
	participantService services.ParticipantService
}

func NewParticipantHandler(participantService services.ParticipantService, logger utils.Logger) *ParticipantHandler {
	return &ParticipantHandler{
		BaseHandler:        NewBaseHandler(logger),
		participantService: participantService,
	}
}

// RegisterParticipant registers a participant before they take the assessment
// @Summary Register participant
// @Tags participants
// @Accept json
// @Produce json
// @Param participant body models.RegisterParticipantRequest true "Participant data"
// @Success 200 {object} models.RegisterParticipantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /users [post]
func (h *ParticipantHandler) RegisterParticipant(c *gin.Context) {
	var req models.RegisterParticipantRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.participantService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
