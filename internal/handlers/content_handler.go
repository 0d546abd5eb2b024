package handlers

import (
	"net/http"

	"github.com/SAP-F-2025/employability-assessment/internal/models"
	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/SAP-F-2025/employability-assessment/internal/utils"
	"github.com/gin-gonic/gin"
)

// ContentHandler serves the questionnaire and stateless scoring endpoints
type ContentHandler struct {
	BaseHandler
	contentService services.ContentService
}

func NewContentHandler(contentService services.ContentService, logger utils.Logger) *ContentHandler {
	return &ContentHandler{
		BaseHandler:    NewBaseHandler(logger),
		contentService: contentService,
	}
}

func (h *ContentHandler) GetQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Questions())
}

func (h *ContentHandler) GetSuggestions(c *gin.Context) {
	c.JSON(http.StatusOK, h.contentService.Suggestions())
}

// PreviewScore scores a complete answer set without storing it
func (h *ContentHandler) PreviewScore(c *gin.Context) {
	var req models.ScoreRequest
	if !h.BindJSON(c, &req) {
		return
	}

	evaluation, err := h.contentService.Score(req.Answers)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

// GetProgress reports completion statistics for a partial answer set
func (h *ContentHandler) GetProgress(c *gin.Context) {
	var req models.ProgressRequest
	if !h.BindJSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.contentService.Progress(req.Answers))
}
