package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/services"
)

type FeedbackHandler struct {
	feedbackService services.FeedbackService
}

func NewFeedbackHandler(feedbackService services.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

type submitFeedbackRequest struct {
	Message        string  `json:"message"`
	EmotionalState *string `json:"emotionalState"`
}

func (fh *FeedbackHandler) Submit(c *gin.Context) {
	var req submitFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := fh.feedbackService.Submit(c.Request.Context(), req.Message, req.EmotionalState); err != nil {
		RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true})
}

func (fh *FeedbackHandler) List(c *gin.Context) {
	rows, err := fh.feedbackService.List(c.Request.Context())
	if err != nil {
		RespondError(c, http.StatusInternalServerError, err)
		return
	}
	RespondOK(c, rows)
}
