package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/saladbowl/saladbowl-backend/internal/services"
)

type ChatHandler struct {
	chatService services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) NewSession(c *gin.Context) {
	id, transcript := ch.chatService.NewSession()
	c.JSON(http.StatusCreated, gin.H{"sessionId": id, "messages": transcript})
}

func (ch *ChatHandler) Transcript(c *gin.Context) {
	transcript, err := ch.chatService.Transcript(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusNotFound, err)
		return
	}
	RespondOK(c, gin.H{"messages": transcript})
}

type sendMessageRequest struct {
	Text string `json:"text"`
}

func (ch *ChatHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err)
		return
	}
	delta, err := ch.chatService.SendMessage(c.Request.Context(), c.Param("id"), req.Text)
	if err != nil {
		if errors.Is(err, services.ErrSessionNotFound) {
			RespondError(c, http.StatusNotFound, err)
			return
		}
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"messages": delta})
}
