// File: handlers/chat.go
package handlers

import (
	"errors"
	"net/http"

	ai "github.com/J-Hunxho/LowkeyLuxuryMain/services/intelligence"
	"github.com/J-Hunxho/LowkeyLuxuryMain/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the chat collaborator over HTTP.
type ChatHandler struct {
	Svc ai.ChatService
}

func NewChatHandler(svc ai.ChatService) *ChatHandler {
	return &ChatHandler{Svc: svc}
}

// CreateSessionHandler opens a new chat session.
func (h *ChatHandler) CreateSessionHandler(c *gin.Context) {
	sessionID, err := h.Svc.CreateSession(c.Request.Context())
	if err != nil {
		if errors.Is(err, ai.ErrChatUnavailable) {
			utils.JSONError(c, http.StatusServiceUnavailable, "Chat is not configured", "")
			return
		}
		getLogger(c).Error("failed to create chat session", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create chat session", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sessionID})
}

// SendMessageHandler forwards one user message and returns the reply.
func (h *ChatHandler) SendMessageHandler(c *gin.Context) {
	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
		return
	}

	reply, err := h.Svc.SendMessage(c.Request.Context(), c.Param("sessionID"), req.Text)
	if err != nil {
		switch {
		case errors.Is(err, ai.ErrChatUnavailable):
			utils.JSONError(c, http.StatusServiceUnavailable, "Chat is not configured", "")
		case errors.Is(err, ai.ErrChatSessionNotFound):
			utils.JSONError(c, http.StatusNotFound, "Chat session not found or expired", "")
		default:
			getLogger(c).Error("failed to send chat message", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "Failed to send message", "")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GetTranscriptHandler returns the session's transcript.
func (h *ChatHandler) GetTranscriptHandler(c *gin.Context) {
	transcript, err := h.Svc.GetTranscript(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, ai.ErrChatSessionNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Chat session not found or expired", "")
			return
		}
		getLogger(c).Error("failed to fetch transcript", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch transcript", "")
		return
	}
	c.JSON(http.StatusOK, transcript)
}
