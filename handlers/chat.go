package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"medassist/models"
	"medassist/services/chat"
	"medassist/utils"
)

// ChatService is wired at startup before routes are registered.
var ChatService *chat.Service

// HandleChat processes one chat turn. A missing session id gets a fresh one
// so the client can keep the conversation going.
func HandleChat(c *gin.Context) {
	if ChatService == nil || !ChatService.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chat service is not available. Please try again later."})
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	reply, contextTag, err := ChatService.Handle(c.Request.Context(), sessionID, req.Query)
	if err != nil {
		utils.GetLogger().Error("chat turn failed",
			zap.String("sessionID", sessionID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ChatResponse{
			Response:  "Sorry, something went wrong while processing your request.",
			SessionID: sessionID,
			Context:   models.ContextMixed,
			Error:     utils.Truncate(err.Error(), 50),
		})
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		Response:  reply,
		SessionID: sessionID,
		Context:   contextTag,
	})
}
