package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dr-lamia/med-nexus-portal/authentication"
	"github.com/dr-lamia/med-nexus-portal/logger"
	"github.com/dr-lamia/med-nexus-portal/models"
	"github.com/dr-lamia/med-nexus-portal/services"
	"github.com/dr-lamia/med-nexus-portal/storage"
)

const (
	chatGreeting = "Hello! I'm your AI health assistant. I can provide general medical information, but remember I'm not a replacement for professional medical advice. How can I help you today?"

	chatRefusalMessage = "I'm unable to provide information on this topic. Please try asking something else or consult with a healthcare provider."
	chatErrorMessage   = "I'm sorry, I encountered an error processing your request. Please try again later."
)

// StartChat opens a new AI health chat seeded with the fixed greeting.
func StartChat(c *gin.Context) {
	user := authentication.SessionUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No active session"})
		return
	}

	chat := &models.ChatSession{
		ID:     uuid.NewString(),
		UserID: user.ID,
		Messages: []models.Message{
			{Role: models.RoleAssistant, Content: chatGreeting},
		},
	}
	storage.Consultations.SaveChat(chat)

	c.JSON(http.StatusOK, gin.H{"chat": chat})
}

// SendChatMessage appends the user's message and exactly one assistant
// reply: the provider's answer, the fixed refusal on a safety block, or the
// fixed error message when the call fails. The list is append-only.
func SendChatMessage(c *gin.Context) {
	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	chat, ok := storage.Consultations.GetChat(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}
	if user := authentication.SessionUser(c); user == nil || user.ID != chat.UserID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	reply, err := Gemini.ChatReply(c.Request.Context(), req.Message)
	blocked := false
	switch {
	case err == nil:
	case errors.Is(err, services.ErrBlocked):
		logger.WithComponent("chat").WithError(err).Warn("chat reply blocked by safety settings")
		reply = chatRefusalMessage
		blocked = true
	default:
		logger.WithComponent("chat").WithError(err).Error("error calling Gemini API")
		reply = chatErrorMessage
	}

	// Both messages land in one locked update so concurrent sends keep the
	// transcript alternating and append-only.
	updated, err := storage.Consultations.UpdateChat(chat.ID, func(stored *models.ChatSession) error {
		stored.Messages = append(stored.Messages,
			models.Message{Role: models.RoleUser, Content: req.Message},
			models.Message{Role: models.RoleAssistant, Content: reply},
		)
		return nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Chat not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"chat":    updated,
		"reply":   reply,
		"blocked": blocked,
	})
}
