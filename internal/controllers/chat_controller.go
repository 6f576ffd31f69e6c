package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"github.com/Vedansh-code/trek-safe-backend/internal/chat"
)

type chatInput struct {
	Message string `json:"message" binding:"required"`
}

type ChatController struct {
	Relay chat.Relay
}

func NewChatController(relay chat.Relay) *ChatController {
	return &ChatController{Relay: relay}
}

// Ask forwards the message to the safety assistant and relays its reply.
// Any relay failure surfaces as a single generic error.
func (cc *ChatController) Ask(c *gin.Context) {
	var input chatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid chat input: " + err.Error()})
		return
	}

	reply, err := cc.Relay.Send(c.Request.Context(), input.Message)
	if err != nil {
		logrus.WithError(err).Error("Chatbot relay failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Chatbot request failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
