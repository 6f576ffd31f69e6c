package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vedansh-code/trek-safe-backend/internal/controllers"
)

func ChatRoutes(r *gin.Engine, chat *controllers.ChatController) {
	r.POST("/chat", chat.Ask)
}
