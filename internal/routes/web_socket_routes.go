package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vedansh-code/trek-safe-backend/internal/controllers"
)

func WebSocketRoutes(r *gin.Engine, hub *controllers.AlertHub) {
	ws := r.Group("/ws")
	{
		ws.GET("/police", hub.HandlePoliceWebSocket)
	}
}
