package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vedansh-code/trek-safe-backend/internal/controllers"
)

func SosRoutes(r *gin.Engine, tracking *controllers.TrackingController) {
	r.GET("/sos_alerts", tracking.ListAllSos)
}
