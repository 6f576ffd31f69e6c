package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vedansh-code/trek-safe-backend/internal/controllers"
)

func TouristRoutes(r *gin.Engine, tourists *controllers.TouristController, tracking *controllers.TrackingController) {
	grp := r.Group("/tourists")
	{
		grp.POST("", tourists.Register)
		grp.GET("", tourists.List)
		grp.GET("/:id", tourists.Get)
		grp.GET("/:id/track", tourists.Track)
		grp.POST("/:id/location", tracking.RecordLocation)
		grp.POST("/:id/sos", tracking.RecordSos)
	}
}
