package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Vedansh-code/trek-safe-backend/internal/controllers"
)

func PoliceRoutes(r *gin.Engine, police *controllers.PoliceController) {
	grp := r.Group("/police")
	{
		grp.GET("/tourists", police.Summary)
	}
}
