package routes

import (
	"net/http"

	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"

	"github.com/Vedansh-code/trek-safe-backend/internal/controllers"
	"github.com/Vedansh-code/trek-safe-backend/internal/middleware"
)

// Controllers bundles everything the router dispatches to.
type Controllers struct {
	Tourists *controllers.TouristController
	Tracking *controllers.TrackingController
	Police   *controllers.PoliceController
	Chat     *controllers.ChatController
	Hub      *controllers.AlertHub
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(ginlogger.SetLogger())
	r.Use(middleware.RequestID())

	// Liveness probe
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Trek-Safe backend is running")
	})

	TouristRoutes(r, ctl.Tourists, ctl.Tracking)
	SosRoutes(r, ctl.Tracking)
	PoliceRoutes(r, ctl.Police)
	ChatRoutes(r, ctl.Chat)
	WebSocketRoutes(r, ctl.Hub)

	return r
}
