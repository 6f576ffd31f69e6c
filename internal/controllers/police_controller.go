package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"

	"github.com/Vedansh-code/trek-safe-backend/internal/store"
)

type PoliceController struct {
	Store *store.Store
}

func NewPoliceController(s *store.Store) *PoliceController {
	return &PoliceController{Store: s}
}

// Summary returns one row per tourist with the latest known position
// and the timestamp of the most recent SOS alert, if any.
func (pc *PoliceController) Summary(c *gin.Context) {
	rows, err := pc.Store.PoliceSummary(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to build police summary")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error building summary: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
