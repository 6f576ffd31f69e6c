package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/Vedansh-code/trek-safe-backend/internal/store"
)

// coordinatesInput defines the expected JSON for pings and SOS alerts.
// Pointers so that 0 is a valid coordinate but a missing field is not.
type coordinatesInput struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type TrackingController struct {
	Store *store.Store
	Hub   *AlertHub
}

func NewTrackingController(s *store.Store, hub *AlertHub) *TrackingController {
	return &TrackingController{Store: s, Hub: hub}
}

// RecordLocation appends a GPS ping for a tourist.
func (tc *TrackingController) RecordLocation(c *gin.Context) {
	touristID := c.Param("id")

	var input coordinatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid location input: " + err.Error()})
		return
	}

	ping, err := tc.Store.RecordLocation(c.Request.Context(), touristID, *input.Lat, *input.Lng)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found"})
		} else {
			logrus.WithError(err).WithField("tourist_id", touristID).Error("Failed to record location")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record location: " + err.Error()})
		}
		return
	}

	tc.Hub.Publish(AlertEvent{
		Type:      "location",
		TouristID: ping.TouristID,
		Lat:       ping.Lat,
		Lng:       ping.Lng,
		Timestamp: ping.Timestamp,
	})

	c.JSON(http.StatusCreated, gin.H{
		"touristId": ping.TouristID,
		"lat":       ping.Lat,
		"lng":       ping.Lng,
		"timestamp": ping.Timestamp,
	})
}

// RecordSos appends an emergency alert for a tourist.
func (tc *TrackingController) RecordSos(c *gin.Context) {
	touristID := c.Param("id")

	var input coordinatesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid SOS input: " + err.Error()})
		return
	}

	alert, err := tc.Store.RecordSos(c.Request.Context(), touristID, *input.Lat, *input.Lng)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found"})
		} else {
			logrus.WithError(err).WithField("tourist_id", touristID).Error("Failed to record SOS alert")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record SOS alert: " + err.Error()})
		}
		return
	}

	logrus.WithFields(logrus.Fields{
		"tourist_id": alert.TouristID,
		"lat":        alert.Lat,
		"lng":        alert.Lng,
	}).Warn("SOS alert recorded")

	tc.Hub.Publish(AlertEvent{
		Type:      "sos",
		TouristID: alert.TouristID,
		Lat:       alert.Lat,
		Lng:       alert.Lng,
		Timestamp: alert.Timestamp,
	})

	c.JSON(http.StatusCreated, gin.H{
		"message":   "SOS alert recorded",
		"touristId": alert.TouristID,
		"lat":       alert.Lat,
		"lng":       alert.Lng,
	})
}

// ListAllSos returns every SOS alert across all tourists, newest first.
func (tc *TrackingController) ListAllSos(c *gin.Context) {
	alerts, err := tc.Store.ListAllSosAlerts(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list SOS alerts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing SOS alerts: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, alerts)
}
