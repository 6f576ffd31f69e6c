package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	logrus "github.com/sirupsen/logrus"
	"github.com/twpayne/go-geom"
	gjson "github.com/twpayne/go-geom/encoding/geojson"
	"gorm.io/gorm"

	"github.com/Vedansh-code/trek-safe-backend/internal/models"
	"github.com/Vedansh-code/trek-safe-backend/internal/store"
)

// registerTouristInput defines the expected JSON for registration.
// Age is a pointer so a missing field is rejected rather than coerced to 0.
type registerTouristInput struct {
	Name             string `json:"name" binding:"required"`
	Age              *int   `json:"age" binding:"required"`
	IDProof          string `json:"idProof" binding:"required"`
	EmergencyContact string `json:"emergencyContact" binding:"required"`
	Itinerary        string `json:"itinerary"`
}

// touristDetail is the single-tourist response: profile fields flattened
// alongside the full ping and alert history.
type touristDetail struct {
	models.Tourist
	Locations []models.LocationPing `json:"locations"`
	SosAlerts []models.SosAlert     `json:"sosAlerts"`
}

type TouristController struct {
	Store *store.Store
}

func NewTouristController(s *store.Store) *TouristController {
	return &TouristController{Store: s}
}

// Register creates a tourist profile and returns the stored record.
func (tc *TouristController) Register(c *gin.Context) {
	var input registerTouristInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid registration input: " + err.Error()})
		return
	}

	tourist, err := tc.Store.CreateTourist(c.Request.Context(), input.Name, *input.Age, input.IDProof, input.EmergencyContact, input.Itinerary)
	if err != nil {
		logrus.WithError(err).Error("Failed to create tourist")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register tourist: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tourist)
}

// List returns every registered tourist, newest first.
func (tc *TouristController) List(c *gin.Context) {
	tourists, err := tc.Store.ListTourists(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list tourists")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error listing tourists: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, tourists)
}

// Get returns one tourist with its full location and SOS history.
func (tc *TouristController) Get(c *gin.Context) {
	id := c.Param("id")

	tourist, err := tc.Store.GetTourist(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found"})
		} else {
			logrus.WithError(err).WithField("tourist_id", id).Error("Database error fetching tourist")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	locations, err := tc.Store.ListLocations(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}
	alerts, err := tc.Store.ListSosAlerts(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, touristDetail{
		Tourist:   tourist,
		Locations: locations,
		SosAlerts: alerts,
	})
}

// Track exports a tourist's ping trail as a GeoJSON LineString. With
// fewer than two pings there is no line, so geojson is null.
func (tc *TouristController) Track(c *gin.Context) {
	id := c.Param("id")

	if _, err := tc.Store.GetTourist(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tourist not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		}
		return
	}

	points, err := tc.Store.TrackPoints(c.Request.Context(), id)
	if err != nil {
		logrus.WithError(err).WithField("tourist_id", id).Error("Failed to load track points")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	resp := gin.H{
		"touristId": id,
		"points":    len(points),
		"geojson":   nil,
	}

	if len(points) >= 2 {
		flat := make([]float64, 0, len(points)*2)
		for _, p := range points {
			flat = append(flat, p.Lng, p.Lat)
		}
		line := geom.NewLineStringFlat(geom.XY, flat)
		encoded, err := gjson.Marshal(line)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode track: " + err.Error()})
			return
		}
		resp["geojson"] = json.RawMessage(encoded)
	}

	c.JSON(http.StatusOK, resp)
}
