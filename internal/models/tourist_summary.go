package models

import "time"

// TouristSummary is one row of the police-facing view: a tourist's
// profile joined to its most recent location ping and SOS alert.
// The pointer fields are null when the tourist has no pings or alerts.
type TouristSummary struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Age              int        `json:"age"`
	IDProof          string     `json:"idProof" gorm:"column:id_proof"`
	EmergencyContact string     `json:"emergencyContact"`
	Itinerary        string     `json:"itinerary"`
	CurrentLat       *float64   `json:"currentLat"`
	CurrentLng       *float64   `json:"currentLng"`
	LastSOS          *time.Time `json:"lastSOS" gorm:"column:last_sos"`
}
