package models

import "time"

// SosAlert is one timestamped emergency signal from a tourist.
// Same append-only shape as LocationPing.
type SosAlert struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TouristID string    `json:"touristId" gorm:"column:tourist_id;index:idx_sos_tourist_time,priority:1;not null"`
	Lat       float64   `json:"lat" gorm:"not null"`
	Lng       float64   `json:"lng" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index:idx_sos_tourist_time,priority:2;not null"`
}

func (SosAlert) TableName() string {
	return "sos_alerts"
}
