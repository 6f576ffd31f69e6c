package models

import "time"

// LocationPing is one timestamped GPS report from a tourist.
// Rows are append-only; they are never updated or deleted.
type LocationPing struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	TouristID string    `json:"touristId" gorm:"column:tourist_id;index:idx_location_tourist_time,priority:1;not null"`
	Lat       float64   `json:"lat" gorm:"not null"`
	Lng       float64   `json:"lng" gorm:"not null"`
	Timestamp time.Time `json:"timestamp" gorm:"index:idx_location_tourist_time,priority:2;not null"`
}

func (LocationPing) TableName() string {
	return "locations"
}
