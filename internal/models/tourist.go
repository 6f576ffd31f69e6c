package models

import "time"

// Tourist is a registered trekker profile, the root entity all
// tracking data attaches to.
type Tourist struct {
	ID               string    `json:"id" gorm:"primaryKey"` // "TRS-" + 9 uppercase alphanumerics
	Name             string    `json:"name" gorm:"not null"`
	Age              int       `json:"age" gorm:"not null"`
	IDProof          string    `json:"idProof" gorm:"column:id_proof;not null"`
	EmergencyContact string    `json:"emergencyContact" gorm:"not null"`
	Itinerary        string    `json:"itinerary"`
	CreatedAt        time.Time `json:"createdAt" gorm:"index;not null"`
}

func (Tourist) TableName() string {
	return "tourists"
}
