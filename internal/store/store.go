// Package store owns the three record kinds (tourists, location pings,
// SOS alerts) and every query the transport layer needs. No other
// component touches the tables directly.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/Vedansh-code/trek-safe-backend/internal/ident"
	"github.com/Vedansh-code/trek-safe-backend/internal/models"
)

// maxIDAttempts bounds the retry loop on tourist-id collisions. A
// collision on the 9-character suffix is astronomically rare, so more
// than a handful of retries means something else is wrong.
const maxIDAttempts = 5

type Store struct {
	db *gorm.DB

	// Swappable in tests to force id collisions or fix timestamps.
	newID func() string
	now   func() time.Time
}

func New(db *gorm.DB) *Store {
	return &Store{
		db:    db,
		newID: ident.NewTouristID,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// CreateTourist persists a new profile under a freshly generated id.
// Duplicate-key failures from the primary key are retried with a new id.
func (s *Store) CreateTourist(ctx context.Context, name string, age int, idProof, emergencyContact, itinerary string) (models.Tourist, error) {
	var lastErr error
	for attempt := 0; attempt < maxIDAttempts; attempt++ {
		tourist := models.Tourist{
			ID:               s.newID(),
			Name:             name,
			Age:              age,
			IDProof:          idProof,
			EmergencyContact: emergencyContact,
			Itinerary:        itinerary,
			CreatedAt:        s.now(),
		}

		err := s.db.WithContext(ctx).Create(&tourist).Error
		if err == nil {
			return tourist, nil
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Tourist{}, err
		}
		lastErr = err
	}

	return models.Tourist{}, fmt.Errorf("tourist id collision after %d attempts: %w", maxIDAttempts, lastErr)
}

// GetTourist returns gorm.ErrRecordNotFound when no profile matches.
func (s *Store) GetTourist(ctx context.Context, id string) (models.Tourist, error) {
	var tourist models.Tourist
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&tourist).Error
	return tourist, err
}

// ListTourists returns every profile, newest registration first.
func (s *Store) ListTourists(ctx context.Context) ([]models.Tourist, error) {
	var tourists []models.Tourist
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&tourists).Error
	return tourists, err
}

// RecordLocation appends a ping for an existing tourist. A ping for an
// unknown tourist is rejected with gorm.ErrRecordNotFound instead of
// silently orphaning the row.
func (s *Store) RecordLocation(ctx context.Context, touristID string, lat, lng float64) (models.LocationPing, error) {
	if err := s.touristExists(ctx, touristID); err != nil {
		return models.LocationPing{}, err
	}

	ping := models.LocationPing{
		TouristID: touristID,
		Lat:       lat,
		Lng:       lng,
		Timestamp: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&ping).Error; err != nil {
		return models.LocationPing{}, err
	}
	return ping, nil
}

// RecordSos appends an emergency signal, with the same existence check
// as RecordLocation.
func (s *Store) RecordSos(ctx context.Context, touristID string, lat, lng float64) (models.SosAlert, error) {
	if err := s.touristExists(ctx, touristID); err != nil {
		return models.SosAlert{}, err
	}

	alert := models.SosAlert{
		TouristID: touristID,
		Lat:       lat,
		Lng:       lng,
		Timestamp: s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&alert).Error; err != nil {
		return models.SosAlert{}, err
	}
	return alert, nil
}

// ListLocations returns a tourist's pings newest first. Timestamp ties
// fall back to insertion order.
func (s *Store) ListLocations(ctx context.Context, touristID string) ([]models.LocationPing, error) {
	var pings []models.LocationPing
	err := s.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Order("timestamp DESC, id DESC").
		Find(&pings).Error
	return pings, err
}

// ListSosAlerts returns a tourist's alerts newest first.
func (s *Store) ListSosAlerts(ctx context.Context, touristID string) ([]models.SosAlert, error) {
	var alerts []models.SosAlert
	err := s.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Order("timestamp DESC, id DESC").
		Find(&alerts).Error
	return alerts, err
}

// ListAllSosAlerts returns every alert across all tourists, newest first.
func (s *Store) ListAllSosAlerts(ctx context.Context) ([]models.SosAlert, error) {
	var alerts []models.SosAlert
	err := s.db.WithContext(ctx).
		Order("timestamp DESC, id DESC").
		Find(&alerts).Error
	return alerts, err
}

// TrackPoints returns a tourist's pings oldest first, the order a path
// line is drawn in.
func (s *Store) TrackPoints(ctx context.Context, touristID string) ([]models.LocationPing, error) {
	var pings []models.LocationPing
	err := s.db.WithContext(ctx).
		Where("tourist_id = ?", touristID).
		Order("timestamp ASC, id ASC").
		Find(&pings).Error
	return pings, err
}

// PoliceSummary joins every tourist to its single most recent ping and
// most recent alert. Tourists with neither still get a row, with null
// coordinates and lastSOS. Ties on timestamp are broken by the
// monotonically increasing row id, i.e. the last inserted row wins.
func (s *Store) PoliceSummary(ctx context.Context) ([]models.TouristSummary, error) {
	var rows []models.TouristSummary
	err := s.db.WithContext(ctx).Raw(`
		SELECT t.id, t.name, t.age, t.id_proof, t.emergency_contact, t.itinerary,
		       l.lat AS current_lat, l.lng AS current_lng,
		       s.timestamp AS last_sos
		FROM tourists t
		LEFT JOIN locations l ON l.id = (
			SELECT id FROM locations
			WHERE tourist_id = t.id
			ORDER BY timestamp DESC, id DESC
			LIMIT 1
		)
		LEFT JOIN sos_alerts s ON s.id = (
			SELECT id FROM sos_alerts
			WHERE tourist_id = t.id
			ORDER BY timestamp DESC, id DESC
			LIMIT 1
		)
		ORDER BY t.created_at DESC`).
		Scan(&rows).Error
	return rows, err
}

func (s *Store) touristExists(ctx context.Context, id string) error {
	var tourist models.Tourist
	return s.db.WithContext(ctx).Select("id").Where("id = ?", id).First(&tourist).Error
}
