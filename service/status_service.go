package services

import (
	"fmt"
	"log"

	"oh-server/dao/redis"
	"oh-server/hours"
	"oh-server/models"
)

// StatusService evaluates venue opening hours on demand and keeps the
// latest result cached for badge and websocket consumers.
type StatusService struct {
	venueDao *redis.RedisVenueDAO
	clock    hours.Clock
}

// NewStatusService constructs a StatusService with its dependencies.
func NewStatusService(venueDao *redis.RedisVenueDAO, clock hours.Clock) *StatusService {
	return &StatusService{
		venueDao: venueDao,
		clock:    clock,
	}
}

// EvaluateVenue computes a fresh status for the venue and caches it.
func (ss *StatusService) EvaluateVenue(venueID string) (*models.StatusResult, error) {
	v, err := ss.venueDao.GetVenue(venueID)
	if err != nil {
		return nil, fmt.Errorf("venue %s not found: %w", venueID, err)
	}

	result, err := hours.Evaluate(v.OpeningHours, ss.clock.Now())
	if err != nil {
		return nil, err
	}

	// A cache write failure must not hide a valid evaluation.
	if err := ss.venueDao.SetLatestStatus(venueID, result); err != nil {
		log.Printf("[StatusService] Failed to cache status for %s: %v", venueID, err)
	}

	return result, nil
}

// GetLatestStatus returns the last cached evaluation for a venue.
func (ss *StatusService) GetLatestStatus(venueID string) (*models.StatusResult, error) {
	return ss.venueDao.GetLatestStatus(venueID)
}
