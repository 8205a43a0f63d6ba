package redis

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"oh-server/db"
	"oh-server/models"
	"oh-server/models/venue"
)

const VENUE_HOURS_KEY_FORMAT = "venue_hours_v1:%s"

// VENUE_STATUS_KEY_FORMAT is used to cache the latest status per venue.
const VENUE_STATUS_KEY_FORMAT = "venue_status_v1:%s"

// RedisVenueDAO handles venue and status operations using Redis.
type RedisVenueDAO struct {
	client db.RedisClient
}

// NewRedisVenueDAO initializes a RedisVenueDAO with the Redis client.
func NewRedisVenueDAO(client db.RedisClient) *RedisVenueDAO {
	return &RedisVenueDAO{client: client}
}

// UpsertVenue stores the venue record with its opening-hours string.
func (dao *RedisVenueDAO) UpsertVenue(v venue.Venue) error {
	key := fmt.Sprintf(VENUE_HOURS_KEY_FORMAT, v.VenueID)
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal venue %s: %w", v.VenueID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set venue in redis: %w", err)
	}
	return nil
}

// GetVenue retrieves a venue record by its ID.
func (dao *RedisVenueDAO) GetVenue(venueID string) (*venue.Venue, error) {
	key := fmt.Sprintf(VENUE_HOURS_KEY_FORMAT, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get venue from redis: %w", err)
	}
	var v venue.Venue
	if err := json.Unmarshal([]byte(str), &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal venue JSON: %w", err)
	}
	return &v, nil
}

// DeleteVenue removes a venue record and its cached status.
func (dao *RedisVenueDAO) DeleteVenue(venueID string) error {
	key := fmt.Sprintf(VENUE_HOURS_KEY_FORMAT, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete venue key %s: %w", key, err)
	}
	if err := dao.DeleteLatestStatus(venueID); err != nil {
		log.Printf("[RedisVenueDAO] Failed to drop status cache for %s: %v", venueID, err)
	}
	return nil
}

// ListVenueIDs returns all venue IDs present in the store.
func (dao *RedisVenueDAO) ListVenueIDs() ([]string, error) {
	pattern := fmt.Sprintf(VENUE_HOURS_KEY_FORMAT, "*")
	keys, err := dao.client.Keys(pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to list venue keys: %w", err)
	}

	prefix := fmt.Sprintf(VENUE_HOURS_KEY_FORMAT, "")
	ids := make([]string, 0, len(keys))
	for _, k := range keys {
		ids = append(ids, strings.TrimPrefix(k, prefix))
	}
	return ids, nil
}

// SetLatestStatus caches the latest evaluation result for a venue.
func (dao *RedisVenueDAO) SetLatestStatus(venueID string, result *models.StatusResult) error {
	key := fmt.Sprintf(VENUE_STATUS_KEY_FORMAT, venueID)
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal status for venue %s: %w", venueID, err)
	}
	if err := dao.client.Set(key, string(data)); err != nil {
		return fmt.Errorf("failed to set status in redis: %w", err)
	}
	return nil
}

// GetLatestStatus retrieves the cached latest status for a venue.
func (dao *RedisVenueDAO) GetLatestStatus(venueID string) (*models.StatusResult, error) {
	key := fmt.Sprintf(VENUE_STATUS_KEY_FORMAT, venueID)
	str, err := dao.client.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to get status from redis: %w", err)
	}
	var result models.StatusResult
	if err := json.Unmarshal([]byte(str), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal status JSON: %w", err)
	}
	return &result, nil
}

// DeleteLatestStatus drops the cached status for a venue.
func (dao *RedisVenueDAO) DeleteLatestStatus(venueID string) error {
	key := fmt.Sprintf(VENUE_STATUS_KEY_FORMAT, venueID)
	if err := dao.client.Del(key); err != nil {
		return fmt.Errorf("failed to delete status key %s: %w", key, err)
	}
	return nil
}
