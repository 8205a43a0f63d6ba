package services

import (
	"log"
	"time"

	"oh-server/api/content"
	"oh-server/dao/redis"
	"oh-server/hours"
)

// CatalogRefresherService periodically syncs the venue catalog from the
// content source into Redis and reconciles the status pollers.
type CatalogRefresherService struct {
	venueDao   *redis.RedisVenueDAO
	contentAPI content.ContentAPI
	pollers    *PollerManager
}

// NewCatalogRefresherService constructs a new refresher with dependencies.
func NewCatalogRefresherService(
	venueDao *redis.RedisVenueDAO,
	contentAPI content.ContentAPI,
	pollers *PollerManager,
) *CatalogRefresherService {
	return &CatalogRefresherService{
		venueDao:   venueDao,
		contentAPI: contentAPI,
		pollers:    pollers,
	}
}

// StartPeriodicJob launches the background loop at the given interval.
func (cr *CatalogRefresherService) StartPeriodicJob(interval time.Duration) {
	go cr.startPeriodicJob(interval)
}

func (cr *CatalogRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[CatalogRefresherService] Running periodic catalog refresh.")
		if err := cr.RefreshCatalog(); err != nil {
			log.Printf("[CatalogRefresherService] RefreshCatalog returned error: %v", err)
		} else {
			log.Println("[CatalogRefresherService] RefreshCatalog completed successfully.")
		}
	}
}

// RefreshCatalog fetches the catalog, upserts venues with valid hours,
// and reconciles the pollers with the refreshed store.
func (cr *CatalogRefresherService) RefreshCatalog() error {
	resp, err := cr.contentAPI.GetVenueCatalog()
	if err != nil {
		log.Printf("[CatalogRefresherService] Failed to fetch venue catalog: %v", err)
		return err
	}
	log.Printf("[CatalogRefresherService] Catalog fetched: %d venues", len(resp.Venues))

	seenIDs := make(map[string]struct{})
	for _, v := range resp.Venues {
		if _, dup := seenIDs[v.VenueID]; dup {
			log.Printf("[CatalogRefresherService] Skipping duplicate venue ID=%s", v.VenueID)
			continue
		}
		seenIDs[v.VenueID] = struct{}{}

		// Reject malformed hours here so pollers only ever see
		// strings that evaluate cleanly.
		if _, err := hours.ParseHours(v.OpeningHours); err != nil {
			log.Printf("[CatalogRefresherService] Skipping venue %s: %v", v.VenueID, err)
			continue
		}

		log.Printf("[CatalogRefresherService] Upserting venue id=%s name=%q", v.VenueID, v.VenueName)
		if err := cr.venueDao.UpsertVenue(v); err != nil {
			log.Printf("[CatalogRefresherService] Upsert failed for %s: %v", v.VenueID, err)
		}
	}

	return cr.pollers.SyncFromStore()
}
