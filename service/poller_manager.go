package services

import (
	"log"
	"sync"
	"time"

	"oh-server/dao/redis"
	"oh-server/hours"
)

// PollerManager runs one StatusPoller per venue in the store and fans
// every published result out to a single shared subscriber.
type PollerManager struct {
	venueDao   *redis.RedisVenueDAO
	clock      hours.Clock
	interval   time.Duration
	subscriber Subscriber

	mu      sync.Mutex
	pollers map[string]*StatusPoller
}

// NewPollerManager constructs a manager with its dependencies.
func NewPollerManager(
	venueDao *redis.RedisVenueDAO,
	clock hours.Clock,
	interval time.Duration,
	subscriber Subscriber,
) *PollerManager {
	return &PollerManager{
		venueDao:   venueDao,
		clock:      clock,
		interval:   interval,
		subscriber: subscriber,
		pollers:    make(map[string]*StatusPoller),
	}
}

// SyncFromStore reconciles the running pollers with the venues in the
// store: new venues get a poller, changed hours restart the existing
// one, vanished venues are stopped and dropped.
func (pm *PollerManager) SyncFromStore() error {
	ids, err := pm.venueDao.ListVenueIDs()
	if err != nil {
		return err
	}

	pm.mu.Lock()
	defer pm.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		v, err := pm.venueDao.GetVenue(id)
		if err != nil {
			log.Printf("[PollerManager] Skipping venue %s: %v", id, err)
			continue
		}
		seen[id] = struct{}{}

		if poller, ok := pm.pollers[id]; ok {
			if poller.Hours() != v.OpeningHours {
				log.Printf("[PollerManager] Hours changed for %s, restarting cadence", id)
				poller.UpdateHours(v.OpeningHours)
			}
			continue
		}

		log.Printf("[PollerManager] Starting poller for venue %s", id)
		poller := NewStatusPoller(id, v.OpeningHours, pm.interval, pm.clock, pm.subscriber)
		pm.pollers[id] = poller
		poller.Start()
	}

	for id, poller := range pm.pollers {
		if _, ok := seen[id]; !ok {
			log.Printf("[PollerManager] Stopping poller for removed venue %s", id)
			poller.Stop()
			delete(pm.pollers, id)
		}
	}

	return nil
}

// StopAll tears down every running poller.
func (pm *PollerManager) StopAll() {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	for id, poller := range pm.pollers {
		poller.Stop()
		delete(pm.pollers, id)
	}
}

// PollerCount returns the number of active pollers.
func (pm *PollerManager) PollerCount() int {
	pm.mu.Lock()
	defer pm.mu.Unlock()
	return len(pm.pollers)
}
