package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"oh-server/dao/redis"
	"oh-server/hours"
	"oh-server/models"
	services "oh-server/service"
	"oh-server/util"
)

const VENUE_ID_PATH_ARG = "venueId"

// BadgeResponse is the compact form the UI badge polls once a minute.
type BadgeResponse struct {
	VenueID string        `json:"venue_id"`
	Status  models.Status `json:"status"`
	Color   string        `json:"color"`
	Glyph   string        `json:"glyph"`
	Message string        `json:"message"`
}

type StatusHandler struct {
	statusService *services.StatusService
	venueDao      *redis.RedisVenueDAO
}

func NewStatusHandler(statusService *services.StatusService, venueDao *redis.RedisVenueDAO) *StatusHandler {
	return &StatusHandler{
		statusService: statusService,
		venueDao:      venueDao,
	}
}

// GetVenueStatus handles GET /v1/venues/{venueId}/status
func (h *StatusHandler) GetVenueStatus(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	result, ok := h.evaluate(venueID, w)
	if !ok {
		return
	}

	writeJSON(w, result)
}

// GetVenueBadge handles GET /v1/venues/{venueId}/badge
func (h *StatusHandler) GetVenueBadge(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	result, ok := h.evaluate(venueID, w)
	if !ok {
		return
	}

	writeJSON(w, BadgeResponse{
		VenueID: venueID,
		Status:  result.Status,
		Color:   util.StatusColor(result.Status),
		Glyph:   util.StatusGlyph(result.IsOpen),
		Message: result.Message,
	})
}

// GetVenueTimeline handles GET /v1/venues/{venueId}/timeline
func (h *StatusHandler) GetVenueTimeline(w http.ResponseWriter, r *http.Request) {
	venueID := mux.Vars(r)[VENUE_ID_PATH_ARG]

	v, err := h.venueDao.GetVenue(venueID)
	if err != nil {
		http.Error(w, "Venue not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.RenderOpeningTimeline(w, *v); err != nil {
		log.Println("Error rendering timeline:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// Ping handles GET /ping
func (h *StatusHandler) Ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"status": "pong"})
}

// evaluate runs a fresh evaluation and maps failures to HTTP codes.
// A false return means the error response has already been written.
func (h *StatusHandler) evaluate(venueID string, w http.ResponseWriter) (*models.StatusResult, bool) {
	result, err := h.statusService.EvaluateVenue(venueID)
	if err == nil {
		return result, true
	}

	var parseErr *hours.ParseError
	switch {
	case errors.As(err, &parseErr):
		log.Printf("Invalid opening hours for venue %s: %v", venueID, err)
		http.Error(w, "Invalid opening hours for venue", http.StatusUnprocessableEntity)
	default:
		log.Printf("No venue for id %s: %v", venueID, err)
		http.Error(w, "Venue not found", http.StatusNotFound)
	}
	return nil, false
}

func writeJSON(w http.ResponseWriter, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Error encoding response:", err)
	}
}
