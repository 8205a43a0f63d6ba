package server

import (
	"net/http"

	"github.com/gorilla/mux"

	"oh-server/server/handlers"
	ws "oh-server/websocket"
)

// StatusHandlerAPI is the handler surface the router binds.
type StatusHandlerAPI interface {
	GetVenueStatus(w http.ResponseWriter, r *http.Request)
	GetVenueBadge(w http.ResponseWriter, r *http.Request)
	GetVenueTimeline(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	statusHandler StatusHandlerAPI
	hub           *ws.Hub
	router        *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	statusHandler StatusHandlerAPI,
	hub *ws.Hub,
	router *mux.Router) *Router {
	return &Router{
		statusHandler: statusHandler,
		hub:           hub,
		router:        router,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.HandleFunc("/v1/venues/{venueId}/status", r.statusHandler.GetVenueStatus).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venueId}/badge", r.statusHandler.GetVenueBadge).Methods("GET")
	r.router.HandleFunc("/v1/venues/{venueId}/timeline", r.statusHandler.GetVenueTimeline).Methods("GET")

	// live status stream for UI subscribers
	r.router.HandleFunc("/v1/status/ws", handlers.WebSocketUpgrade(r.hub)).Methods("GET")

	r.router.HandleFunc("/ping", r.statusHandler.Ping).Methods("GET")
}
