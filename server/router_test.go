package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"

	ws "oh-server/websocket"
)

// MockStatusHandler is a mock implementation of the status handler.
type MockStatusHandler struct{}

func (h *MockStatusHandler) GetVenueStatus(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "open"}`))
}

func (h *MockStatusHandler) GetVenueBadge(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"color": "green"}`))
}

func (h *MockStatusHandler) GetVenueTimeline(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`<html></html>`))
}

func (h *MockStatusHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "pong"}`))
}

func TestRouter_RegisterRoutes(t *testing.T) {
	// Setup
	mockHandler := &MockStatusHandler{}
	router := mux.NewRouter()
	appRouter := NewRouter(mockHandler, ws.NewHub(), router)
	appRouter.RegisterRoutes()

	// Test Cases
	tests := []struct {
		name       string
		method     string
		path       string
		statusCode int
		response   string
	}{
		{
			name:       "Venue Status",
			method:     "GET",
			path:       "/v1/venues/cafe-lumiere/status",
			statusCode: http.StatusOK,
			response:   `{"status": "open"}`,
		},
		{
			name:       "Venue Badge",
			method:     "GET",
			path:       "/v1/venues/cafe-lumiere/badge",
			statusCode: http.StatusOK,
			response:   `{"color": "green"}`,
		},
		{
			name:       "Venue Timeline",
			method:     "GET",
			path:       "/v1/venues/cafe-lumiere/timeline",
			statusCode: http.StatusOK,
		},
		{
			name:       "Ping Route",
			method:     "GET",
			path:       "/ping",
			statusCode: http.StatusOK,
			response:   `{"status": "pong"}`,
		},
		{
			name:       "Invalid Route",
			method:     "GET",
			path:       "/invalid",
			statusCode: http.StatusNotFound,
		},
		{
			name:       "Wrong Method",
			method:     "POST",
			path:       "/v1/venues/cafe-lumiere/status",
			statusCode: http.StatusMethodNotAllowed,
		},
	}

	// Run tests
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			req := httptest.NewRequest(test.method, test.path, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			// Assert status code
			if rr.Code != test.statusCode {
				t.Errorf("Expected status %d, got %d", test.statusCode, rr.Code)
			}

			// Assert response body, if applicable
			if test.response != "" && rr.Body.String() != test.response {
				t.Errorf("Expected response %s, got %s", test.response, rr.Body.String())
			}
		})
	}
}
