package content

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"oh-server/api"
)

const catalogPayload = `{
	"status": "OK",
	"venues_n": 2,
	"venues": [
		{"venue_id": "cafe-lumiere", "venue_name": "Café Lumière", "opening_hours": "09:00 - 18:00"},
		{"venue_id": "le-noctambule", "venue_name": "Le Noctambule", "opening_hours": "12:00 - 00:15"}
	]
}`

func TestGetVenueCatalog_Success(t *testing.T) {
	// Arrange
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/venues" {
			t.Errorf("Expected endpoint '/venues', got '%s'", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(catalogPayload))
	}))
	defer mockServer.Close()

	client := NewContentApiClient(api.NewHTTPClient(mockServer.URL))

	// Act
	response, err := client.GetVenueCatalog()

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	assert.Equal(t, "OK", response.Status)
	assert.Equal(t, 2, response.VenuesN)
	assert.Len(t, response.Venues, 2)
	assert.Equal(t, "12:00 - 00:15", response.Venues[1].OpeningHours)
}

func TestGetVenueCatalog_SendsAPIKey(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("Expected 'Bearer test-key', got '%s'", got)
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(catalogPayload))
	}))
	defer mockServer.Close()

	client := NewContentApiClient(api.NewHTTPClient(mockServer.URL))
	client.SetAPIKey("test-key")

	if _, err := client.GetVenueCatalog(); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
}

func TestGetVenueCatalog_ServerError(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer mockServer.Close()

	client := NewContentApiClient(api.NewHTTPClient(mockServer.URL))

	response, err := client.GetVenueCatalog()
	if err == nil {
		t.Fatal("Expected an error, got nil")
	}
	if response != nil {
		t.Errorf("Expected nil response, got %v", response)
	}
}
