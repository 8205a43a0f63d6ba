package util

import (
	"os"
	"path/filepath"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fixture.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadVenueCatalogFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"status": "OK",
		"venues_n": 1,
		"venues": [
			{
				"venue_id": "cafe-lumiere",
				"venue_name": "Café Lumière",
				"venue_address": "12 Rue de la Paix",
				"opening_hours": "09:00 - 18:00"
			}
		]
	}`
	tempFile := createTempFile(t, content)

	// Act
	response, err := ReadVenueCatalogFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if response.Status != "OK" {
		t.Errorf("Expected Status 'OK', got %s", response.Status)
	}
	if len(response.Venues) != 1 {
		t.Fatalf("Expected 1 venue, got %d", len(response.Venues))
	}
	if response.Venues[0].OpeningHours != "09:00 - 18:00" {
		t.Errorf("Expected OpeningHours '09:00 - 18:00', got %s", response.Venues[0].OpeningHours)
	}
}

func TestReadVenueCatalogFromJSON_MalformedJSON(t *testing.T) {
	tempFile := createTempFile(t, `{"invalid_json`)

	if _, err := ReadVenueCatalogFromJSON(tempFile); err == nil {
		t.Error("Expected an error for malformed JSON, got nil")
	}
}

func TestReadVenueFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"venue_id": "le-noctambule",
		"venue_name": "Le Noctambule",
		"opening_hours": "12:00 - 00:15"
	}`
	tempFile := createTempFile(t, content)

	// Act
	v, err := ReadVenueFromJSON(tempFile)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if v.VenueID != "le-noctambule" {
		t.Errorf("Expected VenueID 'le-noctambule', got %s", v.VenueID)
	}
	if v.OpeningHours != "12:00 - 00:15" {
		t.Errorf("Expected OpeningHours '12:00 - 00:15', got %s", v.OpeningHours)
	}
}
