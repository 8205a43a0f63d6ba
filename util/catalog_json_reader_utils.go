package util

import (
	"encoding/json"
	"fmt"
	"os"

	"oh-server/models"
	"oh-server/models/venue"
)

// ReadVenueCatalogFromJSON loads a VenueCatalogResponse from JSON on disk.
func ReadVenueCatalogFromJSON(filePath string) (*models.VenueCatalogResponse, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var resp models.VenueCatalogResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal VenueCatalogResponse: %w", err)
	}
	return &resp, nil
}

// ReadVenueFromJSON loads a single Venue from JSON on disk.
func ReadVenueFromJSON(filePath string) (*venue.Venue, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var v venue.Venue
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Venue: %w", err)
	}
	return &v, nil
}

// PrintVenueCatalogPartially prints key fields of a VenueCatalogResponse.
func PrintVenueCatalogPartially(resp *models.VenueCatalogResponse) {
	fmt.Printf("Status: %s\n", resp.Status)
	fmt.Printf("Venues returned: %d\n", resp.VenuesN)
	if len(resp.Venues) > 0 {
		v := resp.Venues[0]
		fmt.Printf("First venue: %s (%s)\n", v.VenueName, v.OpeningHours)
	}
}
