package models

import "oh-server/models/venue"

// VenueCatalogResponse is the content API's venue listing payload.
type VenueCatalogResponse struct {
	Status  string        `json:"status"`
	VenuesN int           `json:"venues_n"`
	Venues  []venue.Venue `json:"venues"`
}
