package content

import (
	"fmt"

	"oh-server/config"
	"oh-server/models"
	"oh-server/util"
)

// ContentApiClientMock serves the venue catalog from a local resource file
type ContentApiClientMock struct {
}

// NewContentApiClientMock creates a new instance of ContentApiClientMock
func NewContentApiClientMock() *ContentApiClientMock {
	return &ContentApiClientMock{}
}

// SetAPIKey is a no-op for the mock.
func (c *ContentApiClientMock) SetAPIKey(apiKey string) {}

// GetVenueCatalog reads the catalog fixture from disk.
func (c *ContentApiClientMock) GetVenueCatalog() (*models.VenueCatalogResponse, error) {
	response, err := util.ReadVenueCatalogFromJSON(
		config.GetResourcePath(config.VENUE_CATALOG_RESOURCE))
	if err != nil {
		fmt.Println("Could not read venue catalog from json")
		return nil, err
	}
	return response, nil
}
