package content

import "oh-server/models"

// ContentAPI defines the interface for the venue content source
type ContentAPI interface {
	GetVenueCatalog() (*models.VenueCatalogResponse, error)
	SetAPIKey(apiKey string)
}
