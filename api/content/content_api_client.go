package content

import (
	"oh-server/api"
	"oh-server/models"
)

// ContentApiClient embeds the common HTTPClient
type ContentApiClient struct {
	*api.HTTPClient // Embed HTTPClient to reuse its methods and properties
	apiKey          string
}

// NewContentApiClient creates a new instance of ContentApiClient
func NewContentApiClient(httpClient *api.HTTPClient) *ContentApiClient {
	return &ContentApiClient{
		HTTPClient: httpClient,
	}
}

// SetAPIKey stores the bearer token sent with every request.
func (c *ContentApiClient) SetAPIKey(apiKey string) {
	c.apiKey = apiKey
}

// GetVenueCatalog retrieves the venue catalog with opening-hours strings.
func (c *ContentApiClient) GetVenueCatalog() (*models.VenueCatalogResponse, error) {
	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	var response models.VenueCatalogResponse
	if err := c.Get("/venues", headers, &response); err != nil {
		return nil, err
	}
	return &response, nil
}
