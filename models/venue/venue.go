package venue

import "fmt"

// Venue represents a venue with its daily opening-hours range.
type Venue struct {
	VenueID      string `json:"venue_id"`
	VenueName    string `json:"venue_name"`
	VenueAddress string `json:"venue_address,omitempty"`

	// OpeningHours is the raw "HH:MM - HH:MM" range from the content source.
	OpeningHours string `json:"opening_hours"`
}

func (v *Venue) ToString() string {
	return fmt.Sprintf("Venue(id=%s, name=%s, hours=%s)",
		v.VenueID, v.VenueName, v.OpeningHours)
}
