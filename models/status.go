package models

// Status is the display state of a venue at a given instant.
type Status string

const (
	StatusOpen        Status = "open"
	StatusClosed      Status = "closed"
	StatusClosingSoon Status = "closing_soon"
)

// StatusResult is one evaluation of a venue's opening hours.
// It is built fresh on every evaluation and never mutated afterwards.
type StatusResult struct {
	IsOpen  bool   `json:"is_open"`
	Status  Status `json:"status"`
	Message string `json:"message"`

	// NextOpenTime is set only when the venue is closed ("HH:MM").
	NextOpenTime string `json:"next_open_time,omitempty"`

	// TimeUntilClose is set only when the venue is open, already
	// formatted for display ("45 min", "2h", "1h30").
	TimeUntilClose string `json:"time_until_close,omitempty"`
}
