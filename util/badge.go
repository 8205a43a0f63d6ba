package util

import "oh-server/models"

// StatusColor maps a status to the UI badge color token.
func StatusColor(status models.Status) string {
	switch status {
	case models.StatusOpen:
		return "green"
	case models.StatusClosingSoon:
		return "yellow"
	case models.StatusClosed:
		return "red"
	default:
		return "gray"
	}
}

// StatusGlyph maps the open flag to the dot glyph shown on the badge.
func StatusGlyph(isOpen bool) string {
	if isOpen {
		return "🟢"
	}
	return "🔴"
}
