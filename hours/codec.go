package hours

import (
	"fmt"
	"strconv"
	"strings"
)

const MINUTES_PER_DAY = 24 * 60

// HoursSpec is a single daily opening window, in minutes since midnight.
// OpenM greater than CloseM denotes a window crossing midnight.
type HoursSpec struct {
	OpenM  int
	CloseM int
}

// ParseError reports a malformed or out-of-range opening-hours string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid opening hours %q: %s", e.Input, e.Reason)
}

// ParseHours parses a "HH:MM - HH:MM" range into an HoursSpec.
// Both components must be real clock times (hours 0-23, minutes 0-59).
// An open time equal to the close time denotes an empty window and is
// rejected as invalid input.
func ParseHours(text string) (HoursSpec, error) {
	parts := strings.Split(text, " - ")
	if len(parts) != 2 {
		return HoursSpec{}, &ParseError{Input: text, Reason: `missing " - " separator`}
	}

	openM, err := toValidMinutes(strings.TrimSpace(parts[0]))
	if err != nil {
		return HoursSpec{}, &ParseError{Input: text, Reason: err.Error()}
	}

	closeM, err := toValidMinutes(strings.TrimSpace(parts[1]))
	if err != nil {
		return HoursSpec{}, &ParseError{Input: text, Reason: err.Error()}
	}

	if openM == closeM {
		return HoursSpec{}, &ParseError{Input: text, Reason: "open and close times are equal"}
	}

	return HoursSpec{OpenM: openM, CloseM: closeM}, nil
}

// ToMinutes converts a "HH:MM" token into minutes since midnight.
// Components are not range-checked here; ParseHours does the validation.
func ToMinutes(text string) (int, error) {
	h, m, err := splitClock(text)
	if err != nil {
		return 0, err
	}
	return h*60 + m, nil
}

// ToTimeString renders minutes since midnight as zero-padded "HH:MM".
// The caller must pass a value in [0, 1439].
func ToTimeString(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration renders a minute count as "N min" under an hour,
// "Hh" on a whole hour and "HhMM" otherwise.
func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	h := minutes / 60
	m := minutes % 60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02d", h, m)
}

func splitClock(token string) (int, int, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q", token)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed hour in %q", token)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed minute in %q", token)
	}
	return h, m, nil
}

func toValidMinutes(token string) (int, error) {
	h, m, err := splitClock(token)
	if err != nil {
		return 0, err
	}
	if h < 0 || h > 23 {
		return 0, fmt.Errorf("hour %d out of range in %q", h, token)
	}
	if m < 0 || m > 59 {
		return 0, fmt.Errorf("minute %d out of range in %q", m, token)
	}
	return h*60 + m, nil
}
