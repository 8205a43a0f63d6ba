package hours

import (
	"fmt"
	"time"

	"oh-server/models"
)

// Status downgrades from open to closing_soon inside this window.
const CLOSING_SOON_THRESHOLD_MINUTES = 30

// Evaluate computes the open/closed status of a venue at the given
// instant. The hours string is re-parsed on every call and the instant
// is injected, so identical inputs always produce identical results.
// Seconds are discarded; membership is decided on the minute of day.
func Evaluate(hoursText string, now time.Time) (*models.StatusResult, error) {
	spec, err := ParseHours(hoursText)
	if err != nil {
		return nil, err
	}

	nowM := now.Hour()*60 + now.Minute()

	// Close before open means the window crosses midnight.
	if spec.CloseM < spec.OpenM {
		return evaluateOvernight(spec, nowM), nil
	}
	return evaluateSameDay(spec, nowM), nil
}

func evaluateSameDay(spec HoursSpec, nowM int) *models.StatusResult {
	if spec.OpenM <= nowM && nowM < spec.CloseM {
		return openResult(spec.CloseM - nowM)
	}
	if nowM < spec.OpenM {
		return closedResult(spec.OpenM,
			fmt.Sprintf("Fermé - Ouvre à %s", ToTimeString(spec.OpenM)))
	}
	return closedResult(spec.OpenM,
		fmt.Sprintf("Fermé - Ouvre demain à %s", ToTimeString(spec.OpenM)))
}

// evaluateOvernight splits the 24h clock into three zones: past
// midnight before closing, evening after opening, and the closed gap
// in between.
func evaluateOvernight(spec HoursSpec, nowM int) *models.StatusResult {
	switch {
	case nowM < spec.CloseM:
		return openResult(spec.CloseM - nowM)
	case nowM >= spec.OpenM:
		// Minutes to midnight plus minutes from midnight to close.
		return openResult((MINUTES_PER_DAY - nowM) + spec.CloseM)
	default:
		return closedResult(spec.OpenM,
			fmt.Sprintf("Fermé - Ouvre à %s", ToTimeString(spec.OpenM)))
	}
}

func openResult(minutesUntilClose int) *models.StatusResult {
	res := &models.StatusResult{
		IsOpen:         true,
		Status:         models.StatusOpen,
		TimeUntilClose: FormatDuration(minutesUntilClose),
	}
	if minutesUntilClose <= CLOSING_SOON_THRESHOLD_MINUTES {
		res.Status = models.StatusClosingSoon
		res.Message = fmt.Sprintf("Ferme bientôt - encore %s", res.TimeUntilClose)
	} else {
		res.Message = fmt.Sprintf("Ouvert - Ferme dans %s", res.TimeUntilClose)
	}
	return res
}

func closedResult(openM int, message string) *models.StatusResult {
	return &models.StatusResult{
		IsOpen:       false,
		Status:       models.StatusClosed,
		Message:      message,
		NextOpenTime: ToTimeString(openM),
	}
}
