package hours

import "time"

// Clock abstracts the wall-clock read so evaluations stay testable.
type Clock interface {
	Now() time.Time
}

// FixedOffsetClock reads the system clock shifted by a fixed offset.
// The venue timezone never observes daylight saving, so the offset is
// constant for the lifetime of the process.
type FixedOffsetClock struct {
	offset time.Duration
}

// NewFixedOffsetClock builds a clock at UTC plus the given whole hours.
func NewFixedOffsetClock(offsetHours int) *FixedOffsetClock {
	return &FixedOffsetClock{offset: time.Duration(offsetHours) * time.Hour}
}

func (c *FixedOffsetClock) Now() time.Time {
	return time.Now().UTC().Add(c.offset)
}
