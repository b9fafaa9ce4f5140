package domain

import (
	"time"

	"cloud.google.com/go/civil"
)

// Clock supplies the current calendar date.
type Clock interface {
	Today() civil.Date
}

// SystemClock reads the local date from the system time.
type SystemClock struct{}

// Today returns the current date in the local time zone.
func (SystemClock) Today() civil.Date {
	return civil.DateOf(time.Now())
}

// FixedClock always reports the same date.
type FixedClock struct {
	Date civil.Date
}

// Today returns the fixed date.
func (c FixedClock) Today() civil.Date {
	return c.Date
}
