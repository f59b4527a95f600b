package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a birth date string is not a valid
// ISO calendar date. Callers can match it with errors.Is.
var ErrInvalidDate = errors.New("invalid birth date")

// BirthDate is the calendar date all generators operate on.
//
// Time of day and place exist on BirthProfile for the ephemeris
// collaborator, but the timeline core never reads them.
type BirthDate struct {
	Year  int `json:"year"`
	Month int `json:"month"` // 1..12
	Day   int `json:"day"`   // 1..31
}

// ParseBirthDate parses a YYYY-MM-DD string into a BirthDate.
// Invalid month/day combinations (e.g. 2001-02-30) are rejected.
func ParseBirthDate(s string) (BirthDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return BirthDate{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return BirthDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// Time returns the date at midnight UTC.
func (b BirthDate) Time() time.Time {
	return time.Date(b.Year, time.Month(b.Month), b.Day, 0, 0, 0, 0, time.UTC)
}

func (b BirthDate) String() string {
	return b.Time().Format("2006-01-02")
}
