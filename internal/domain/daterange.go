package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("end date must be after start date")
)

// DateRange is a half-open interval of calendar days [Start, End).
// The End day itself is free, so a check-out and a check-in may share a date.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [startA, endA) and [startB, endB) intersect
func Overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

// NewDateRange builds a range, rejecting empty or inverted intervals
func NewDateRange(start, end time.Time) (DateRange, error) {
	if !end.After(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// ParseDateRange parses two YYYY-MM-DD strings into a range
func ParseDateRange(start, end string) (DateRange, error) {
	s, err := ParseDate(start)
	if err != nil {
		return DateRange{}, err
	}
	e, err := ParseDate(end)
	if err != nil {
		return DateRange{}, err
	}
	return NewDateRange(s, e)
}

// ParseDate parses YYYY-MM-DD as a UTC midnight
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateFormat, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// DateOf drops the time of day, keeping the calendar date of t in UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps reports whether r and other share at least one night
func (r DateRange) Overlaps(other DateRange) bool {
	return Overlaps(r.Start, r.End, other.Start, other.End)
}

// Nights returns the number of nights covered by the range
func (r DateRange) Nights() int {
	return int(r.End.Sub(r.Start).Hours() / 24)
}

func (r DateRange) String() string {
	return r.Start.Format(DateFormat) + "→" + r.End.Format(DateFormat)
}

// OccupancySource tells where an occupied range comes from
type OccupancySource string

const (
	OccupancyBooking OccupancySource = "booking"
	OccupancyBlocked OccupancySource = "blocked"
)

// OccupiedRange is a range that makes an accommodation unavailable
type OccupiedRange struct {
	DateRange
	Source   OccupancySource
	SourceID int64
}

// FirstConflict returns the first occupied range overlapping candidate
func FirstConflict(occupied []OccupiedRange, candidate DateRange) (OccupiedRange, bool) {
	for _, o := range occupied {
		if o.Overlaps(candidate) {
			return o, true
		}
	}
	return OccupiedRange{}, false
}

// Conflicts returns every occupied range overlapping candidate
func Conflicts(occupied []OccupiedRange, candidate DateRange) []OccupiedRange {
	res := make([]OccupiedRange, 0)
	for _, o := range occupied {
		if o.Overlaps(candidate) {
			res = append(res, o)
		}
	}
	return res
}
