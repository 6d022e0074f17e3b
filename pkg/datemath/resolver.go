package datemath

import (
	"fmt"
	"strings"
	"time"
)

// Resolver turns "this <weekday>" / "next <weekday>" phrases into calendar dates.
type Resolver struct {
	location *time.Location
	now      func() time.Time
}

// NewResolver creates a resolver whose notion of "today" lives in the given
// IANA timezone, e.g. "Asia/Almaty".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc, now: time.Now}, nil
}

// WithClock replaces the clock used by Today. Intended for tests and replays.
func (r *Resolver) WithClock(now func() time.Time) *Resolver {
	cp := *r
	cp.now = now
	return &cp
}

// Location returns the resolver's timezone.
func (r *Resolver) Location() *time.Location {
	return r.location
}

// Today returns midnight of the current day in the resolver's timezone.
func (r *Resolver) Today() time.Time {
	return r.startOfDay(r.now())
}

// Resolve finds the first weekday phrase in text and returns the matching date
// as YYYY-MM-DD relative to ref. ok is false when no phrase is present.
//
// "this <weekday>" on that same weekday resolves to ref itself, while
// "next <weekday>" is always at least seven days ahead.
func (r *Resolver) Resolve(text string, ref time.Time) (date string, ok bool) {
	phrase := strings.ToLower(text)
	base := r.startOfDay(ref)
	refIdx := mondayIndex(base.Weekday())

	for idx, name := range weekdays {
		if strings.Contains(phrase, "this "+name) {
			delta := mod7(idx - refIdx)
			return base.AddDate(0, 0, delta).Format(ISODate), true
		}
		if strings.Contains(phrase, "next "+name) {
			delta := mod7(idx-refIdx) + 7
			return base.AddDate(0, 0, delta).Format(ISODate), true
		}
	}
	return "", false
}

// startOfDay returns midnight at the start of the given day in the resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}

// mondayIndex maps time.Weekday (Sunday = 0) onto a Monday-first index.
func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

func mod7(n int) int {
	return ((n % 7) + 7) % 7
}
