// Package dates provides the calendar-day value used for history ordering,
// transaction scheduling and boleto late-fee arithmetic.
package dates

import (
	"fmt"
	"time"
)

// Layout is the wire format for dates, e.g. "31/12/2025".
const Layout = "02/01/2006"

// Date is a calendar day with no time-of-day component.
type Date struct {
	t time.Time
}

// New builds a Date from year, month and day.
func New(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day.
func Today() Date {
	now := time.Now()
	return New(now.Year(), now.Month(), now.Day())
}

// Parse parses a DD/MM/YYYY string, rejecting impossible calendar dates
// such as day 32 or February 30th.
func Parse(s string) (Date, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return New(t.Year(), t.Month(), t.Day()), nil
}

// Valid reports whether s is a well-formed DD/MM/YYYY calendar date.
func Valid(s string) bool {
	_, err := Parse(s)
	return err == nil
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool { return d.t.After(other.t) }

// Equal reports whether d and other are the same calendar day.
func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

// AddDays returns d shifted by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool { return d.t.IsZero() }

// String formats d as DD/MM/YYYY.
func (d Date) String() string { return d.t.Format(Layout) }

// Interval returns the signed number of calendar days from b to a:
// negative when a precedes b, zero when they are the same day.
func Interval(a, b Date) int {
	return int(a.t.Sub(b.t) / (24 * time.Hour))
}
