// Package service holds the domain computations that sit between handlers
// and repositories: reservation availability, status descriptions and
// domain event publishing.
package service

import (
	"regexp"
	"time"

	"github.com/dmolina/parroquia-api/internal/model"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
var documentoRe = regexp.MustCompile(`^\d{8}$`)

// ParseDate validates the strict YYYY-MM-DD format and returns the parsed
// date.  The regex rejects loose inputs time.Parse would accept (e.g.
// missing zero padding is already rejected by the layout, but the regex
// also keeps out timezone suffixes and whitespace).
func ParseDate(s string) (time.Time, bool) {
	if !dateRe.MatchString(s) {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ValidDocumento reports whether s is exactly eight digits.
func ValidDocumento(s string) bool { return documentoRe.MatchString(s) }

// DayTypeFor maps a date to its schedule bucket: Sunday to sundays,
// Saturday to saturdays, every other weekday to weekdays.  The mapping is
// fixed; holidays are not special-cased.
func DayTypeFor(t time.Time) string {
	switch t.Weekday() {
	case time.Sunday:
		return model.DayTypeSundays
	case time.Saturday:
		return model.DayTypeSaturdays
	default:
		return model.DayTypeWeekdays
	}
}

// SlotAvailability is the per-slot entry of an availability response.
type SlotAvailability struct {
	Time              string  `json:"time"`
	Location          *string `json:"location,omitempty"`
	IsAvailable       bool    `json:"isAvailable"`
	ReservationsCount int     `json:"reservationsCount"`
	MaxReservations   int     `json:"maxReservations"`
}

// Availability is the full availability snapshot for one date.
type Availability struct {
	Date           string             `json:"date"`
	DayType        string             `json:"dayType"`
	Times          []SlotAvailability `json:"times"`
	TotalTimes     int                `json:"totalTimes"`
	AvailableTimes int                `json:"availableTimes"`
}

// ComputeAvailability pairs the configured slots of a day-type with the
// reservation counts of one date.  Slots keep their configured order; a
// slot is available iff its non-cancelled count is below its cap.  This is
// a point-in-time estimate only: nothing is locked, and the creation path
// re-checks capacity transactionally.
func ComputeAvailability(date, dayType string, slots []model.TimeSlot, counts map[string]int) Availability {
	out := Availability{
		Date:    date,
		DayType: dayType,
		Times:   make([]SlotAvailability, 0, len(slots)),
	}
	for _, s := range slots {
		n := counts[s.Time]
		entry := SlotAvailability{
			Time:              s.Time,
			Location:          s.Location,
			IsAvailable:       n < s.MaxReservations,
			ReservationsCount: n,
			MaxReservations:   s.MaxReservations,
		}
		if entry.IsAvailable {
			out.AvailableTimes++
		}
		out.Times = append(out.Times, entry)
	}
	out.TotalTimes = len(out.Times)
	return out
}
