package model

import "time"

// Day-type buckets for recurring schedule configuration.  Every calendar
// date maps to exactly one bucket: Sunday to DayTypeSundays, Saturday to
// DayTypeSaturdays and everything else to DayTypeWeekdays.
const (
	DayTypeWeekdays  = "weekdays"
	DayTypeSaturdays = "saturdays"
	DayTypeSundays   = "sundays"
)

// TimeSlot is a reservable mass hour for one day-type bucket.
//
// Fields:
//
//	ID              – primary key identifier.
//	DayType         – weekdays, saturdays or sundays.
//	Time            – slot time as HH:MM.
//	Location        – church or chapel where the mass is held.
//	MaxReservations – capacity cap per date; must be >= 1.
//	DisplayOrder    – presentation order within the bucket.
//	IsActive        – soft visibility toggle.
type TimeSlot struct {
	ID              uint64    `json:"id"`
	DayType         string    `json:"day_type"`
	Time            string    `json:"time"`
	Location        *string   `json:"location,omitempty"`
	MaxReservations int       `json:"max_reservations"`
	DisplayOrder    int       `json:"display_order"`
	IsActive        bool      `json:"is_active"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
