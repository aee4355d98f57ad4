package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmolina/parroquia-api/internal/model"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"2026-03-15", true},
		{"2026-12-31", true},
		{"2026-3-15", false},
		{"15-03-2026", false},
		{"2026-03-15T00:00:00Z", false},
		{" 2026-03-15", false},
		{"2026-03-15 ", false},
		{"2026-13-01", false},
		{"2026-02-30", false},
		{"", false},
	}
	for _, tc := range cases {
		_, got := ParseDate(tc.in)
		assert.Equal(t, tc.ok, got, "input %q", tc.in)
	}
}

func TestValidDocumento(t *testing.T) {
	assert.True(t, ValidDocumento("12345678"))
	assert.False(t, ValidDocumento("1234567"))
	assert.False(t, ValidDocumento("123456789"))
	assert.False(t, ValidDocumento("1234567a"))
	assert.False(t, ValidDocumento(" 12345678"))
	assert.False(t, ValidDocumento(""))
}

func TestDayTypeFor(t *testing.T) {
	// 2026-03-15 is a Sunday.
	sunday, ok := ParseDate("2026-03-15")
	require.True(t, ok)
	assert.Equal(t, model.DayTypeSundays, DayTypeFor(sunday))
	assert.Equal(t, model.DayTypeSaturdays, DayTypeFor(sunday.AddDate(0, 0, -1)))
	for d := 1; d <= 5; d++ {
		assert.Equal(t, model.DayTypeWeekdays, DayTypeFor(sunday.AddDate(0, 0, d)),
			"weekday %s", sunday.AddDate(0, 0, d).Weekday())
	}
}

func TestComputeAvailability(t *testing.T) {
	loc := "Capilla"
	slots := []model.TimeSlot{
		{Time: "08:00", MaxReservations: 3},
		{Time: "10:00", Location: &loc, MaxReservations: 2},
		{Time: "19:00", MaxReservations: 1},
	}
	counts := map[string]int{
		"08:00": 2,
		"10:00": 2, // full
		// 19:00 absent: zero reservations
	}

	got := ComputeAvailability("2026-03-16", model.DayTypeWeekdays, slots, counts)

	assert.Equal(t, "2026-03-16", got.Date)
	assert.Equal(t, model.DayTypeWeekdays, got.DayType)
	assert.Equal(t, 3, got.TotalTimes)
	assert.Equal(t, 2, got.AvailableTimes)

	require.Len(t, got.Times, 3)
	assert.Equal(t, "08:00", got.Times[0].Time)
	assert.True(t, got.Times[0].IsAvailable)
	assert.Equal(t, 2, got.Times[0].ReservationsCount)
	assert.Equal(t, 3, got.Times[0].MaxReservations)

	assert.False(t, got.Times[1].IsAvailable)
	require.NotNil(t, got.Times[1].Location)
	assert.Equal(t, "Capilla", *got.Times[1].Location)

	assert.True(t, got.Times[2].IsAvailable)
	assert.Equal(t, 0, got.Times[2].ReservationsCount)
}

func TestComputeAvailabilityNoSlots(t *testing.T) {
	got := ComputeAvailability("2026-03-16", model.DayTypeWeekdays, nil, nil)
	assert.Equal(t, 0, got.TotalTimes)
	assert.Equal(t, 0, got.AvailableTimes)
	assert.NotNil(t, got.Times)
	assert.Empty(t, got.Times)
}

func TestComputeAvailabilityOverbooked(t *testing.T) {
	// Counts above the cap (cap lowered after bookings) must not go negative
	// or report availability.
	slots := []model.TimeSlot{{Time: "08:00", MaxReservations: 1}}
	got := ComputeAvailability("2026-03-16", model.DayTypeWeekdays, slots, map[string]int{"08:00": 4})
	assert.False(t, got.Times[0].IsAvailable)
	assert.Equal(t, 4, got.Times[0].ReservationsCount)
	assert.Equal(t, 0, got.AvailableTimes)
}

func TestDayTypeForIgnoresTime(t *testing.T) {
	d := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC) // Saturday
	assert.Equal(t, model.DayTypeSaturdays, DayTypeFor(d))
}
