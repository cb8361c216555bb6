package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euston-server/models"
)

func TestParseDepartureDate(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"02/01/2023", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"2/1/2023", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"25-12-2024", time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC), true},
		{" 02/01/2023 ", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC), true},
		{"2023-01-02", time.Time{}, false},
		{"not a date", time.Time{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDepartureDate(tt.in)
		assert.Equal(t, tt.ok, ok, "input %q", tt.in)
		if tt.ok {
			assert.True(t, got.Equal(tt.want), "input %q", tt.in)
		}
	}
}

func TestAggregateDaily(t *testing.T) {
	records := []models.BookingRecord{
		{StationCode: "EUS", DepartureDate: "02/01/2023", Year: 2023},
		{StationCode: "EUS", DepartureDate: "02/01/2023", Year: 2023},
		{StationCode: "EUS", DepartureDate: "03/01/2023", Year: 2023},
		{StationCode: "MAN", DepartureDate: "02/01/2023", Year: 2023},
		{StationCode: "EUS", DepartureDate: "bogus", Year: 2023},
	}

	daily, skipped := AggregateDaily(records, "EUS")
	assert.Equal(t, 2, skipped)
	require.Len(t, daily, 2)

	// Sorted ascending by date, one row per distinct date.
	assert.True(t, daily[0].Date.Before(daily[1].Date))
	assert.Equal(t, 2, daily[0].Bookings)
	assert.Equal(t, 1, daily[1].Bookings)
	assert.Equal(t, "Monday", daily[0].DayOfWeek)
	assert.Equal(t, 2023, daily[0].Year)
}

func TestAggregateDaily_YearFallsBackToDate(t *testing.T) {
	records := []models.BookingRecord{
		{StationCode: "EUS", DepartureDate: "02/01/2023"},
	}
	daily, skipped := AggregateDaily(records, "EUS")
	assert.Zero(t, skipped)
	require.Len(t, daily, 1)
	assert.Equal(t, 2023, daily[0].Year)
}

func TestNewestYearAndDistinctYears(t *testing.T) {
	daily := []models.DailyCount{
		{Year: 2023}, {Year: 2024}, {Year: 2024},
	}
	assert.Equal(t, 2024, NewestYear(daily))
	assert.Equal(t, 2, DistinctYears(daily))
	assert.Equal(t, 0, NewestYear(nil))
}

func TestIsCompleteYear(t *testing.T) {
	complete := []models.DailyCount{
		{Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC), Year: 2023},
		{Date: time.Date(2023, 12, 29, 0, 0, 0, 0, time.UTC), Year: 2023},
	}
	assert.True(t, IsCompleteYear(complete, 2023))

	partial := []models.DailyCount{
		{Date: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), Year: 2024},
	}
	assert.False(t, IsCompleteYear(partial, 2024))

	earlyDecember := []models.DailyCount{
		{Date: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), Year: 2024},
	}
	assert.False(t, IsCompleteYear(earlyDecember, 2024))

	assert.False(t, IsCompleteYear(nil, 2024))
}
