// Package ingest turns raw transaction-level booking rows into the daily
// series the forecasting pipeline consumes.
package ingest

import (
	"sort"
	"strings"
	"time"

	"euston-server/models"
)

// Historical feeds write dates day-first, with or without zero padding,
// and occasionally with dashes.
var dateLayouts = []string{
	"02/01/2006",
	"2/1/2006",
	"02-01-2006",
	"2-1-2006",
}

// ParseDepartureDate parses a day-first date string from the historical
// feed.
func ParseDepartureDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// AggregateDaily reduces raw records to one DailyCount per distinct date.
// Rows for other stations and rows whose date does not parse are dropped;
// the second return value reports how many rows were excluded for either
// reason. Dropping is deliberate recovery, not an error: a single bad row
// must never abort the aggregation pass.
func AggregateDaily(records []models.BookingRecord, stationCode string) ([]models.DailyCount, int) {
	byDate := make(map[time.Time]*models.DailyCount)
	skipped := 0

	for _, rec := range records {
		if rec.StationCode != stationCode {
			skipped++
			continue
		}
		date, ok := ParseDepartureDate(rec.DepartureDate)
		if !ok {
			skipped++
			continue
		}
		dc, exists := byDate[date]
		if !exists {
			year := rec.Year
			if year == 0 {
				year = date.Year()
			}
			dc = &models.DailyCount{
				Date:      date,
				Year:      year,
				DayOfWeek: date.Weekday().String(),
			}
			byDate[date] = dc
		}
		dc.Bookings++
	}

	daily := make([]models.DailyCount, 0, len(byDate))
	for _, dc := range byDate {
		daily = append(daily, *dc)
	}
	sort.Slice(daily, func(i, j int) bool { return daily[i].Date.Before(daily[j].Date) })
	return daily, skipped
}

// NewestYear returns the highest year tag in the series, or 0 for an
// empty series.
func NewestYear(daily []models.DailyCount) int {
	newest := 0
	for _, d := range daily {
		if d.Year > newest {
			newest = d.Year
		}
	}
	return newest
}

// DistinctYears counts the distinct year tags present in the series.
func DistinctYears(daily []models.DailyCount) int {
	years := make(map[int]struct{})
	for _, d := range daily {
		years[d.Year] = struct{}{}
	}
	return len(years)
}

// IsCompleteYear reports whether the newest year's data runs through
// December: the last observed date for that year falls in December on or
// after the 28th.
func IsCompleteYear(daily []models.DailyCount, newestYear int) bool {
	var last time.Time
	for _, d := range daily {
		if d.Year == newestYear && d.Date.After(last) {
			last = d.Date
		}
	}
	if last.IsZero() {
		return false
	}
	return last.Month() == time.December && last.Day() >= 28
}
