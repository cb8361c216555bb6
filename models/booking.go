package models

import "time"

// BookingRecord is one raw historical transaction row as handed over by the
// upload layer. Columns beyond these are ignored by the core.
type BookingRecord struct {
	StationCode   string `json:"station_code"`
	DepartureDate string `json:"scheduled_departure_date"`
	Year          int    `json:"year"`
}

// DailyCount is the aggregated booking total for one calendar date.
// Immutable once produced by the aggregator.
type DailyCount struct {
	Date      time.Time `json:"date"`
	Year      int       `json:"year"`
	DayOfWeek string    `json:"day_of_week"`
	Bookings  int       `json:"bookings"`
}
