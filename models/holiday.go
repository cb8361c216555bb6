package models

import "time"

// HolidayWindow is one named bank holiday for a given year, spanning a
// closed date interval (single-day holidays have Start == End).
type HolidayWindow struct {
	Name  string    `json:"name"`
	Year  int       `json:"year"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether the date falls inside the window (closed on
// both ends).
func (w HolidayWindow) Contains(date time.Time) bool {
	return !date.Before(w.Start) && !date.After(w.End)
}

// DayBooking is an observed booking total inside a holiday window.
type DayBooking struct {
	Date     time.Time `json:"date"`
	Day      string    `json:"day"`
	Bookings int       `json:"bookings"`
}

// EdgeDayBooking is the observed booking total on the day immediately
// before or after a holiday window, with its deviation from that
// weekday's normal average.
type EdgeDayBooking struct {
	Date        time.Time `json:"date"`
	Day         string    `json:"day"`
	Bookings    int       `json:"bookings"`
	PercentDiff float64   `json:"percent_diff"`
}

// HolidayAnalysis captures the demand pattern around one historical
// holiday window: the pre-day, every observed in-window day, and the
// post-day. Pre/Post are nil when the adjacent day is absent from the data.
type HolidayAnalysis struct {
	HolidayName string          `json:"holiday_name"`
	Year        int             `json:"year"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	PreDate     time.Time       `json:"pre_date"`
	PostDate    time.Time       `json:"post_date"`
	Pre         *EdgeDayBooking `json:"pre,omitempty"`
	Post        *EdgeDayBooking `json:"post,omitempty"`
	Bookings    []DayBooking    `json:"bookings"`
}

// HolidayDayPrediction is the growth-adjusted projection of one matched
// historical holiday day.
type HolidayDayPrediction struct {
	HistoricalDate   time.Time `json:"historical_date"`
	Year             int       `json:"year"`
	HistoricalDemand int       `json:"historical_demand"`
	PredictedDemand  int       `json:"predicted_demand"`
}

// HolidayDemandPrediction is the result of predicting demand for a target
// date inside a known holiday window.
type HolidayDemandPrediction struct {
	Holiday      HolidayWindow          `json:"holiday"`
	Predictions  []HolidayDayPrediction `json:"predictions"`
	GrowthFactor float64                `json:"growth_factor"`
}
