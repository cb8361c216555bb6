package holidays

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"euston-server/forecast"
	"euston-server/models"
)

// ErrNoHolidayWindow reports a target date outside every known window.
var ErrNoHolidayWindow = fmt.Errorf("target date falls on no known bank holiday")

// ErrNoHistoricalPattern reports a matched window with no historical
// instances to project from.
var ErrNoHistoricalPattern = fmt.Errorf("no historical pattern for this holiday")

// baseHolidayName strips the window's calendar year from its name. The
// suffix only comes off when it matches that year, so "New Year's Day
// 2025" filed under 2024 keeps its suffix and matches same-named
// entries only. Names without a year suffix pass through intact.
func baseHolidayName(w models.HolidayWindow) string {
	return strings.Replace(w.Name, fmt.Sprintf(" %d", w.Year), "", 1)
}

// PredictDemand projects booking demand for a target date inside a bank
// holiday window. Historical instances of the same holiday are located
// by name (less the window's own calendar-year suffix, when present),
// and each in-window day
// sharing the target's day and month is scaled by the year-over-year
// growth factor.
//
// The growth factor is resolved from the full unfiltered daily series;
// estimator failure falls back rather than failing the prediction.
func PredictDemand(daily []models.DailyCount, date time.Time, trend forecast.GrowthEstimator) (*models.HolidayDemandPrediction, error) {
	window, ok := FindWindow(date)
	if !ok {
		return nil, ErrNoHolidayWindow
	}

	analyses, _ := Analyze(daily)
	base := baseHolidayName(window)
	var patterns []models.HolidayAnalysis
	for _, a := range analyses {
		if strings.Contains(a.HolidayName, base) {
			patterns = append(patterns, a)
		}
	}
	if len(patterns) == 0 {
		return nil, ErrNoHistoricalPattern
	}

	growth := forecast.ResolveGrowthFactor(daily, trend)

	result := &models.HolidayDemandPrediction{
		Holiday:      window,
		GrowthFactor: growth,
	}
	for _, pattern := range patterns {
		for _, b := range pattern.Bookings {
			if b.Date.Day() == date.Day() && b.Date.Month() == date.Month() {
				result.Predictions = append(result.Predictions, models.HolidayDayPrediction{
					HistoricalDate:   b.Date,
					Year:             pattern.Year,
					HistoricalDemand: b.Bookings,
					PredictedDemand:  int(math.Round(float64(b.Bookings) * growth)),
				})
			}
		}
	}
	sort.Slice(result.Predictions, func(i, j int) bool {
		return result.Predictions[i].HistoricalDate.Before(result.Predictions[j].HistoricalDate)
	})
	return result, nil
}
