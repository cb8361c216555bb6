package forecast

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"

	"euston-server/models"
)

// SeasonalTrendModel is a lightweight trend/seasonality forecaster: an
// ordinary-least-squares linear trend over time plus additive weekly and
// monthly seasonal indices fitted on the trend residuals. It exists to
// project annual demand levels, not to chase day-level accuracy.
type SeasonalTrendModel struct {
	origin       time.Time
	intercept    float64
	slope        float64
	weekdayIndex [7]float64
	monthIndex   [13]float64 // 1-based months
}

// FitSeasonalTrend fits the model on a daily series. At least two rows
// are required for the trend line to be defined.
func FitSeasonalTrend(daily []models.DailyCount) (*SeasonalTrendModel, error) {
	if len(daily) < 2 {
		return nil, fmt.Errorf("seasonal trend needs >= 2 observations, got %d", len(daily))
	}

	origin := daily[0].Date
	for _, d := range daily {
		if d.Date.Before(origin) {
			origin = d.Date
		}
	}

	xs := make([]float64, len(daily))
	ys := make([]float64, len(daily))
	for i, d := range daily {
		xs[i] = daysSince(origin, d.Date)
		ys[i] = float64(d.Bookings)
	}
	intercept, slope := stat.LinearRegression(xs, ys, nil, false)

	m := &SeasonalTrendModel{origin: origin, intercept: intercept, slope: slope}

	// Weekly index: mean residual per weekday.
	var wdSum [7]float64
	var wdN [7]int
	for i, d := range daily {
		wd := int(d.Date.Weekday())
		wdSum[wd] += ys[i] - (intercept + slope*xs[i])
		wdN[wd]++
	}
	for wd := range wdSum {
		if wdN[wd] > 0 {
			m.weekdayIndex[wd] = wdSum[wd] / float64(wdN[wd])
		}
	}

	// Monthly index: mean of what the trend and weekly index leave over.
	var moSum [13]float64
	var moN [13]int
	for i, d := range daily {
		mo := int(d.Date.Month())
		res := ys[i] - (intercept + slope*xs[i]) - m.weekdayIndex[int(d.Date.Weekday())]
		moSum[mo] += res
		moN[mo]++
	}
	for mo := range moSum {
		if moN[mo] > 0 {
			m.monthIndex[mo] = moSum[mo] / float64(moN[mo])
		}
	}

	return m, nil
}

// Predict returns the projected daily booking total for a date.
func (m *SeasonalTrendModel) Predict(date time.Time) float64 {
	t := daysSince(m.origin, date)
	return m.intercept + m.slope*t +
		m.weekdayIndex[int(date.Weekday())] +
		m.monthIndex[int(date.Month())]
}

// YearMean averages the model's projection over every calendar day of the
// given year.
func (m *SeasonalTrendModel) YearMean(year int) float64 {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0)
	var sum float64
	n := 0
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		sum += m.Predict(d)
		n++
	}
	return sum / float64(n)
}

func daysSince(origin, date time.Time) float64 {
	return date.Sub(origin).Hours() / 24
}
