// Package forecast trains the weekly demand model and derives the
// year-over-year growth factor applied to its predictions.
package forecast

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"euston-server/ingest"
	"euston-server/models"
	"euston-server/stats"
)

const (
	// FallbackGrowthFactor stands in for typical observed year-over-year
	// growth (+18%) whenever there is not enough signal to fit a trend
	// model. Empirical, not derived.
	FallbackGrowthFactor = 1.18

	// CompleteYearGrowthFactor applies when the newest year has data
	// through December: predictions target that year directly and need no
	// adjustment.
	CompleteYearGrowthFactor = 1.0

	// MinTrendTrainingDays is the minimum history (strictly more than one
	// year of daily rows) required before the trend estimator is trusted.
	MinTrendTrainingDays = 365

	// minHistoryYears is the minimum number of distinct years needed to
	// attempt a trend estimate at all.
	minHistoryYears = 2
)

// GrowthEstimator produces a multiplicative year-over-year growth factor
// for the newest (incomplete) year of a daily series.
type GrowthEstimator interface {
	EstimateGrowth(daily []models.DailyCount, newestYear int) (float64, error)
}

// FixedGrowthEstimator always returns a fixed factor. It backs the
// fallback path and keeps the constant testable on its own.
type FixedGrowthEstimator struct {
	Factor float64
}

// EstimateGrowth returns the fixed factor regardless of input.
func (e FixedGrowthEstimator) EstimateGrowth([]models.DailyCount, int) (float64, error) {
	return e.Factor, nil
}

// TrendGrowthEstimator fits a trend/seasonality model on history strictly
// before the newest year and projects it forward; the growth factor is
// the ratio of the projected newest-year mean to the projected prior-year
// mean.
type TrendGrowthEstimator struct{}

// EstimateGrowth implements GrowthEstimator. Errors signal insufficient
// or degenerate history; callers recover with the fixed fallback.
func (TrendGrowthEstimator) EstimateGrowth(daily []models.DailyCount, newestYear int) (float64, error) {
	series := daily
	if b, ok := stats.Describe(stats.Bookings(daily)); ok {
		series = stats.FilterDailyCounts(daily, b)
	}

	cutoff := time.Date(newestYear, time.January, 1, 0, 0, 0, 0, time.UTC)
	var train []models.DailyCount
	for _, d := range series {
		if d.Date.Before(cutoff) {
			train = append(train, d)
		}
	}
	if len(train) <= MinTrendTrainingDays {
		return 0, fmt.Errorf("trend estimator under-trained: %d days of history, need > %d", len(train), MinTrendTrainingDays)
	}

	model, err := FitSeasonalTrend(train)
	if err != nil {
		return 0, fmt.Errorf("fitting trend model: %w", err)
	}

	prevMean := model.YearMean(newestYear - 1)
	newestMean := model.YearMean(newestYear)
	if prevMean <= 0 {
		return 0, fmt.Errorf("trend projection degenerate: prior-year mean %.3f", prevMean)
	}
	growth := newestMean / prevMean
	if growth <= 0 {
		return 0, fmt.Errorf("trend projection degenerate: growth %.3f", growth)
	}
	return growth, nil
}

// ResolveGrowthFactor applies the data-sufficiency policy:
//
//	complete newest year                  -> 1.0
//	incomplete, >= 2 years of history     -> trend estimate, fallback on error
//	incomplete, < 2 years                 -> fallback
//
// The result is always positive; estimator failure is never fatal.
func ResolveGrowthFactor(daily []models.DailyCount, trend GrowthEstimator) float64 {
	newestYear := ingest.NewestYear(daily)
	if newestYear == 0 {
		return FallbackGrowthFactor
	}
	if ingest.IsCompleteYear(daily, newestYear) {
		return CompleteYearGrowthFactor
	}
	if ingest.DistinctYears(daily) < minHistoryYears {
		return FallbackGrowthFactor
	}
	if trend == nil {
		trend = TrendGrowthEstimator{}
	}
	growth, err := trend.EstimateGrowth(daily, newestYear)
	if err != nil || growth <= 0 {
		log.WithError(err).Warnf("[Forecast] trend growth estimate unavailable, using fallback %.2f", FallbackGrowthFactor)
		return FallbackGrowthFactor
	}
	return growth
}
