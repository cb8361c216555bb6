// Package services orchestrates the forecasting, holiday and staffing
// pipelines on behalf of the HTTP layer.
package services

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"euston-server/forecast"
	"euston-server/holidays"
	"euston-server/ingest"
	"euston-server/metrics"
	"euston-server/models"
	"euston-server/staffing"
	"euston-server/stats"
)

// AnalysisService runs the self-contained analysis computations. Each
// call takes materialized inputs and returns new derived structures; it
// holds no state of its own.
type AnalysisService struct {
	stationCode string
	efficiency  float64
	buffer      float64
	trend       forecast.GrowthEstimator
}

// NewAnalysisService constructs an AnalysisService. A nil trend
// estimator selects the default trend/seasonality model.
func NewAnalysisService(stationCode string, efficiency, buffer float64, trend forecast.GrowthEstimator) *AnalysisService {
	return &AnalysisService{
		stationCode: stationCode,
		efficiency:  efficiency,
		buffer:      buffer,
		trend:       trend,
	}
}

// TrainDemandModel runs the full training pipeline on raw booking rows:
// aggregation, global outlier filtering, growth factor resolution and
// model fitting. Predictions target the newest year when it is complete,
// otherwise the year after it.
func (s *AnalysisService) TrainDemandModel(records []models.BookingRecord) (models.WeeklyPrediction, *models.ModelMetrics, error) {
	started := time.Now()

	daily, skipped := ingest.AggregateDaily(records, s.stationCode)
	metrics.RowsSkippedTotal.Add(float64(skipped))
	if len(daily) == 0 {
		metrics.TrainingRunsTotal.WithLabelValues("failure").Inc()
		return nil, nil, fmt.Errorf("no usable rows for station %s", s.stationCode)
	}
	log.Infof("[AnalysisService] Aggregated %d days (%d rows skipped)", len(daily), skipped)

	newestYear := ingest.NewestYear(daily)
	targetYear := newestYear + 1
	if ingest.IsCompleteYear(daily, newestYear) {
		targetYear = newestYear
	}

	growth := forecast.ResolveGrowthFactor(daily, s.trend)

	filtered := daily
	if b, ok := stats.Describe(stats.Bookings(daily)); ok {
		filtered = stats.FilterDailyCounts(daily, b)
	}

	predictions, modelMetrics, err := forecast.TrainWeeklyModel(filtered, targetYear, growth)
	if err != nil {
		metrics.TrainingRunsTotal.WithLabelValues("failure").Inc()
		return nil, nil, fmt.Errorf("training demand model: %w", err)
	}

	metrics.TrainingRunsTotal.WithLabelValues("success").Inc()
	metrics.TrainingDurationSeconds.Observe(time.Since(started).Seconds())
	metrics.GrowthFactor.Set(growth)
	metrics.ModelMAE.Set(modelMetrics.MAE)
	metrics.ModelMAPE.Set(modelMetrics.MAPE)
	log.Infof("[AnalysisService] Trained model for %d: growth=%.3f mae=%.1f", targetYear, growth, modelMetrics.MAE)
	return predictions, modelMetrics, nil
}

// AnalyzeHolidays aggregates raw rows without global filtering and runs
// the holiday pattern analysis.
func (s *AnalysisService) AnalyzeHolidays(records []models.BookingRecord) ([]models.HolidayAnalysis, map[string]float64, error) {
	daily, skipped := ingest.AggregateDaily(records, s.stationCode)
	metrics.RowsSkippedTotal.Add(float64(skipped))
	if len(daily) == 0 {
		return nil, nil, fmt.Errorf("no usable rows for station %s", s.stationCode)
	}

	analyses, normals := holidays.Analyze(daily)
	metrics.HolidayWindowsAnalyzed.Set(float64(len(analyses)))
	log.Infof("[AnalysisService] Analyzed %d holiday windows", len(analyses))
	return analyses, normals, nil
}

// PredictHoliday predicts demand for a target date inside a known
// holiday window.
func (s *AnalysisService) PredictHoliday(records []models.BookingRecord, date time.Time) (*models.HolidayDemandPrediction, error) {
	daily, skipped := ingest.AggregateDaily(records, s.stationCode)
	metrics.RowsSkippedTotal.Add(float64(skipped))
	if len(daily) == 0 {
		return nil, fmt.Errorf("no usable rows for station %s", s.stationCode)
	}
	return holidays.PredictDemand(daily, date, s.trend)
}

// DayAnalysis compares a day's predicted demand against the roster and
// produces the per-hour recommendation table.
func (s *AnalysisService) DayAnalysis(predictions models.WeeklyPrediction, roster models.Roster, day string) (*models.DayAnalysis, error) {
	total, ok := predictions[day]
	if !ok {
		return nil, fmt.Errorf("no prediction available for %q", day)
	}

	analysis := staffing.AnalyzeDay(total, roster, day, s.efficiency, s.buffer)

	under, over := 0, 0
	for _, rec := range analysis.Recommendations {
		switch rec.Status {
		case models.StatusUnderstaffed:
			under++
		case models.StatusOverstaffed:
			over++
		}
	}
	metrics.UnderstaffedHours.Set(float64(under))
	metrics.OverstaffedHours.Set(float64(over))
	return analysis, nil
}
