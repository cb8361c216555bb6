// Package metrics exposes Prometheus gauges and counters for the
// forecasting and staffing pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application's own prometheus registry, kept separate
// from the global default registry.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// RowsSkippedTotal counts raw booking rows dropped during aggregation
// (wrong station or unparseable date).
var RowsSkippedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "euston",
	Name:      "ingest_rows_skipped_total",
	Help:      "Raw booking rows dropped during aggregation",
})

// TrainingRunsTotal counts demand-model training runs by outcome.
var TrainingRunsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "euston",
	Name:      "training_runs_total",
	Help:      "Demand model training runs by outcome",
}, []string{"outcome"})

// TrainingDurationSeconds observes end-to-end training latency.
var TrainingDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "euston",
	Name:      "training_duration_seconds",
	Help:      "End-to-end demand model training latency",
	Buckets:   prometheus.DefBuckets,
})

// GrowthFactor records the growth factor applied by the latest training
// run.
var GrowthFactor = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "euston",
	Name:      "model_growth_factor",
	Help:      "Year-over-year growth factor used by the latest trained model",
})

// ModelMAE records the held-out mean absolute error of the latest model.
var ModelMAE = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "euston",
	Name:      "model_mae",
	Help:      "Held-out mean absolute error of the latest trained model",
})

// ModelMAPE records the held-out mean absolute percentage error of the
// latest model.
var ModelMAPE = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "euston",
	Name:      "model_mape_percent",
	Help:      "Held-out mean absolute percentage error of the latest trained model",
})

// UnderstaffedHours records the understaffed hour count of the most
// recent day analysis.
var UnderstaffedHours = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "euston",
	Name:      "analysis_understaffed_hours",
	Help:      "Understaffed operational hours in the most recent day analysis",
})

// OverstaffedHours records the overstaffed hour count of the most recent
// day analysis.
var OverstaffedHours = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "euston",
	Name:      "analysis_overstaffed_hours",
	Help:      "Overstaffed operational hours in the most recent day analysis",
})

// HolidayWindowsAnalyzed records how many holiday windows had data in
// the most recent holiday analysis run.
var HolidayWindowsAnalyzed = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "euston",
	Name:      "holiday_windows_analyzed",
	Help:      "Holiday windows with in-window data in the most recent analysis",
})
