// Package stats provides the empirical-bounds outlier filter used before
// model training and when computing per-weekday normal averages.
//
// A series is restricted to [μ−1σ, μ+1σ], inclusive on both ends, with σ
// the Bessel-corrected sample standard deviation. Bounds are recomputed
// per filtering context and never reused across contexts.
package stats

import (
	"gonum.org/v1/gonum/stat"

	"euston-server/models"
)

// Bounds holds the mean and sample standard deviation of a series.
type Bounds struct {
	Mean float64
	Std  float64
}

// Lower returns the lower empirical bound (μ − 1σ).
func (b Bounds) Lower() float64 { return b.Mean - b.Std }

// Upper returns the upper empirical bound (μ + 1σ).
func (b Bounds) Upper() float64 { return b.Mean + b.Std }

// Describe computes the mean/σ bounds of a series. The second return is
// false when the series has fewer than 2 points, where σ is undefined.
func Describe(values []float64) (Bounds, bool) {
	if len(values) < 2 {
		return Bounds{}, false
	}
	return Bounds{
		Mean: stat.Mean(values, nil),
		Std:  stat.StdDev(values, nil),
	}, true
}

// FilterWithin restricts values to the given bounds, inclusive both ends.
func FilterWithin(values []float64, b Bounds) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if v >= b.Lower() && v <= b.Upper() {
			out = append(out, v)
		}
	}
	return out
}

// FilterOutliers restricts values to ±1σ of their own distribution.
// Series with fewer than 2 points are returned unchanged rather than
// failing: no standard deviation means no filtering.
func FilterOutliers(values []float64) []float64 {
	b, ok := Describe(values)
	if !ok {
		return values
	}
	return FilterWithin(values, b)
}

// Bookings extracts the booking totals of a daily series, in order.
func Bookings(daily []models.DailyCount) []float64 {
	vals := make([]float64, len(daily))
	for i, d := range daily {
		vals[i] = float64(d.Bookings)
	}
	return vals
}

// FilterDailyCounts restricts a daily series to the rows whose booking
// total lies within the given bounds.
func FilterDailyCounts(daily []models.DailyCount, b Bounds) []models.DailyCount {
	out := make([]models.DailyCount, 0, len(daily))
	for _, d := range daily {
		v := float64(d.Bookings)
		if v >= b.Lower() && v <= b.Upper() {
			out = append(out, d)
		}
	}
	return out
}
