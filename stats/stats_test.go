package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euston-server/models"
)

func TestDescribe_TooFewPoints(t *testing.T) {
	_, ok := Describe(nil)
	assert.False(t, ok)

	_, ok = Describe([]float64{42})
	assert.False(t, ok)
}

func TestDescribe_MeanAndSampleStd(t *testing.T) {
	b, ok := Describe([]float64{1, 2, 3})
	require.True(t, ok)
	assert.InDelta(t, 2.0, b.Mean, 1e-9)
	assert.InDelta(t, 1.0, b.Std, 1e-9)
	assert.InDelta(t, 1.0, b.Lower(), 1e-9)
	assert.InDelta(t, 3.0, b.Upper(), 1e-9)
}

func TestFilterOutliers_RemovesSpike(t *testing.T) {
	filtered := FilterOutliers([]float64{10, 12, 11, 100})
	assert.Equal(t, []float64{10, 12, 11}, filtered)
}

func TestFilterOutliers_BoundsAreInclusive(t *testing.T) {
	// 1 and 3 sit exactly on the bounds and must survive.
	filtered := FilterOutliers([]float64{1, 2, 3})
	assert.Equal(t, []float64{1, 2, 3}, filtered)
}

func TestFilterOutliers_ShortSeriesPassesThrough(t *testing.T) {
	values := []float64{7}
	assert.Equal(t, values, FilterOutliers(values))
}

func TestFilterDailyCounts(t *testing.T) {
	daily := []models.DailyCount{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Bookings: 10},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Bookings: 12},
		{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Bookings: 11},
		{Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Bookings: 100},
	}
	b, ok := Describe(Bookings(daily))
	require.True(t, ok)

	kept := FilterDailyCounts(daily, b)
	require.Len(t, kept, 3)
	for _, d := range kept {
		assert.NotEqual(t, 100, d.Bookings)
	}
}
