package holidays

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euston-server/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// dailyRange builds one DailyCount per day between from and to.
func dailyRange(from, to time.Time, f func(t time.Time) int) []models.DailyCount {
	var daily []models.DailyCount
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		daily = append(daily, models.DailyCount{
			Date:      d,
			Year:      d.Year(),
			DayOfWeek: d.Weekday().String(),
			Bookings:  f(d),
		})
	}
	return daily
}

func TestFindWindow_Christmas(t *testing.T) {
	w, ok := FindWindow(date(2024, time.December, 25))
	require.True(t, ok)
	assert.Equal(t, "Christmas", w.Name)
	assert.Equal(t, 2024, w.Year)
	assert.True(t, w.Start.Equal(date(2024, time.December, 23)))
	assert.True(t, w.End.Equal(date(2024, time.December, 26)))
}

func TestFindWindow_ClosedInterval(t *testing.T) {
	for _, d := range []time.Time{date(2024, time.December, 23), date(2024, time.December, 26)} {
		w, ok := FindWindow(d)
		require.True(t, ok, "date %s", d)
		assert.Equal(t, "Christmas", w.Name)
	}
}

func TestFindWindow_NotAHoliday(t *testing.T) {
	_, ok := FindWindow(date(2024, time.July, 4))
	assert.False(t, ok)
}

func TestNormalAverages_PerWeekdayFilter(t *testing.T) {
	// Three quiet Mondays and one spike; the spike is the outlier of the
	// Monday series and must not drag the normal average up.
	daily := []models.DailyCount{
		{Date: date(2023, time.November, 6), DayOfWeek: "Monday", Bookings: 100},
		{Date: date(2023, time.November, 13), DayOfWeek: "Monday", Bookings: 102},
		{Date: date(2023, time.November, 20), DayOfWeek: "Monday", Bookings: 98},
		{Date: date(2023, time.November, 27), DayOfWeek: "Monday", Bookings: 400},
	}
	normals := NormalAverages(daily)
	require.Contains(t, normals, "Monday")
	assert.InDelta(t, 100.0, normals["Monday"], 2.0)
	assert.NotContains(t, normals, "Friday")
}

func TestAnalyze_ChristmasWindow(t *testing.T) {
	daily := dailyRange(date(2023, time.October, 1), date(2023, time.December, 29),
		func(d time.Time) int {
			if d.Month() == time.December && d.Day() >= 23 && d.Day() <= 26 {
				return 500
			}
			return 200
		})

	analyses, normals := Analyze(daily)
	require.NotEmpty(t, analyses)
	assert.NotEmpty(t, normals)

	var christmas *models.HolidayAnalysis
	for i := range analyses {
		if analyses[i].HolidayName == "Christmas" && analyses[i].Year == 2023 {
			christmas = &analyses[i]
		}
	}
	require.NotNil(t, christmas, "Christmas 2023 analysis missing")

	assert.Len(t, christmas.Bookings, 4)
	for _, b := range christmas.Bookings {
		assert.Equal(t, 500, b.Bookings)
	}

	require.NotNil(t, christmas.Pre)
	assert.True(t, christmas.Pre.Date.Equal(date(2023, time.December, 22)))
	require.NotNil(t, christmas.Post)
	assert.True(t, christmas.Post.Date.Equal(date(2023, time.December, 27)))

	// Pre-day demand is at the normal level, so deviation is near zero.
	assert.InDelta(t, 0.0, christmas.Pre.PercentDiff, 5.0)
}

func TestAnalyze_DropsWindowsWithoutData(t *testing.T) {
	// Data covers only November; Easter 2023 has no in-window days.
	daily := dailyRange(date(2023, time.November, 1), date(2023, time.November, 30),
		func(time.Time) int { return 200 })

	analyses, _ := Analyze(daily)
	for _, a := range analyses {
		assert.NotEqual(t, "Easter", a.HolidayName)
	}
}

func TestAnalyze_SkipsFutureCalendarYears(t *testing.T) {
	daily := dailyRange(date(2023, time.December, 1), date(2023, time.December, 29),
		func(time.Time) int { return 200 })

	analyses, _ := Analyze(daily)
	for _, a := range analyses {
		assert.LessOrEqual(t, a.Year, 2023)
	}
}

func TestPredictDemand_MatchesHistoricalDay(t *testing.T) {
	// A complete 2023 keeps the growth factor at 1.0, so predictions
	// equal the historical counts.
	daily := dailyRange(date(2023, time.January, 1), date(2023, time.December, 29),
		func(d time.Time) int {
			if d.Month() == time.December && d.Day() >= 23 && d.Day() <= 26 {
				return 500
			}
			return 200
		})

	prediction, err := PredictDemand(daily, date(2024, time.December, 25), nil)
	require.NoError(t, err)

	assert.Equal(t, "Christmas", prediction.Holiday.Name)
	assert.Equal(t, 2024, prediction.Holiday.Year)
	assert.Equal(t, 1.0, prediction.GrowthFactor)

	require.Len(t, prediction.Predictions, 1)
	p := prediction.Predictions[0]
	assert.True(t, p.HistoricalDate.Equal(date(2023, time.December, 25)))
	assert.Equal(t, 2023, p.Year)
	assert.Equal(t, 500, p.HistoricalDemand)
	assert.Equal(t, 500, p.PredictedDemand)
}

func TestPredictDemand_AppliesGrowthFactor(t *testing.T) {
	// Incomplete single year of history forces the fallback growth.
	daily := dailyRange(date(2023, time.December, 1), date(2023, time.December, 27),
		func(time.Time) int { return 100 })

	prediction, err := PredictDemand(daily, date(2024, time.December, 25), nil)
	require.NoError(t, err)
	assert.Equal(t, 1.18, prediction.GrowthFactor)

	require.NotEmpty(t, prediction.Predictions)
	assert.Equal(t, 118, prediction.Predictions[0].PredictedDemand)
}

func TestPredictDemand_NotAHoliday(t *testing.T) {
	daily := dailyRange(date(2023, time.December, 1), date(2023, time.December, 29),
		func(time.Time) int { return 100 })

	_, err := PredictDemand(daily, date(2024, time.July, 4), nil)
	assert.ErrorIs(t, err, ErrNoHolidayWindow)
}

func TestPredictDemand_NoHistoricalPattern(t *testing.T) {
	// Data nowhere near any Easter window.
	daily := dailyRange(date(2023, time.November, 1), date(2023, time.November, 30),
		func(time.Time) int { return 100 })

	_, err := PredictDemand(daily, date(2024, time.March, 30), nil)
	assert.ErrorIs(t, err, ErrNoHistoricalPattern)
}

func TestBaseHolidayName(t *testing.T) {
	// The stripped suffix is the window's calendar year. A New Year's
	// window straddling the year boundary carries the following year in
	// its name, so nothing comes off.
	w := models.HolidayWindow{Name: "New Year's Day 2025", Year: 2024}
	assert.Equal(t, "New Year's Day 2025", baseHolidayName(w))

	matching := models.HolidayWindow{Name: "Summer Bank Holiday 2024", Year: 2024}
	assert.Equal(t, "Summer Bank Holiday", baseHolidayName(matching))

	plain := models.HolidayWindow{Name: "Easter", Year: 2024}
	assert.Equal(t, "Easter", baseHolidayName(plain))
}
