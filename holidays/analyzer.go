package holidays

import (
	"time"

	"euston-server/ingest"
	"euston-server/models"
	"euston-server/stats"
	"euston-server/timetable"
)

// NormalAverages computes each weekday's baseline booking level: the
// mean of that weekday's counts after filtering that weekday's own
// series to ±1σ. When the filter empties the series the unfiltered mean
// is used instead. Weekdays with no observations are absent from the map.
func NormalAverages(daily []models.DailyCount) map[string]float64 {
	byDay := make(map[string][]float64)
	for _, d := range daily {
		byDay[d.DayOfWeek] = append(byDay[d.DayOfWeek], float64(d.Bookings))
	}

	normals := make(map[string]float64, len(timetable.DaysOfWeek))
	for _, day := range timetable.DaysOfWeek {
		values := byDay[day]
		if len(values) == 0 {
			continue
		}
		filtered := stats.FilterOutliers(values)
		if len(filtered) == 0 {
			filtered = values
		}
		normals[day] = mean(filtered)
	}
	return normals
}

// Analyze builds one HolidayAnalysis per calendar window that has at
// least one in-window observation. The input series must be unfiltered:
// holiday spikes are exactly the outliers the global filter would drop.
//
// Calendar years beyond the newest year in the data are skipped, so
// future holidays never appear as empty historical entries.
func Analyze(daily []models.DailyCount) ([]models.HolidayAnalysis, map[string]float64) {
	normals := NormalAverages(daily)

	byDate := make(map[time.Time]models.DailyCount, len(daily))
	for _, d := range daily {
		byDate[d.Date] = d
	}
	newestYear := ingest.NewestYear(daily)

	var analyses []models.HolidayAnalysis
	for _, w := range Calendar {
		if w.Year > newestYear {
			continue
		}

		a := models.HolidayAnalysis{
			HolidayName: w.Name,
			Year:        w.Year,
			Start:       w.Start,
			End:         w.End,
			PreDate:     w.Start.AddDate(0, 0, -1),
			PostDate:    w.End.AddDate(0, 0, 1),
		}
		a.Pre = edgeDay(byDate, a.PreDate, normals)
		a.Post = edgeDay(byDate, a.PostDate, normals)

		for date := w.Start; !date.After(w.End); date = date.AddDate(0, 0, 1) {
			if d, ok := byDate[date]; ok {
				a.Bookings = append(a.Bookings, models.DayBooking{
					Date:     d.Date,
					Day:      d.DayOfWeek,
					Bookings: d.Bookings,
				})
			}
		}

		if len(a.Bookings) > 0 {
			analyses = append(analyses, a)
		}
	}
	return analyses, normals
}

// edgeDay looks up the booking count on a window-adjacent day and its
// deviation from the weekday normal. A zero or missing normal yields a
// 0% deviation rather than a division by zero.
func edgeDay(byDate map[time.Time]models.DailyCount, date time.Time, normals map[string]float64) *models.EdgeDayBooking {
	d, ok := byDate[date]
	if !ok {
		return nil
	}
	edge := &models.EdgeDayBooking{
		Date:     d.Date,
		Day:      d.DayOfWeek,
		Bookings: d.Bookings,
	}
	if normal := normals[d.DayOfWeek]; normal > 0 {
		edge.PercentDiff = (float64(d.Bookings) - normal) / normal * 100
	}
	return edge
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
