package staffing

import (
	"euston-server/models"
	"euston-server/timetable"
)

// HourlyCoverage counts rostered staff on duty at each operational hour
// of the day. A shift covers an hour when the hour's start lies inside
// the shift half-open: start <= hour < end, compared in minutes of day.
// Days absent from the roster yield an all-zero profile.
func HourlyCoverage(roster models.Roster, day string) models.HourlyProfile {
	hours := timetable.OperationalHours(day)
	coverage := make(models.HourlyProfile, len(hours))
	for _, hour := range hours {
		coverage[hour] = 0
	}

	for _, shift := range roster[day] {
		start := timetable.TimeToMinutes(shift.Start)
		end := timetable.TimeToMinutes(shift.End)
		for _, hour := range hours {
			m := timetable.TimeToMinutes(hour)
			if start <= m && m < end {
				coverage[hour]++
			}
		}
	}
	return coverage
}
