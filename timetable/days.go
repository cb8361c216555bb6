// Package timetable holds the station's calendar conventions: canonical
// day names, the operational hour sets, and shift time parsing.
package timetable

// DaysOfWeek are the canonical day names, Sunday first.
var DaysOfWeek = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// The station opens an hour later on Sundays, so the Sunday hour set has
// one slot fewer than the weekday set.
var operationalHoursWeekday = []string{
	"07:00", "08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
	"21:00", "22:00", "23:00",
}

var operationalHoursSunday = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00", "13:00",
	"14:00", "15:00", "16:00", "17:00", "18:00", "19:00", "20:00",
	"21:00", "22:00", "23:00",
}

// IsCanonicalDay reports whether name is one of the seven canonical day
// names.
func IsCanonicalDay(name string) bool {
	for _, d := range DaysOfWeek {
		if d == name {
			return true
		}
	}
	return false
}

// OperationalHours returns the hour labels the station operates on the
// given day. Any day other than Sunday uses the weekday set.
func OperationalHours(day string) []string {
	if day == "Sunday" {
		return operationalHoursSunday
	}
	return operationalHoursWeekday
}
