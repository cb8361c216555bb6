// Package staffing decomposes a daily demand total into an hourly
// profile, computes roster coverage, and turns the demand/coverage
// deltas into per-hour staffing recommendations.
package staffing

import (
	"math"

	"euston-server/models"
	"euston-server/timetable"
)

// Reference hourly distribution per day type, as share of daily demand.
// The tables are kept as published; their raw sums exceed 1, so shares
// are renormalised over the day's operational hours at decomposition
// time to make the hourly profile sum back to the daily total.
var hourlyPatterns = map[string]map[string]float64{
	"Weekday": {
		"07:00": 0.0156, "08:00": 0.0347, "09:00": 0.0448, "10:00": 0.0756,
		"11:00": 0.1109, "12:00": 0.1456, "13:00": 0.1456, "14:00": 0.1259,
		"15:00": 0.1055, "16:00": 0.0857, "17:00": 0.0732, "18:00": 0.0674,
		"19:00": 0.0606, "20:00": 0.0389, "21:00": 0.0269, "22:00": 0.0112,
		"23:00": 0.0079,
	},
	"Sunday": {
		"08:00": 0.0347, "09:00": 0.0448, "10:00": 0.0756,
		"11:00": 0.1109, "12:00": 0.1456, "13:00": 0.1456, "14:00": 0.1259,
		"15:00": 0.1055, "16:00": 0.0857, "17:00": 0.0732, "18:00": 0.0674,
		"19:00": 0.0606, "20:00": 0.0389, "21:00": 0.0269, "22:00": 0.0112,
		"23:00": 0.0079,
	},
}

func patternFor(day string) map[string]float64 {
	if day == "Sunday" {
		return hourlyPatterns["Sunday"]
	}
	return hourlyPatterns["Weekday"]
}

// HourlyDemand spreads a daily customer total across the day's
// operational hours according to the reference distribution.
func HourlyDemand(totalCustomers int, day string) models.HourlyProfile {
	hours := timetable.OperationalHours(day)
	pattern := patternFor(day)

	var sum float64
	for _, hour := range hours {
		sum += pattern[hour]
	}

	demand := make(models.HourlyProfile, len(hours))
	for _, hour := range hours {
		share := 0.0
		if sum > 0 {
			share = pattern[hour] / sum
		}
		demand[hour] = int(math.Round(float64(totalCustomers) * share))
	}
	return demand
}
