package staffing

import (
	"math"

	"euston-server/models"
	"euston-server/timetable"
)

const (
	// DefaultStaffEfficiency is the customers one staff member serves per
	// hour, calibrated against historical Euston throughput.
	DefaultStaffEfficiency = 4.26

	// DefaultOverstaffBuffer is the slack allowed above required staffing
	// before an hour is flagged as overstaffed (20%).
	DefaultOverstaffBuffer = 1.2
)

// RequiredStaff converts hourly demand to a staffing level. An hour with
// zero demand still requires one member of staff on the floor.
func RequiredStaff(demand int, efficiency float64) int {
	if demand <= 0 {
		return 1
	}
	return int(math.Ceil(float64(demand) / efficiency))
}

// Recommend classifies each operational hour against demand and coverage:
//
//	coverage <  required          -> understaffed, Deficit = required - coverage
//	coverage >  required * buffer -> overstaffed,  Excess = coverage - required
//	otherwise                     -> adequate
func Recommend(demand, coverage models.HourlyProfile, day string, efficiency, buffer float64) []models.Recommendation {
	hours := timetable.OperationalHours(day)
	recs := make([]models.Recommendation, 0, len(hours))
	for _, hour := range hours {
		d := demand[hour]
		c := coverage[hour]
		required := RequiredStaff(d, efficiency)

		rec := models.Recommendation{
			Hour:     hour,
			Demand:   d,
			Coverage: c,
			Required: required,
			Status:   models.StatusAdequate,
		}
		switch {
		case c < required:
			rec.Status = models.StatusUnderstaffed
			rec.Deficit = required - c
		case float64(c) > float64(required)*buffer:
			rec.Status = models.StatusOverstaffed
			rec.Excess = c - required
		}
		recs = append(recs, rec)
	}
	return recs
}

// AnalyzeDay runs the full per-day pipeline: decompose the predicted
// total into hourly demand, compute roster coverage, and classify every
// hour, with the summary figures the report surfaces alongside the table.
func AnalyzeDay(totalCustomers int, roster models.Roster, day string, efficiency, buffer float64) *models.DayAnalysis {
	demand := HourlyDemand(totalCustomers, day)
	coverage := HourlyCoverage(roster, day)
	recs := Recommend(demand, coverage, day, efficiency, buffer)

	analysis := &models.DayAnalysis{
		Day:             day,
		TotalCustomers:  totalCustomers,
		Hours:           timetable.OperationalHours(day),
		Demand:          demand,
		Coverage:        coverage,
		Recommendations: recs,
	}
	for _, rec := range recs {
		analysis.TotalStaffHours += rec.Coverage
		if rec.Status == models.StatusUnderstaffed {
			analysis.UnderstaffedHours++
		}
	}
	if analysis.TotalStaffHours > 0 {
		analysis.EfficiencyRatio = float64(totalCustomers) / float64(analysis.TotalStaffHours)
	}
	return analysis
}
