// Package holidays analyses booking patterns around UK bank holidays and
// predicts demand for upcoming holiday dates.
package holidays

import (
	"sort"
	"time"

	"euston-server/models"
)

// Calendar is the fixed bank-holiday reference table. It is data, not
// logic: appending future years must never require touching the
// analysis code.
var Calendar = buildCalendar(map[int]map[string][2]string{
	2023: {
		"New Year's Day":          {"2023-01-02", "2023-01-02"},
		"Easter":                  {"2023-04-07", "2023-04-10"},
		"Early May Bank Holiday":  {"2023-04-29", "2023-05-01"},
		"Coronation Bank Holiday": {"2023-05-06", "2023-05-08"},
		"Spring Bank Holiday":     {"2023-05-27", "2023-05-29"},
		"Summer Bank Holiday":     {"2023-08-26", "2023-08-28"},
		"Christmas":               {"2023-12-23", "2023-12-26"},
		"New Year's Day 2024":     {"2023-12-30", "2024-01-01"},
	},
	2024: {
		"Easter":                 {"2024-03-29", "2024-04-01"},
		"Early May Bank Holiday": {"2024-05-04", "2024-05-06"},
		"Spring Bank Holiday":    {"2024-05-25", "2024-05-27"},
		"Summer Bank Holiday":    {"2024-08-24", "2024-08-26"},
		"Christmas":              {"2024-12-23", "2024-12-26"},
		"New Year's Day 2025":    {"2024-12-28", "2025-01-01"},
	},
	// 2025 and 2026 mirror the published GOV.UK dates.
	2025: {
		"Easter":                 {"2025-04-18", "2025-04-21"},
		"Early May Bank Holiday": {"2025-05-03", "2025-05-05"},
		"Spring Bank Holiday":    {"2025-05-24", "2025-05-26"},
		"Summer Bank Holiday":    {"2025-08-23", "2025-08-25"},
		"Christmas":              {"2025-12-23", "2025-12-26"},
		"New Year's Day 2026":    {"2025-12-27", "2026-01-01"},
	},
	2026: {
		"Easter":                 {"2026-04-03", "2026-04-06"},
		"Early May Bank Holiday": {"2026-05-02", "2026-05-04"},
		"Spring Bank Holiday":    {"2026-05-23", "2026-05-25"},
		"Summer Bank Holiday":    {"2026-08-29", "2026-08-31"},
		"Christmas":              {"2026-12-23", "2026-12-28"},
		"New Year's Day 2027":    {"2026-12-26", "2027-01-01"},
	},
})

func buildCalendar(table map[int]map[string][2]string) []models.HolidayWindow {
	var windows []models.HolidayWindow
	for year, holidays := range table {
		for name, dates := range holidays {
			windows = append(windows, models.HolidayWindow{
				Name:  name,
				Year:  year,
				Start: mustDate(dates[0]),
				End:   mustDate(dates[1]),
			})
		}
	}
	sort.Slice(windows, func(i, j int) bool {
		if !windows[i].Start.Equal(windows[j].Start) {
			return windows[i].Start.Before(windows[j].Start)
		}
		return windows[i].Name < windows[j].Name
	})
	return windows
}

func mustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic("holidays: bad calendar date " + s)
	}
	return t
}

// FindWindow returns the calendar window whose interval contains the
// date, across all calendar years. The second return is false when the
// date falls on no known holiday.
func FindWindow(date time.Time) (models.HolidayWindow, bool) {
	for _, w := range Calendar {
		if w.Contains(date) {
			return w, true
		}
	}
	return models.HolidayWindow{}, false
}
