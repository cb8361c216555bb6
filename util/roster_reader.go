package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"euston-server/models"
	"euston-server/timetable"
)

// Default shift hours for roster cells carrying a bare shift code
// instead of a time range.
var shiftCodeDefaults = map[string]models.Shift{
	"8":  {Start: "06:30", End: "14:30"},
	"10": {Start: "06:30", End: "16:30"},
}

// ReadRoster parses the weekly roster CSV. The format puts staff names
// in the first column and day columns named after the seven days; each
// staff member occupies a time-range row optionally followed by a
// shift-code row whose first column is blank. Cells hold a range like
// "0630-1430", a non-working marker, or nothing; a bare shift code in
// the companion row falls back to that code's default hours.
//
// Unparseable cells are skipped. Every canonical day is present in the
// result, shiftless days as empty lists.
func ReadRoster(r io.Reader) (models.Roster, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading roster header: %w", err)
	}
	dayCols := make(map[string]int)
	for i, col := range header {
		name := strings.TrimSpace(col)
		if timetable.IsCanonicalDay(name) {
			dayCols[name] = i
		}
	}
	if len(dayCols) == 0 {
		return nil, fmt.Errorf("roster has no day columns")
	}

	rows, err := readAllRows(cr)
	if err != nil {
		return nil, fmt.Errorf("reading roster rows: %w", err)
	}

	roster := make(models.Roster, len(timetable.DaysOfWeek))
	for _, day := range timetable.DaysOfWeek {
		roster[day] = []models.Shift{}
	}

	for i := 0; i < len(rows); {
		staffName := cellAt(rows[i], 0)
		// Blank first columns and stray header fragments are not staff rows.
		if staffName == "" || staffName == "nan" || strings.Contains(staffName, ",") {
			i++
			continue
		}

		timeRow := rows[i]
		var codeRow []string
		if i+1 < len(rows) && isCodeRow(rows[i+1]) {
			codeRow = rows[i+1]
			i += 2
		} else {
			i++
		}

		for day, col := range dayCols {
			cell := cellAt(timeRow, col)
			if timetable.IsNonWorking(cell) {
				continue
			}
			if shift, ok := timetable.ParseShiftRange(cell); ok {
				roster[day] = append(roster[day], shift)
				continue
			}
			code := cellAt(codeRow, col)
			if shift, ok := shiftCodeDefaults[code]; ok {
				roster[day] = append(roster[day], shift)
				continue
			}
			log.Warnf("[RosterReader] Skipping cell %q for %s on %s", cell, staffName, day)
		}
	}
	return roster, nil
}

func readAllRows(cr *csv.Reader) ([][]string, error) {
	var rows [][]string
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func isCodeRow(row []string) bool {
	name := cellAt(row, 0)
	return name == "" || name == "nan"
}

func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}
