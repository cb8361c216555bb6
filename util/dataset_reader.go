// Package util holds file-format helpers for the upload surfaces: the
// historical booking datasets, the weekly roster CSV, and the analysis
// chart renderer.
package util

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"euston-server/models"
)

// YearFromDatasetName extracts the year from a dataset filename like
// "2023 Database.csv".
func YearFromDatasetName(name string) (int, error) {
	base := filepath.Base(name)
	fields := strings.Fields(base)
	if len(fields) == 0 {
		return 0, fmt.Errorf("empty dataset filename")
	}
	year, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, fmt.Errorf("dataset filename %q: expected 'YYYY Database.csv'", base)
	}
	return year, nil
}

// ReadBookingDataset reads one historical dataset CSV into booking
// records tagged with the file's year. The header row must contain
// station_code and scheduled_departure_date columns; extra columns are
// ignored. Short or malformed rows are skipped, not fatal.
func ReadBookingDataset(r io.Reader, year int) ([]models.BookingRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading dataset header: %w", err)
	}
	stationCol, dateCol := -1, -1
	for i, col := range header {
		switch strings.TrimSpace(col) {
		case "station_code":
			stationCol = i
		case "scheduled_departure_date":
			dateCol = i
		}
	}
	if stationCol < 0 || dateCol < 0 {
		return nil, fmt.Errorf("dataset missing station_code/scheduled_departure_date columns")
	}

	var records []models.BookingRecord
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		if len(row) <= stationCol || len(row) <= dateCol {
			skipped++
			continue
		}
		records = append(records, models.BookingRecord{
			StationCode:   strings.TrimSpace(row[stationCol]),
			DepartureDate: strings.TrimSpace(row[dateCol]),
			Year:          year,
		})
	}
	if skipped > 0 {
		log.Warnf("[DatasetReader] Skipped %d malformed rows in %d dataset", skipped, year)
	}
	return records, nil
}
