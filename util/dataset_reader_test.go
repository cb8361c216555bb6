package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestYearFromDatasetName(t *testing.T) {
	year, err := YearFromDatasetName("2023 Database.csv")
	require.NoError(t, err)
	assert.Equal(t, 2023, year)

	year, err = YearFromDatasetName("/tmp/uploads/2024 Database.csv")
	require.NoError(t, err)
	assert.Equal(t, 2024, year)

	_, err = YearFromDatasetName("database.csv")
	assert.Error(t, err)
}

func TestReadBookingDataset(t *testing.T) {
	csvBody := strings.Join([]string{
		"booking_id,station_code,scheduled_departure_date,destination",
		"1,EUS,02/01/2023,Manchester",
		"2,EUS,02/01/2023,Glasgow",
		"3,MAN,05/01/2023,London",
		"4,EUS", // short row, skipped
		"5,EUS,06/01/2023,Liverpool",
	}, "\n")

	records, err := ReadBookingDataset(strings.NewReader(csvBody), 2023)
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "EUS", records[0].StationCode)
	assert.Equal(t, "02/01/2023", records[0].DepartureDate)
	assert.Equal(t, 2023, records[0].Year)
	assert.Equal(t, "MAN", records[2].StationCode)
}

func TestReadBookingDataset_MissingColumns(t *testing.T) {
	_, err := ReadBookingDataset(strings.NewReader("a,b\n1,2\n"), 2023)
	assert.Error(t, err)
}
