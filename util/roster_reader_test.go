package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euston-server/models"
)

const rosterCSV = `Name,Sunday,Monday,Tuesday,Wednesday,Thursday,Friday,Saturday
Alice,OFF,0630-1430,0630-1430,OFF,1500-2300,1500-2300,OFF
,,8,8,,,,
Bob,08:00-16:00,OFF,RD,SPARE,0630-1430,Vacancy,630-1430
Carol,OFF,worked,OFF,OFF,OFF,OFF,OFF
,,10,,,,,
`

func TestReadRoster(t *testing.T) {
	roster, err := ReadRoster(strings.NewReader(rosterCSV))
	require.NoError(t, err)

	// Every canonical day is present even when shiftless.
	require.Len(t, roster, 7)
	assert.Empty(t, roster["Wednesday"])

	require.Len(t, roster["Monday"], 2)
	assert.Contains(t, roster["Monday"], models.Shift{Start: "06:30", End: "14:30"})
	// Carol's Monday cell is unparseable but her code row says "10".
	assert.Contains(t, roster["Monday"], models.Shift{Start: "06:30", End: "16:30"})

	require.Len(t, roster["Sunday"], 1)
	assert.Equal(t, models.Shift{Start: "08:00", End: "16:00"}, roster["Sunday"][0])

	// Short compact times are left-padded.
	require.Len(t, roster["Saturday"], 1)
	assert.Equal(t, models.Shift{Start: "06:30", End: "14:30"}, roster["Saturday"][0])

	require.Len(t, roster["Thursday"], 2)
}

func TestReadRoster_NoDayColumns(t *testing.T) {
	_, err := ReadRoster(strings.NewReader("Name,Foo,Bar\nAlice,1,2\n"))
	assert.Error(t, err)
}

func TestReadRoster_EmptyBody(t *testing.T) {
	roster, err := ReadRoster(strings.NewReader("Name,Sunday,Monday,Tuesday,Wednesday,Thursday,Friday,Saturday\n"))
	require.NoError(t, err)
	for day, shifts := range roster {
		assert.Empty(t, shifts, "day %s", day)
	}
}
