package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"euston-server/forecast"
	"euston-server/models"
)

func TestSessionService_StartsWithDefaults(t *testing.T) {
	svc := NewSessionService(nil)
	state := svc.Current()

	assert.NotEmpty(t, state.ID)
	assert.Equal(t, forecast.DefaultWeeklyPredictions, state.WeeklyPredictions)
	assert.Nil(t, state.Metrics)
}

func TestSessionService_SetPredictions(t *testing.T) {
	svc := NewSessionService(nil)

	updated := models.WeeklyPrediction{"Monday": 999}
	metrics := &models.ModelMetrics{MAE: 1.5, GrowthFactor: 1.18}
	svc.SetPredictions(updated, metrics)

	state := svc.Current()
	assert.Equal(t, 999, state.WeeklyPredictions["Monday"])
	require.NotNil(t, state.Metrics)
	assert.Equal(t, 1.18, state.Metrics.GrowthFactor)
}

func TestSessionService_SnapshotDoesNotAlias(t *testing.T) {
	svc := NewSessionService(nil)

	snapshot := svc.Current()
	snapshot.WeeklyPredictions["Monday"] = -1

	fresh := svc.Current()
	assert.Equal(t, forecast.DefaultWeeklyPredictions["Monday"], fresh.WeeklyPredictions["Monday"])
}

func TestSessionService_SnapshotRosterDoesNotAlias(t *testing.T) {
	svc := NewSessionService(nil)
	svc.SetRoster(models.Roster{
		"Monday": {{Start: "06:30", End: "14:30"}},
	})

	snapshot := svc.Current()
	snapshot.Roster["Monday"] = nil
	snapshot.Roster["Tuesday"] = []models.Shift{{Start: "09:00", End: "17:00"}}

	fresh := svc.Current()
	assert.Len(t, fresh.Roster["Monday"], 1)
	assert.NotContains(t, fresh.Roster, "Tuesday")
}

func TestSessionService_Roster(t *testing.T) {
	svc := NewSessionService(nil)

	_, err := svc.Roster()
	assert.Error(t, err, "no roster uploaded yet")

	roster := models.Roster{
		"Monday": {{Start: "06:30", End: "14:30"}},
	}
	svc.SetRoster(roster)

	got, err := svc.Roster()
	require.NoError(t, err)
	assert.Len(t, got["Monday"], 1)

	state := svc.Current()
	assert.WithinDuration(t, time.Now().UTC(), state.CreatedAt, time.Minute)
}
