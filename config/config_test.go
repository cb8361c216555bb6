package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, "EUS", cfg.Station.Code)
	assert.Equal(t, 4.26, cfg.Staffing.Efficiency)
	assert.Equal(t, 1.2, cfg.Staffing.OverstaffBuffer)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestValidate(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())

	bad := *cfg
	bad.Staffing.Efficiency = 0
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Staffing.OverstaffBuffer = 0.5
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Station.Code = ""
	assert.Error(t, bad.Validate())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
