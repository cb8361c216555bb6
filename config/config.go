// Package config loads the server configuration from file and
// environment, with working defaults for a local run.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Station  StationConfig  `mapstructure:"station"`
	Staffing StaffingConfig `mapstructure:"staffing"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RedisConfig holds the session store connection settings. Env "prod"
// selects a real Redis connection; anything else runs on the in-memory
// store.
type RedisConfig struct {
	Addr       string        `mapstructure:"addr"`
	Password   string        `mapstructure:"password"`
	DB         int           `mapstructure:"db"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// StationConfig identifies the station whose bookings are analysed.
type StationConfig struct {
	Code string `mapstructure:"code"`
}

// StaffingConfig holds the recommendation-engine tunables.
type StaffingConfig struct {
	Efficiency      float64 `mapstructure:"efficiency"`
	OverstaffBuffer float64 `mapstructure:"overstaff_buffer"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from an optional file path plus EUSTON_*
// environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("EUSTON")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)

	v.SetDefault("redis.addr", "redis:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.session_ttl", 24*time.Hour)

	v.SetDefault("station.code", "EUS")

	v.SetDefault("staffing.efficiency", 4.26)
	v.SetDefault("staffing.overstaff_buffer", 1.2)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// Validate checks the loaded values for contradictions.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr must not be empty")
	}
	if c.Station.Code == "" {
		return fmt.Errorf("station.code must not be empty")
	}
	if c.Staffing.Efficiency <= 0 {
		return fmt.Errorf("staffing.efficiency must be positive, got %v", c.Staffing.Efficiency)
	}
	if c.Staffing.OverstaffBuffer < 1 {
		return fmt.Errorf("staffing.overstaff_buffer must be >= 1, got %v", c.Staffing.OverstaffBuffer)
	}
	return nil
}
