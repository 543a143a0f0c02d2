// Package config reads process configuration through viper: an optional
// data/config.yml file, overridable by environment variables, with working
// defaults for local development.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings of one visualizer backend process.
type Config struct {
	// Port is the HTTP API port.
	Port int

	// DataDir holds distances.csv and cities_positions_verbose.json.
	DataDir string

	// Timeout bounds request handling.
	Timeout time.Duration

	// UseRateLimit toggles the per-client request limiter.
	UseRateLimit bool

	// RateLimitRPS is the sustained request budget per client.
	RateLimitRPS float64
}

// Read loads the configuration. A missing config file is fine — defaults
// and environment variables cover everything; any other read failure is an
// error.
func Read() (*Config, error) {
	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")

	viper.SetDefault("API_PORT", 8080)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("USE_RATE_LIMIT", true)
	viper.SetDefault("RATE_LIMIT_RPS", 20.0)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: read config file: %w", err)
		}
	}

	return &Config{
		Port:         viper.GetInt("API_PORT"),
		DataDir:      viper.GetString("DATA_DIR"),
		Timeout:      viper.GetDuration("API_TIMEOUT"),
		UseRateLimit: viper.GetBool("USE_RATE_LIMIT"),
		RateLimitRPS: viper.GetFloat64("RATE_LIMIT_RPS"),
	}, nil
}
