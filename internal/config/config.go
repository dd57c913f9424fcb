package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	DBSource              string        `mapstructure:"DB_SOURCE"`
	ServerAddress         string        `mapstructure:"SERVER_ADDRESS"`
	Environment           string        `mapstructure:"ENVIRONMENT"`
	LogLevel              string        `mapstructure:"LOG_LEVEL"`
	GoogleMapsAPIKey      string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GoogleMapsBaseURL     string        `mapstructure:"GOOGLE_MAPS_BASE_URL"`
	ProviderTimeout       time.Duration `mapstructure:"PROVIDER_TIMEOUT"`
	MinRadiusKm           float64       `mapstructure:"MIN_RADIUS_KM"`
	DefaultRadiusKm       float64       `mapstructure:"DEFAULT_RADIUS_KM"`
	MaxRadiusKm           float64       `mapstructure:"MAX_RADIUS_KM"`
	DefaultPageLimit      int           `mapstructure:"DEFAULT_PAGE_LIMIT"`
	MaxPageLimit          int           `mapstructure:"MAX_PAGE_LIMIT"`
	GeocodeDedupeInflight bool          `mapstructure:"GEOCODE_DEDUPE_INFLIGHT"`
	OTelExporterEndpoint  string        `mapstructure:"OTEL_EXPORTER_ENDPOINT"`
	ShutdownTimeout       time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
	MigrateOnStart        bool          `mapstructure:"MIGRATE_ON_START"`
}

var defaults = map[string]any{
	"DB_SOURCE":               "",
	"SERVER_ADDRESS":          "0.0.0.0:8080",
	"ENVIRONMENT":             "development",
	"LOG_LEVEL":               "info",
	"GOOGLE_MAPS_API_KEY":     "",
	"GOOGLE_MAPS_BASE_URL":    "https://maps.googleapis.com/maps/api",
	"PROVIDER_TIMEOUT":        "10s",
	"MIN_RADIUS_KM":           0.1,
	"DEFAULT_RADIUS_KM":       5.0,
	"MAX_RADIUS_KM":           50.0,
	"DEFAULT_PAGE_LIMIT":      20,
	"MAX_PAGE_LIMIT":          100,
	"GEOCODE_DEDUPE_INFLIGHT": true,
	"OTEL_EXPORTER_ENDPOINT":  "",
	"SHUTDOWN_TIMEOUT":        "10s",
	"MIGRATE_ON_START":        true,
}

// LoadConfig reads configuration from app.env in path, overridden by
// environment variables. A missing file is not an error.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, config.Validate()
}

// Validate checks the values that have no usable zero value.
func (c Config) Validate() error {
	switch {
	case c.DBSource == "":
		return errors.New("config: DB_SOURCE is required")
	case c.ProviderTimeout <= 0:
		return errors.New("config: PROVIDER_TIMEOUT must be positive")
	case c.MinRadiusKm <= 0 || c.MinRadiusKm > c.MaxRadiusKm:
		return fmt.Errorf("config: MIN_RADIUS_KM must be in (0, %g]", c.MaxRadiusKm)
	case c.DefaultRadiusKm < c.MinRadiusKm || c.DefaultRadiusKm > c.MaxRadiusKm:
		return fmt.Errorf("config: DEFAULT_RADIUS_KM must be in [%g, %g]", c.MinRadiusKm, c.MaxRadiusKm)
	case c.DefaultPageLimit < 1 || c.DefaultPageLimit > c.MaxPageLimit:
		return fmt.Errorf("config: DEFAULT_PAGE_LIMIT must be in [1, %d]", c.MaxPageLimit)
	}
	return nil
}
