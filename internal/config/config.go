// README: Config loader with env defaults for HTTP, DB, Redis, maps and pricing settings.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	HTTPAddr  string `mapstructure:"QUOTE_HTTP_ADDR"`
	DBDSN     string `mapstructure:"QUOTE_DB_DSN"`
	RedisAddr string `mapstructure:"QUOTE_REDIS_ADDR"`

	MapsAPIKey string `mapstructure:"QUOTE_MAPS_API_KEY"`

	// PriceTolerance is the maximum allowed gap, in currency units, between a
	// client-calculated price and the server total before verification fails.
	PriceTolerance float64 `mapstructure:"QUOTE_PRICE_TOLERANCE"`

	// AllowedStates is the comma-separated service-area allow list.
	AllowedStates string `mapstructure:"QUOTE_ALLOWED_STATES"`

	GeocodeMinIntervalMS int           `mapstructure:"QUOTE_GEOCODE_MIN_INTERVAL_MS"`
	GeocodeCacheTTL      time.Duration `mapstructure:"QUOTE_GEOCODE_CACHE_TTL"`
}

func Load() (Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("QUOTE_HTTP_ADDR", ":8080")
	viper.SetDefault("QUOTE_DB_DSN", "")
	viper.SetDefault("QUOTE_REDIS_ADDR", "")
	viper.SetDefault("QUOTE_MAPS_API_KEY", "")
	viper.SetDefault("QUOTE_PRICE_TOLERANCE", 1.0)
	viper.SetDefault("QUOTE_ALLOWED_STATES", "Tamil Nadu,Kerala,Puducherry,Pondicherry")
	viper.SetDefault("QUOTE_GEOCODE_MIN_INTERVAL_MS", 100)
	viper.SetDefault("QUOTE_GEOCODE_CACHE_TTL", 24*time.Hour)

	// A missing .env file is fine; env vars and defaults still apply.
	_ = viper.ReadInConfig()

	var cfg Config
	err := viper.Unmarshal(&cfg)
	return cfg, err
}

// AllowedStateList splits the configured allow list, dropping empty entries.
func (c Config) AllowedStateList() []string {
	parts := strings.Split(c.AllowedStates, ",")
	states := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			states = append(states, s)
		}
	}
	return states
}
