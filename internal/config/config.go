package config

import (
	"log/slog"
	"os"
	"time"
)

// Config holds process-wide settings loaded from environment variables.
// The default display unit can also be set per node through the
// funds_display_unit plugin option, which takes precedence.
type Config struct {
	TickerURL     string
	TickerTimeout time.Duration
	RPCTimeout    time.Duration
	DisplayUnit   string
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	return Config{
		TickerURL:     envOrDefault("TICKER_URL", "https://api.bitaps.com/market/v1/ticker"),
		TickerTimeout: envOrDefaultDuration("TICKER_TIMEOUT", 30*time.Second),
		RPCTimeout:    envOrDefaultDuration("RPC_TIMEOUT", 30*time.Second),
		DisplayUnit:   envOrDefault("FUNDS_DISPLAY_UNIT", "s"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
