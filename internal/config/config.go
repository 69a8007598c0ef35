package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/vaultpass/passgen-go/internal/crypto"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	LogFormat      string
	RandomSource   string
	RateLimitRPS   float64
	RateLimitBurst int
	MetricsEnabled bool
}

// Load reads the configuration from the environment. Callers load any .env
// file beforehand.
func Load() (Config, error) {
	cfg := Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		LogLevel:     strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:    strings.ToLower(getEnv("LOG_FORMAT", "text")),
		RandomSource: strings.ToLower(getEnv("RANDOM_SOURCE", crypto.SourceCrypto)),
	}

	var err error
	if cfg.RateLimitRPS, err = strconv.ParseFloat(getEnv("RATE_LIMIT_RPS", "5"), 64); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
	}
	if cfg.RateLimitBurst, err = strconv.Atoi(getEnv("RATE_LIMIT_BURST", "10")); err != nil {
		return Config{}, fmt.Errorf("RATE_LIMIT_BURST: %w", err)
	}
	if cfg.MetricsEnabled, err = strconv.ParseBool(getEnv("METRICS_ENABLED", "true")); err != nil {
		return Config{}, fmt.Errorf("METRICS_ENABLED: %w", err)
	}

	if _, err := crypto.SourceByName(cfg.RandomSource); err != nil {
		return Config{}, fmt.Errorf("RANDOM_SOURCE: %w", err)
	}
	if cfg.Env == "production" && cfg.RandomSource != crypto.SourceCrypto {
		return Config{}, fmt.Errorf("RANDOM_SOURCE must be %q in production", crypto.SourceCrypto)
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return Config{}, fmt.Errorf("rate limit must be positive (rps=%v, burst=%d)", cfg.RateLimitRPS, cfg.RateLimitBurst)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
