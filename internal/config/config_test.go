package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "ENV", "LOG_LEVEL", "LOG_FORMAT", "RANDOM_SOURCE", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "METRICS_ENABLED"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "8080" || cfg.RandomSource != "crypto" || cfg.RateLimitBurst != 10 || !cfg.MetricsEnabled {
		t.Errorf("Load() = %+v, unexpected defaults", cfg)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RANDOM_SOURCE", "MATH")
	t.Setenv("RATE_LIMIT_RPS", "0.5")
	t.Setenv("METRICS_ENABLED", "false")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.RandomSource != "math" || cfg.RateLimitRPS != 0.5 || cfg.MetricsEnabled {
		t.Errorf("Load() = %+v, overrides not applied", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"unknown source", "RANDOM_SOURCE", "dice"},
		{"bad rps", "RATE_LIMIT_RPS", "fast"},
		{"zero burst", "RATE_LIMIT_BURST", "0"},
		{"bad bool", "METRICS_ENABLED", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(); err == nil {
				t.Errorf("Load() with %s=%q expected error", tt.key, tt.val)
			}
		})
	}
}

func TestLoadRejectsMathSourceInProduction(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("RANDOM_SOURCE", "math")

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for math source in production")
	}
}
