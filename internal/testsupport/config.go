package testsupport

import (
	"path/filepath"
	"testing"

	"prooflab/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return &cfg
}

// WithSuggestionLimits overrides the per-strategy minimum group sizes.
func WithSuggestionLimits(date, filename, camera int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Suggestions.MinDateGroup = date
		cfg.Suggestions.MinFilenameGroup = filename
		cfg.Suggestions.MinCameraGroup = camera
	}
}

// WithMaxSuggestions overrides the suggestion cap.
func WithMaxSuggestions(n int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Suggestions.MaxSuggestions = n
	}
}
