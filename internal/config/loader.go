package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration file at path and returns a Config with
// defaults applied for anything missing. A missing file returns defaults
// silently; an unreadable or invalid file is logged and skipped, because
// the page must stay usable with a broken config.
func Load(path string) *Config {
	cfg := NewDefaultConfig()
	if path == "" {
		return cfg
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if os.IsNotExist(err) {
		return cfg
	}
	if err != nil {
		slog.Warn("failed to read config, using defaults", "path", path, "error", err)
		return cfg
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		slog.Warn("invalid config, using defaults", "path", path, "error", err)
		return NewDefaultConfig()
	}

	cfg.normalize()
	return cfg
}

// normalize clamps out-of-range values back to their defaults so a partial
// or sloppy config cannot stall the animations.
func (c *Config) normalize() {
	clampMs(&c.Timing.CyclePeriodMs, DefaultCyclePeriodMs)
	clampMs(&c.Timing.CycleFadeMs, DefaultCycleFadeMs)
	clampMs(&c.Timing.CountDurationMs, DefaultCountDurationMs)
	clampMs(&c.Timing.TickMs, DefaultTickMs)
	clampMs(&c.Timing.SubmitDelayMs, DefaultSubmitDelayMs)
	clampMs(&c.Timing.ScrollThrottleMs, DefaultScrollThrottleMs)
	clampMs(&c.Timing.ResizeDebounceMs, DefaultResizeDebounceMs)

	clampRatio(&c.Observer.RevealThreshold, DefaultRevealThreshold)
	clampRatio(&c.Observer.RevealMargin, DefaultRevealMargin)
	clampRatio(&c.Observer.SectionThreshold, DefaultSectionThreshold)
	clampRatio(&c.Observer.SectionMargin, DefaultSectionMargin)

	if c.Theme.Primary == "" {
		c.Theme.Primary = DefaultPrimaryColor
	}
	if c.Theme.Secondary == "" {
		c.Theme.Secondary = DefaultSecondaryColor
	}
	if c.Theme.Muted == "" {
		c.Theme.Muted = DefaultMutedColor
	}
}

func clampMs(v *int, def int) {
	if *v <= 0 {
		*v = def
	}
}

func clampRatio(v *float64, def float64) {
	if *v < 0 || *v >= 1 {
		*v = def
	}
}

// Save writes the configuration to path, creating parent directories.
// Used by --write-config to produce a starting file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
