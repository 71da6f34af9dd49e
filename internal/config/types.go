// Package config loads the enigma.yaml configuration: animation timing,
// intersection thresholds, theme colors, and the reduced-motion override.
// Every value has a default; a missing or unreadable file is never fatal.
package config

// Config is the root configuration aggregate.
type Config struct {
	Motion   MotionConfig   `yaml:"motion"`
	Timing   TimingConfig   `yaml:"timing"`
	Observer ObserverConfig `yaml:"observer"`
	Theme    ThemeConfig    `yaml:"theme"`
}

// MotionConfig controls the reduced-motion preference.
type MotionConfig struct {
	// Reduced suppresses every non-essential animation when true.
	Reduced bool `yaml:"reduced"`
}

// TimingConfig holds the animation timing constants, in milliseconds.
type TimingConfig struct {
	CyclePeriodMs    int `yaml:"cycle_period_ms"`
	CycleFadeMs      int `yaml:"cycle_fade_ms"`
	CountDurationMs  int `yaml:"count_duration_ms"`
	TickMs           int `yaml:"tick_ms"`
	SubmitDelayMs    int `yaml:"submit_delay_ms"`
	ScrollThrottleMs int `yaml:"scroll_throttle_ms"`
	ResizeDebounceMs int `yaml:"resize_debounce_ms"`
}

// ObserverConfig holds the intersection thresholds and viewport margins
// used by the reveal observer and the section tracker.
type ObserverConfig struct {
	RevealThreshold  float64 `yaml:"reveal_threshold"`
	RevealMargin     float64 `yaml:"reveal_margin"`
	SectionThreshold float64 `yaml:"section_threshold"`
	SectionMargin    float64 `yaml:"section_margin"`
}

// ThemeConfig holds the page colors.
type ThemeConfig struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Muted     string `yaml:"muted"`
	NoColor   bool   `yaml:"no_color"`
}
