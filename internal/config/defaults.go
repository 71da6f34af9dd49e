package config

// Default value constants to avoid magic numbers and strings.
const (
	DefaultCyclePeriodMs    = 3000
	DefaultCycleFadeMs      = 800
	DefaultCountDurationMs  = 2000
	DefaultTickMs           = 50
	DefaultSubmitDelayMs    = 1500
	DefaultScrollThrottleMs = 100
	DefaultResizeDebounceMs = 150

	DefaultRevealThreshold  = 0.1
	DefaultRevealMargin     = 0.15
	DefaultSectionThreshold = 0.3
	DefaultSectionMargin    = 0.2

	DefaultPrimaryColor   = "#7C3AED"
	DefaultSecondaryColor = "#22D3EE"
	DefaultMutedColor     = "#6B7280"
)

// NewDefaultConfig returns a Config populated with every default.
func NewDefaultConfig() *Config {
	return &Config{
		Motion: MotionConfig{Reduced: false},
		Timing: TimingConfig{
			CyclePeriodMs:    DefaultCyclePeriodMs,
			CycleFadeMs:      DefaultCycleFadeMs,
			CountDurationMs:  DefaultCountDurationMs,
			TickMs:           DefaultTickMs,
			SubmitDelayMs:    DefaultSubmitDelayMs,
			ScrollThrottleMs: DefaultScrollThrottleMs,
			ResizeDebounceMs: DefaultResizeDebounceMs,
		},
		Observer: ObserverConfig{
			RevealThreshold:  DefaultRevealThreshold,
			RevealMargin:     DefaultRevealMargin,
			SectionThreshold: DefaultSectionThreshold,
			SectionMargin:    DefaultSectionMargin,
		},
		Theme: ThemeConfig{
			Primary:   DefaultPrimaryColor,
			Secondary: DefaultSecondaryColor,
			Muted:     DefaultMutedColor,
		},
	}
}
