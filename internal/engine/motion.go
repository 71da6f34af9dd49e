package engine

// MotionGate holds the process-wide reduced-motion preference. Components
// consult it before scheduling any visual transition, and re-check it on
// every scheduled tick because the preference can flip while an animation
// is running.
type MotionGate struct {
	reduced bool
	subs    []func(reduced bool)
}

// NewMotionGate creates a gate initialized from the platform preference.
func NewMotionGate(reduced bool) *MotionGate {
	return &MotionGate{reduced: reduced}
}

// Reduced reports whether reduced motion is requested.
func (g *MotionGate) Reduced() bool { return g.reduced }

// Set updates the preference and notifies subscribers on change.
func (g *MotionGate) Set(reduced bool) {
	if g.reduced == reduced {
		return
	}
	g.reduced = reduced
	for _, fn := range g.subs {
		fn(reduced)
	}
}

// Subscribe registers fn to run whenever the preference changes, so
// dependent components can stop or restart their animations.
func (g *MotionGate) Subscribe(fn func(reduced bool)) {
	g.subs = append(g.subs, fn)
}
