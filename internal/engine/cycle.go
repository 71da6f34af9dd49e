package engine

import (
	"log/slog"
	"time"

	"golang.org/x/text/language"
)

// Default timing for the hero language cycle.
const (
	DefaultCyclePeriod = 3 * time.Second
	DefaultCycleFade   = 800 * time.Millisecond
)

// LanguageEntry is one variant of the hero text: the displayed text, its
// BCP 47 language tag, and the accessible label combining language name
// and text.
type LanguageEntry struct {
	Text  string
	Tag   language.Tag
	Label string
}

// CyclePhase is the phase of the language cycle state machine.
type CyclePhase int

const (
	PhaseIdle CyclePhase = iota
	PhaseDisplaying
	PhaseFadingOut
	PhaseFadingIn
)

// cycleEvent drives transitions of the cycle state machine.
type cycleEvent int

const (
	// eventPeriod fires on the recurring cycle timer.
	eventPeriod cycleEvent = iota
	// eventHalfFade fires midway through the fade, when content swaps.
	eventHalfFade
	// eventFadeDone fires when the fade completes.
	eventFadeDone
)

// cycleEffect is a presentation side effect requested by a transition.
type cycleEffect int

const (
	// effectFadeOut applies the fade-out presentation state.
	effectFadeOut cycleEffect = iota
	// effectSwap replaces text, lang attribute, and accessible label with
	// the next entry, clears fade-out, and applies fade-in.
	effectSwap
	// effectSettle clears the fade-in presentation state.
	effectSettle
)

// cycleState is the full machine state: phase, the committed entry index,
// and the entry being faded toward while a fade is in flight.
type cycleState struct {
	phase CyclePhase
	index int
	next  int
}

// stepCycle is the pure transition function of the language cycle:
// (state, event) -> (state, effects). n is the cycle length; the index
// always wraps modulo n. Events that do not apply in the current phase
// leave the state unchanged with no effects.
func stepCycle(s cycleState, ev cycleEvent, n int) (cycleState, []cycleEffect) {
	switch {
	case s.phase == PhaseDisplaying && ev == eventPeriod:
		s.phase = PhaseFadingOut
		s.next = (s.index + 1) % n
		return s, []cycleEffect{effectFadeOut}
	case s.phase == PhaseFadingOut && ev == eventHalfFade:
		s.phase = PhaseFadingIn
		s.index = s.next
		return s, []cycleEffect{effectSwap}
	case s.phase == PhaseFadingIn && ev == eventFadeDone:
		s.phase = PhaseDisplaying
		return s, []cycleEffect{effectSettle}
	}
	return s, nil
}

// CycleAnimator rotates the hero text through a fixed ordered list of
// language variants with fade-out/fade-in choreography. It owns its state
// exclusively; callers interact only through Start and Stop.
//
// The recurring period timer is the machine's single driving timer. The
// mid-fade steps run on a short-lived secondary timer that never outlives
// one transition.
type CycleAnimator struct {
	sch     Scheduler
	gate    *MotionGate
	node    Node
	entries []LanguageEntry
	period  time.Duration
	fade    time.Duration

	state     cycleState
	ticker    *Timer
	fadeTimer *Timer
}

// NewCycleAnimator creates an animator over the given entries. The node
// may be nil when the hero element is absent, in which case Start is a
// logged no-op. The animator subscribes to the motion gate: flipping to
// reduced stops the cycle, flipping back restarts it.
func NewCycleAnimator(sch Scheduler, gate *MotionGate, node Node, entries []LanguageEntry, period, fade time.Duration) *CycleAnimator {
	if period <= 0 {
		period = DefaultCyclePeriod
	}
	if fade <= 0 {
		fade = DefaultCycleFade
	}
	a := &CycleAnimator{
		sch:     sch,
		gate:    gate,
		node:    node,
		entries: entries,
		period:  period,
		fade:    fade,
		state:   cycleState{phase: PhaseIdle},
	}
	gate.Subscribe(func(reduced bool) {
		if reduced {
			a.Stop()
		} else {
			a.Start()
		}
	})
	return a
}

// Start shows the current entry and attaches the recurring timer. The
// first call begins at entry 0; a restart after Stop resumes from the last
// committed index. Starting an already-running animator is a no-op, so
// repeated start/stop cycles never attach a second concurrent timer.
// Under reduced motion the entry is shown statically and no timer is
// attached.
func (a *CycleAnimator) Start() {
	if a.node == nil || len(a.entries) == 0 {
		slog.Debug("language cycle element absent, skipping")
		return
	}
	if a.ticker != nil {
		return
	}
	a.state.phase = PhaseDisplaying
	a.node.SetAttr("aria-live", "polite")
	a.apply(a.state.index)
	if a.gate.Reduced() {
		return
	}
	a.ticker = a.sch.AfterFunc(a.period, a.onPeriod)
}

// Stop tears down the timers and resets any in-flight fade back to the
// Displaying baseline, leaving the last committed entry showing.
func (a *CycleAnimator) Stop() {
	a.ticker.Stop()
	a.fadeTimer.Stop()
	a.ticker = nil
	a.fadeTimer = nil
	if a.node == nil || a.state.phase == PhaseIdle {
		return
	}
	a.node.RemoveState(StateFadeOut)
	a.node.RemoveState(StateFadeIn)
	a.state.phase = PhaseDisplaying
	a.apply(a.state.index)
}

// Running reports whether the recurring timer is attached.
func (a *CycleAnimator) Running() bool { return a.ticker != nil }

// Index returns the committed entry index.
func (a *CycleAnimator) Index() int { return a.state.index }

// Phase returns the current machine phase.
func (a *CycleAnimator) Phase() CyclePhase { return a.state.phase }

func (a *CycleAnimator) onPeriod() {
	if a.gate.Reduced() {
		a.Stop()
		return
	}
	a.dispatch(eventPeriod)
	a.fadeTimer = a.sch.AfterFunc(a.fade/2, a.onHalfFade)
	a.ticker = a.sch.AfterFunc(a.period, a.onPeriod)
}

func (a *CycleAnimator) onHalfFade() {
	a.dispatch(eventHalfFade)
	a.fadeTimer = a.sch.AfterFunc(a.fade/2, a.onFadeDone)
}

func (a *CycleAnimator) onFadeDone() {
	a.dispatch(eventFadeDone)
	a.fadeTimer = nil
}

func (a *CycleAnimator) dispatch(ev cycleEvent) {
	next, effects := stepCycle(a.state, ev, len(a.entries))
	a.state = next
	for _, ef := range effects {
		switch ef {
		case effectFadeOut:
			a.node.AddState(StateFadeOut)
		case effectSwap:
			a.apply(a.state.index)
			a.node.RemoveState(StateFadeOut)
			a.node.AddState(StateFadeIn)
		case effectSettle:
			a.node.RemoveState(StateFadeIn)
		}
	}
}

// apply writes entry i's text, language attribute, and accessible label to
// the node. Assistive technology picks the change up through the
// aria-live region set at Start.
func (a *CycleAnimator) apply(i int) {
	e := a.entries[i]
	a.node.SetText(e.Text)
	a.node.SetAttr("lang", e.Tag.String())
	a.node.SetAttr("aria-label", e.Label)
}
