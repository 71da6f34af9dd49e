package engine

import (
	"testing"
	"time"

	"golang.org/x/text/language"
)

var testEntries = []LanguageEntry{
	{Text: "ENIGMA", Tag: language.English, Label: "English: ENIGMA"},
	{Text: "एनिग्मा", Tag: language.Hindi, Label: "Hindi: एनिग्मा"},
	{Text: "エニグマ", Tag: language.Japanese, Label: "Japanese: エニグマ"},
}

const (
	testPeriod = 3 * time.Second
	testFade   = 800 * time.Millisecond
)

func newTestCycle(reduced bool) (*Loop, *MotionGate, *BasicNode, *CycleAnimator) {
	l := NewLoop(testStart())
	gate := NewMotionGate(reduced)
	node := NewBasicNode("")
	a := NewCycleAnimator(l, gate, node, testEntries, testPeriod, testFade)
	return l, gate, node, a
}

func TestStepCycle(t *testing.T) {
	tests := []struct {
		name    string
		state   cycleState
		ev      cycleEvent
		want    cycleState
		effects []cycleEffect
	}{
		{
			name:    "period begins fade out",
			state:   cycleState{phase: PhaseDisplaying, index: 0},
			ev:      eventPeriod,
			want:    cycleState{phase: PhaseFadingOut, index: 0, next: 1},
			effects: []cycleEffect{effectFadeOut},
		},
		{
			name:    "period wraps at end of cycle",
			state:   cycleState{phase: PhaseDisplaying, index: 2},
			ev:      eventPeriod,
			want:    cycleState{phase: PhaseFadingOut, index: 2, next: 0},
			effects: []cycleEffect{effectFadeOut},
		},
		{
			name:    "half fade commits next entry",
			state:   cycleState{phase: PhaseFadingOut, index: 0, next: 1},
			ev:      eventHalfFade,
			want:    cycleState{phase: PhaseFadingIn, index: 1, next: 1},
			effects: []cycleEffect{effectSwap},
		},
		{
			name:    "fade done settles",
			state:   cycleState{phase: PhaseFadingIn, index: 1, next: 1},
			ev:      eventFadeDone,
			want:    cycleState{phase: PhaseDisplaying, index: 1, next: 1},
			effects: []cycleEffect{effectSettle},
		},
		{
			name:  "stray event ignored",
			state: cycleState{phase: PhaseDisplaying, index: 1},
			ev:    eventFadeDone,
			want:  cycleState{phase: PhaseDisplaying, index: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, effects := stepCycle(tt.state, tt.ev, len(testEntries))
			if got != tt.want {
				t.Errorf("state = %+v, want %+v", got, tt.want)
			}
			if len(effects) != len(tt.effects) {
				t.Fatalf("effects = %v, want %v", effects, tt.effects)
			}
			for i := range effects {
				if effects[i] != tt.effects[i] {
					t.Errorf("effects = %v, want %v", effects, tt.effects)
					break
				}
			}
		})
	}
}

func TestCycleAnimator_ShowsFirstEntryOnStart(t *testing.T) {
	_, _, node, a := newTestCycle(false)
	a.Start()

	if got := node.Text(); got != "ENIGMA" {
		t.Errorf("initial text = %q, want %q", got, "ENIGMA")
	}
	if got := node.Attr("lang"); got != "en" {
		t.Errorf("initial lang = %q, want %q", got, "en")
	}
	if got := node.Attr("aria-live"); got != "polite" {
		t.Errorf("aria-live = %q, want %q", got, "polite")
	}
	if !a.Running() {
		t.Error("animator not running after start")
	}
}

func TestCycleAnimator_AdvancesModuloLength(t *testing.T) {
	l, _, node, a := newTestCycle(false)
	a.Start()

	// After N full periods the displayed entry is entries[N mod len]. The
	// first step also crosses the fade so every later observation lands
	// just after that period's swap has settled.
	l.Advance(testFade)
	for n := 1; n <= 5; n++ {
		l.Advance(testPeriod)
		want := testEntries[n%len(testEntries)]
		if got := node.Text(); got != want.Text {
			t.Errorf("after %d periods text = %q, want %q", n, got, want.Text)
		}
		if got := a.Index(); got != n%len(testEntries) {
			t.Errorf("after %d periods index = %d, want %d", n, got, n%len(testEntries))
		}
	}
}

func TestCycleAnimator_MidFadeSwap(t *testing.T) {
	l, _, node, a := newTestCycle(false)
	a.Start()

	l.Advance(testPeriod)
	if !node.HasState(StateFadeOut) {
		t.Fatal("fade-out state not applied at period")
	}

	// At exactly half the fade the text, lang, and label have swapped even
	// though the fade-in state has not yet been removed.
	l.Advance(testFade / 2)
	if got := node.Text(); got != "एनिग्मा" {
		t.Errorf("mid-fade text = %q, want %q", got, "एनिग्मा")
	}
	if got := node.Attr("lang"); got != "hi" {
		t.Errorf("mid-fade lang = %q, want %q", got, "hi")
	}
	if got := node.Attr("aria-label"); got != "Hindi: एनिग्मा" {
		t.Errorf("mid-fade label = %q, want %q", got, "Hindi: एनिग्मा")
	}
	if node.HasState(StateFadeOut) {
		t.Error("fade-out state still applied after swap")
	}
	if !node.HasState(StateFadeIn) {
		t.Error("fade-in state not applied at swap")
	}

	l.Advance(testFade / 2)
	if node.HasState(StateFadeIn) {
		t.Error("fade-in state still applied after fade completed")
	}
	if got := a.Phase(); got != PhaseDisplaying {
		t.Errorf("phase = %v after fade, want PhaseDisplaying", got)
	}
}

func TestCycleAnimator_ReducedMotionNeverSchedules(t *testing.T) {
	l, _, node, a := newTestCycle(true)
	a.Start()

	if got := node.Text(); got != "ENIGMA" {
		t.Errorf("text = %q, want static first entry", got)
	}
	if a.Running() {
		t.Error("animator running under reduced motion")
	}
	if got := l.Pending(); got != 0 {
		t.Errorf("%d timers scheduled under reduced motion, want 0", got)
	}

	l.Advance(time.Minute)
	if got := node.Text(); got != "ENIGMA" {
		t.Errorf("text advanced to %q under reduced motion", got)
	}
}

func TestCycleAnimator_GateFlipStopsAtNextTick(t *testing.T) {
	l, gate, node, a := newTestCycle(false)
	a.Start()

	l.Advance(time.Second)
	gate.Set(true)

	if a.Running() {
		t.Error("animator still running after gate flipped to reduced")
	}
	l.Advance(time.Minute)
	if got := node.Text(); got != "ENIGMA" {
		t.Errorf("text advanced to %q after stop", got)
	}

	// Flipping back restarts from the committed index with one timer.
	gate.Set(false)
	if !a.Running() {
		t.Error("animator did not restart when motion was restored")
	}
	if got := l.Pending(); got != 1 {
		t.Errorf("%d timers pending after restart, want 1", got)
	}
}

func TestCycleAnimator_StopMidFadeResumesFromCommittedIndex(t *testing.T) {
	l, _, node, a := newTestCycle(false)
	a.Start()

	// Stop in the middle of the fade-out, before the swap commits.
	l.Advance(testPeriod)
	l.Advance(testFade / 4)
	a.Stop()

	if a.Running() {
		t.Error("animator running after stop")
	}
	if node.HasState(StateFadeOut) || node.HasState(StateFadeIn) {
		t.Error("stop left partial fade states applied")
	}
	if got := a.Index(); got != 0 {
		t.Errorf("index = %d after stop mid-fade-out, want 0", got)
	}
	if got := node.Text(); got != "ENIGMA" {
		t.Errorf("text = %q after stop, want committed entry", got)
	}

	// Repeated stop/start cycles attach exactly one recurring timer.
	a.Start()
	a.Start()
	a.Stop()
	a.Start()
	if got := l.Pending(); got != 1 {
		t.Errorf("%d timers pending after restart cycles, want 1", got)
	}

	// The restarted cycle advances from the resumed index.
	l.Advance(testPeriod + testFade)
	if got := a.Index(); got != 1 {
		t.Errorf("index = %d one period after restart, want 1", got)
	}
}

func TestCycleAnimator_StopAfterSwapKeepsNewEntry(t *testing.T) {
	l, _, node, a := newTestCycle(false)
	a.Start()

	// Stop mid fade-in: the swap has committed, so the new entry stays.
	l.Advance(testPeriod)
	l.Advance(testFade/2 + testFade/4)
	a.Stop()

	if got := a.Index(); got != 1 {
		t.Errorf("index = %d after stop mid-fade-in, want 1", got)
	}
	if got := node.Text(); got != "एनिग्मा" {
		t.Errorf("text = %q, want committed next entry", got)
	}
	if node.HasState(StateFadeIn) {
		t.Error("stop left the fade-in state applied")
	}
}

func TestCycleAnimator_AbsentNodeIsNoOp(t *testing.T) {
	l := NewLoop(testStart())
	gate := NewMotionGate(false)
	a := NewCycleAnimator(l, gate, nil, testEntries, testPeriod, testFade)

	a.Start()
	a.Stop()

	if a.Running() {
		t.Error("animator running without a node")
	}
	if got := l.Pending(); got != 0 {
		t.Errorf("%d timers scheduled without a node, want 0", got)
	}
}
