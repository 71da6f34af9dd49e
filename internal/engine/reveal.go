package engine

import (
	"log/slog"
	"time"
)

// TargetKind tags an observed element with the behavior it participates in.
type TargetKind int

const (
	// TargetFadeIn elements get a one-shot reveal when entering the viewport.
	TargetFadeIn TargetKind = iota
	// TargetStats elements additionally trigger the statistics counter run
	// the first time they enter the viewport.
	TargetStats
)

// Target is an observed element. The revealed latch is owned by the
// RevealObserver and is one-way: once true it never resets for the life of
// the page.
type Target struct {
	ID       string
	Node     Node
	Kind     TargetKind
	revealed bool
}

// Revealed reports whether the target's reveal has happened.
func (t *Target) Revealed() bool { return t.revealed }

// RevealObserver watches a static set of targets and applies the one-shot
// reveal transition when each first enters the viewport. It also owns the
// page-wide "stats already animated" latch so the counter sequence runs
// exactly once no matter how often its container re-enters view.
type RevealObserver struct {
	sch       Scheduler
	gate      *MotionGate
	targets   []*Target
	onStats   func()
	statsDone bool
	connected bool
}

// NewRevealObserver creates a connected observer with an empty watch list.
func NewRevealObserver(sch Scheduler, gate *MotionGate) *RevealObserver {
	return &RevealObserver{sch: sch, gate: gate, connected: true}
}

// Observe adds targets to the watch list. Targets without a node are
// skipped: a missing element means the feature is absent from this page,
// which is not an error.
func (o *RevealObserver) Observe(targets ...*Target) {
	for _, t := range targets {
		if t == nil || t.Node == nil {
			slog.Debug("reveal target absent, skipping", "target", targetID(t))
			continue
		}
		o.targets = append(o.targets, t)
	}
}

// OnStats registers the callback fired when a stats container first enters
// the viewport.
func (o *RevealObserver) OnStats(fn func()) { o.onStats = fn }

// Targets returns the current watch list.
func (o *RevealObserver) Targets() []*Target { return o.targets }

// Intersect is the intersection callback for a single target. Repeated
// calls with intersecting=true are idempotent: the reveal applies once and
// re-entering the viewport afterwards has no further visible effect.
func (o *RevealObserver) Intersect(t *Target, intersecting bool) {
	if !o.connected || t == nil || t.Node == nil || !intersecting {
		return
	}
	if !t.revealed {
		t.revealed = true
		if o.gate.Reduced() {
			// Nothing will animate, so no frame deferral is needed.
			t.Node.AddState(StateVisible)
		} else {
			node := t.Node
			o.sch.NextFrame(func(time.Time) {
				node.AddState(StateVisible)
			})
		}
	}
	if t.Kind == TargetStats && !o.statsDone {
		o.statsDone = true
		if o.onStats != nil {
			o.onStats()
		}
	}
}

// Disconnect releases the watch list; subsequent callbacks are ignored.
func (o *RevealObserver) Disconnect() {
	o.connected = false
	o.targets = nil
}

func targetID(t *Target) string {
	if t == nil {
		return ""
	}
	return t.ID
}
