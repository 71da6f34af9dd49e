package engine

import (
	"math"
	"strconv"
	"time"
)

// DefaultCountDuration is the length of the statistics count-up animation.
const DefaultCountDuration = 2 * time.Second

// Counter binds a node to the integer value it counts up to. The animated
// latch guarantees at most one completed run per page life.
type Counter struct {
	Node   Node
	Target int

	animated bool
	running  bool
}

// Animated reports whether the counter has completed its run.
func (c *Counter) Animated() bool { return c.animated }

// CounterAnimator drives count-up animations: each counter independently
// samples elapsed time against the scheduler clock every frame, shapes the
// progress with ease-out-cubic, and snaps to the exact target on the final
// frame. Targets of 100 or more display a trailing "+".
type CounterAnimator struct {
	sch      Scheduler
	gate     *MotionGate
	duration time.Duration
}

// NewCounterAnimator creates an animator. A non-positive duration falls
// back to DefaultCountDuration.
func NewCounterAnimator(sch Scheduler, gate *MotionGate, duration time.Duration) *CounterAnimator {
	if duration <= 0 {
		duration = DefaultCountDuration
	}
	return &CounterAnimator{sch: sch, gate: gate, duration: duration}
}

// RunAll starts every counter. Counters animate concurrently but each
// keeps its own start time, so they never interfere.
func (a *CounterAnimator) RunAll(counters []*Counter) {
	for _, c := range counters {
		a.Run(c)
	}
}

// Run starts one counter. Re-triggering a running or completed counter is
// a no-op. Under reduced motion the final value is rendered immediately.
func (a *CounterAnimator) Run(c *Counter) {
	if c == nil || c.Node == nil || c.animated || c.running {
		return
	}
	if a.gate.Reduced() {
		c.Node.SetText(formatCount(c.Target, c.Target))
		c.animated = true
		return
	}

	c.running = true
	start := a.sch.Now()
	var frame func(now time.Time)
	frame = func(now time.Time) {
		if a.gate.Reduced() {
			// Preference flipped mid-run: settle on the final value.
			a.finish(c)
			return
		}
		progress := float64(now.Sub(start)) / float64(a.duration)
		if progress >= 1 {
			a.finish(c)
			return
		}
		eased := easeOutCubic(progress)
		c.Node.SetText(formatCount(int(math.Floor(eased*float64(c.Target))), c.Target))
		a.sch.NextFrame(frame)
	}
	a.sch.NextFrame(frame)
}

// finish snaps the display to the exact target, avoiding the floor
// truncation undershoot, and marks the run complete.
func (a *CounterAnimator) finish(c *Counter) {
	c.Node.SetText(formatCount(c.Target, c.Target))
	c.running = false
	c.animated = true
}

// easeOutCubic maps linear progress to decelerating visual progress.
func easeOutCubic(t float64) float64 {
	inv := 1 - t
	return 1 - inv*inv*inv
}

func formatCount(value, target int) string {
	s := strconv.Itoa(value)
	if target >= 100 {
		s += "+"
	}
	return s
}
