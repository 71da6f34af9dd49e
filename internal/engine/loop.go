package engine

import (
	"container/heap"
	"time"
)

// FrameInterval is the spacing of animation frames on a Loop,
// roughly a 60fps paint cadence.
const FrameInterval = 16 * time.Millisecond

// Scheduler defers work to a later point on the owning event loop.
// Implementations are not required to be safe for concurrent use; all
// engine components assume they are called from a single event loop.
type Scheduler interface {
	// Now returns the loop's current time.
	Now() time.Time
	// AfterFunc schedules fn to run once d has elapsed and returns a
	// handle that can stop the callback before it fires.
	AfterFunc(d time.Duration, fn func()) *Timer
	// NextFrame schedules fn for the next animation frame, passing the
	// loop time at which the frame fires.
	NextFrame(fn func(now time.Time))
}

// Timer is a handle to a pending callback scheduled with AfterFunc.
type Timer struct {
	when    time.Time
	seq     int
	fn      func()
	stopped bool
}

// Stop cancels the pending callback. It reports whether the callback was
// still pending; stopping an already-fired or already-stopped timer is a
// no-op returning false.
func (t *Timer) Stop() bool {
	if t == nil || t.stopped || t.fn == nil {
		return false
	}
	t.stopped = true
	t.fn = nil
	return true
}

type timerHeap []*Timer

func (h timerHeap) Len() int { return len(h) }

func (h timerHeap) Less(i, j int) bool {
	if h[i].when.Equal(h[j].when) {
		return h[i].seq < h[j].seq
	}
	return h[i].when.Before(h[j].when)
}

func (h timerHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *timerHeap) Push(x any) { *h = append(*h, x.(*Timer)) }

func (h *timerHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return t
}

// Loop is a cooperative scheduler: a timer heap advanced explicitly by its
// owner. The TUI advances it with real elapsed time on every tick message;
// tests advance it with exact durations. Callbacks run in time order, and
// a callback may schedule further work on the same loop.
type Loop struct {
	now    time.Time
	seq    int
	timers timerHeap
}

// NewLoop creates a Loop whose clock starts at the given time.
func NewLoop(start time.Time) *Loop {
	return &Loop{now: start}
}

// Now returns the loop's current time.
func (l *Loop) Now() time.Time { return l.now }

// AfterFunc schedules fn to run once d has elapsed on the loop clock.
// A non-positive d fires on the next Advance.
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	l.seq++
	t := &Timer{when: l.now.Add(d), seq: l.seq, fn: fn}
	heap.Push(&l.timers, t)
	return t
}

// NextFrame schedules fn on the next frame boundary of the loop clock.
func (l *Loop) NextFrame(fn func(now time.Time)) {
	t := l.AfterFunc(FrameInterval, nil)
	t.fn = func() { fn(t.when) }
}

// Advance moves the loop clock forward by d, running every due callback in
// time order. The clock observed by a callback is the instant its timer
// was due, not the final target time, so frame-sampled animations see
// accurate elapsed values.
func (l *Loop) Advance(d time.Duration) {
	if d < 0 {
		return
	}
	target := l.now.Add(d)
	for l.timers.Len() > 0 {
		next := l.timers[0]
		if next.when.After(target) {
			break
		}
		heap.Pop(&l.timers)
		if next.stopped {
			continue
		}
		l.now = next.when
		fn := next.fn
		next.fn = nil
		if fn != nil {
			fn()
		}
	}
	l.now = target
}

// Pending returns the number of callbacks still scheduled. Stopped timers
// do not count.
func (l *Loop) Pending() int {
	n := 0
	for _, t := range l.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}
