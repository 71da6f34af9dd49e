package engine

import (
	"testing"
	"time"
)

func TestThrottle_LeadingEdge(t *testing.T) {
	l := NewLoop(testStart())
	calls := 0
	throttled := Throttle(l, 10*time.Millisecond, func() { calls++ })

	// Calls at t=0, t=5, t=15 with a 10ms limit: only t=0 and t=15 execute.
	throttled()
	l.Advance(5 * time.Millisecond)
	throttled()
	l.Advance(10 * time.Millisecond)
	throttled()

	if calls != 2 {
		t.Errorf("throttled fn ran %d times, want 2", calls)
	}
}

func TestThrottle_DroppedCallsAreNotQueued(t *testing.T) {
	l := NewLoop(testStart())
	calls := 0
	throttled := Throttle(l, 10*time.Millisecond, func() { calls++ })

	throttled()
	l.Advance(2 * time.Millisecond)
	throttled()
	throttled()

	// No trailing invocation fires on its own once the window elapses.
	l.Advance(time.Second)
	if calls != 1 {
		t.Errorf("throttled fn ran %d times, want 1", calls)
	}
}

func TestThrottle_IndependentWrappers(t *testing.T) {
	l := NewLoop(testStart())
	a, b := 0, 0
	ta := Throttle(l, 10*time.Millisecond, func() { a++ })
	tb := Throttle(l, 10*time.Millisecond, func() { b++ })

	ta()
	tb()
	if a != 1 || b != 1 {
		t.Errorf("wrappers interfered: a=%d b=%d, want 1 1", a, b)
	}
}

func TestDebounce_TrailingEdgeLastArgsWin(t *testing.T) {
	l := NewLoop(testStart())
	var got []int
	debounced := Debounce(l, 300*time.Millisecond, func(v int) { got = append(got, v) })

	// Calls at t=0, t=50, t=100 with a 300ms wait: one execution at t=400
	// using the t=100 call's argument.
	debounced(1)
	l.Advance(50 * time.Millisecond)
	debounced(2)
	l.Advance(50 * time.Millisecond)
	debounced(3)

	l.Advance(299 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("debounced fn fired early: %v", got)
	}
	l.Advance(time.Millisecond)
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("debounced fn results = %v, want [3]", got)
	}
	if want := testStart().Add(400 * time.Millisecond); !l.Now().Equal(want) {
		t.Errorf("execution time = %v, want %v", l.Now(), want)
	}

	// Nothing further pending.
	l.Advance(time.Second)
	if len(got) != 1 {
		t.Errorf("debounced fn fired again: %v", got)
	}
}

func TestDebounce_SingleCall(t *testing.T) {
	l := NewLoop(testStart())
	var got []string
	debounced := Debounce(l, 100*time.Millisecond, func(v string) { got = append(got, v) })

	debounced("resize")
	l.Advance(100 * time.Millisecond)

	if len(got) != 1 || got[0] != "resize" {
		t.Errorf("got %v, want [resize]", got)
	}
}
