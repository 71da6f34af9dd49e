package engine

import "time"

// Throttle wraps fn so that it runs at most once per interval. The first
// call fires immediately; calls landing inside the interval are dropped,
// not queued, and the first call after the interval elapses fires
// immediately again (leading-edge throttle).
//
// Each wrapper keeps its own closure-local state; independently created
// wrappers never interact.
func Throttle(sch Scheduler, interval time.Duration, fn func()) func() {
	var last time.Time
	fired := false
	return func() {
		now := sch.Now()
		if fired && now.Sub(last) < interval {
			return
		}
		fired = true
		last = now
		fn()
	}
}

// Debounce wraps fn so that it runs only after wait of silence since the
// most recent call (trailing-edge debounce). Every call resets the pending
// timer, and only the final call's argument is delivered.
func Debounce[T any](sch Scheduler, wait time.Duration, fn func(T)) func(T) {
	var pending *Timer
	return func(arg T) {
		pending.Stop()
		pending = sch.AfterFunc(wait, func() {
			fn(arg)
		})
	}
}
