// Package engine implements the animation and observation core of the
// Enigma landing page: viewport reveal tracking, active-section tracking,
// the animated statistics counter, and the multilingual hero text cycle.
//
// Every component is driven through the Scheduler interface rather than
// wall-clock timers, so the whole engine can be advanced deterministically
// in tests. At runtime the TUI advances a single Loop from its tick
// handler, which keeps all engine callbacks on one cooperative event loop.
package engine
