package engine

import "time"

// FrameClock converts game time between ticks into frame-relative delta time
// A delta of 1 means exactly one nominal frame elapsed
type FrameClock struct {
	clock    *PausableClock
	interval time.Duration
	last     time.Duration
	started  bool
}

// NewFrameClock creates a frame clock targeting fps on clock
func NewFrameClock(clock *PausableClock, fps int) *FrameClock {
	if fps <= 0 {
		fps = 60
	}
	return &FrameClock{
		clock:    clock,
		interval: time.Second / time.Duration(fps),
	}
}

// Interval returns the nominal frame duration
func (fc *FrameClock) Interval() time.Duration {
	return fc.interval
}

// Tick returns the delta since the previous Tick
// The first tick yields 1; a paused clock yields 0
func (fc *FrameClock) Tick() float64 {
	now := fc.clock.Elapsed()
	if !fc.started {
		fc.started = true
		fc.last = now
		return 1
	}

	elapsed := now - fc.last
	fc.last = now
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(fc.interval)
}
