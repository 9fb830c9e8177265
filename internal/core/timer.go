package core

import "time"

// RepeatingTimer fires once per period of accumulated frame time.
// It is advanced synchronously by the game loop, so it never runs on its
// own goroutine.
type RepeatingTimer struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewRepeatingTimer creates a timer with the given period.
// Non-positive intervals produce a timer that never fires.
func NewRepeatingTimer(interval time.Duration) *RepeatingTimer {
	return &RepeatingTimer{interval: interval}
}

// Advance adds dt to the timer and returns how many periods completed.
func (t *RepeatingTimer) Advance(dt time.Duration) int {
	if t.interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fired := int(t.elapsed / t.interval)
	t.elapsed -= time.Duration(fired) * t.interval
	return fired
}
