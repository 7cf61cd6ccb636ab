package engine

import "time"

// TickClock is game time measured purely by accumulated tick deltas
// Paused clocks ignore Advance, so everything keyed to game time freezes with it
type TickClock struct {
	now    time.Duration
	frame  int64
	paused bool
}

// NewTickClock creates a clock at game time zero
func NewTickClock() *TickClock {
	return &TickClock{}
}

// Advance moves game time forward by dt and counts a frame
// Returns false without effect while paused or for non-positive dt
func (c *TickClock) Advance(dt time.Duration) bool {
	if c.paused || dt <= 0 {
		return false
	}
	c.now += dt
	c.frame++
	return true
}

// Now returns elapsed game time since the clock was created or reset
func (c *TickClock) Now() time.Duration {
	return c.now
}

// Frame returns the number of ticks advanced
func (c *TickClock) Frame() int64 {
	return c.frame
}

func (c *TickClock) Pause()  { c.paused = true }
func (c *TickClock) Resume() { c.paused = false }

// Reset returns the clock to zero, unpaused
func (c *TickClock) Reset() {
	*c = TickClock{}
}
