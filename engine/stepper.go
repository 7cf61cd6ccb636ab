package engine

import (
	"time"
)

// FixedStepper converts wall-clock time into a whole number of fixed simulation steps
// Leftover time carries into the next call; backlog beyond maxSteps is discarded
type FixedStepper struct {
	provider TimeProvider
	step     time.Duration
	maxSteps int
	last     time.Time
	acc      time.Duration
	started  bool
}

// NewFixedStepper creates a stepper emitting steps of size step
func NewFixedStepper(provider TimeProvider, step time.Duration, maxSteps int) *FixedStepper {
	if maxSteps < 1 {
		maxSteps = 1
	}
	return &FixedStepper{
		provider: provider,
		step:     step,
		maxSteps: maxSteps,
	}
}

// Steps returns how many fixed steps are due since the previous call
func (fs *FixedStepper) Steps() int {
	now := fs.provider.Now()
	if !fs.started {
		fs.last = now
		fs.started = true
		return 0
	}

	fs.acc += now.Sub(fs.last)
	fs.last = now

	n := int(fs.acc / fs.step)
	if n > fs.maxSteps {
		n = fs.maxSteps
		fs.acc = 0
		return n
	}
	fs.acc -= time.Duration(n) * fs.step
	return n
}

// Step returns the fixed step size
func (fs *FixedStepper) Step() time.Duration {
	return fs.step
}

// Reset forgets accumulated time, used after a host-side pause
func (fs *FixedStepper) Reset() {
	fs.started = false
	fs.acc = 0
}
