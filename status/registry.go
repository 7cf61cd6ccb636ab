package status

import "sync/atomic"

// Metric keys shared by the simulation packages
const (
	MetricTicks          = "game.ticks"
	MetricContacts       = "physics.contacts"
	MetricBallRecovered  = "ball.recovered"
	MetricBallRelaunched = "ball.relaunched"
	MetricBallRescaled   = "ball.rescaled"
	MetricBallAngleSnap  = "ball.angle_snaps"
	MetricBallPeakSpeed  = "ball.peak_speed"
	MetricBricksHit      = "brick.hits"
	MetricPowerUpDrops   = "powerup.drops"
	MetricPowerUpActive  = "powerup.activations"
	MetricSoundPlayed    = "audio.played"
	MetricSoundDropped   = "audio.dropped"
)

// Registry is the central metrics facade
// Components cache pointers at construction; the game loop writes directly to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Counter returns the int metric for key; a nil registry yields a throwaway counter
func (r *Registry) Counter(key string) *atomic.Int64 {
	if r == nil {
		return new(atomic.Int64)
	}
	return r.Ints.Get(key)
}

// Gauge returns the float metric for key; a nil registry yields a throwaway gauge
func (r *Registry) Gauge(key string) *AtomicFloat {
	if r == nil {
		return new(AtomicFloat)
	}
	return r.Floats.Get(key)
}

// Snapshot copies every metric into a flat map, suitable for structured log fields
func (r *Registry) Snapshot() map[string]any {
	out := make(map[string]any, r.Ints.Count()+r.Floats.Count())
	r.Ints.Range(func(k string, v *atomic.Int64) { out[k] = v.Load() })
	r.Floats.Range(func(k string, v *AtomicFloat) { out[k] = v.Get() })
	return out
}
