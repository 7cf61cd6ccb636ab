package status

import "testing"

func TestRegistryCachedPointers(t *testing.T) {
	r := NewRegistry()

	c := r.Counter(MetricBricksHit)
	c.Add(2)
	r.Counter(MetricBricksHit).Add(1)

	if got := c.Load(); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}

	g := r.Gauge(MetricBallPeakSpeed)
	g.Max(250)
	g.Max(100)
	if got := g.Get(); got != 250 {
		t.Errorf("Expected peak 250, got %f", got)
	}

	snap := r.Snapshot()
	if snap[MetricBricksHit] != int64(3) || snap[MetricBallPeakSpeed] != 250.0 {
		t.Errorf("Unexpected snapshot %v", snap)
	}
}

func TestNilRegistryIsSafe(t *testing.T) {
	var r *Registry
	r.Counter(MetricTicks).Add(1)
	r.Gauge(MetricBallPeakSpeed).Set(1)
}
