package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat is a lock-free float64 gauge; the zero value reads 0
type AtomicFloat struct {
	v atomic.Uint64
}

func (f *AtomicFloat) Set(x float64) { f.v.Store(math.Float64bits(x)) }
func (f *AtomicFloat) Get() float64  { return math.Float64frombits(f.v.Load()) }

// Max keeps the larger of the stored value and x
func (f *AtomicFloat) Max(x float64) {
	for old := f.v.Load(); math.Float64frombits(old) < x; old = f.v.Load() {
		if f.v.CompareAndSwap(old, math.Float64bits(x)) {
			return
		}
	}
}
