package ball

import (
	"math"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/status"
	"github.com/lixenwraith/brick-breaker/vmath"
)

// Correction flags what Adapter.Update changed on a ball
type Correction uint8

const CorrectionNone Correction = 0

const (
	// CorrectionRecovered: non-finite state replaced by a safe position and fresh launch
	CorrectionRecovered Correction = 1 << iota
	// CorrectionRelaunched: stalled ball sent off again
	CorrectionRelaunched
	// CorrectionRescaled: speed pulled back to target
	CorrectionRescaled
	// CorrectionAngleSnapped: near-horizontal direction steepened
	CorrectionAngleSnapped
)

// Has reports whether c contains flag
func (c Correction) Has(flag Correction) bool { return c&flag != 0 }

// Reflect mirrors v about unit normal n when v moves into the surface
// n points from the surface toward the ball; ok is false when v·n >= 0
func Reflect(v, n vmath.Vec2) (vmath.Vec2, bool) {
	if vmath.V2Dot(v, n) >= 0 {
		return v, false
	}
	return vmath.V2Reflect(v, n), true
}

// NormalizeSpeed rescales v to target when it drifts beyond tolerance
// A zero or non-finite ratio leaves v untouched
func NormalizeSpeed(v vmath.Vec2, target, tolerance float64) (vmath.Vec2, bool) {
	speed := vmath.V2Mag(v)
	if math.Abs(speed-target) <= tolerance {
		return v, false
	}
	ratio := target / speed
	if !vmath.IsFinite(ratio) || ratio == 0 {
		return v, false
	}
	return vmath.V2Scale(v, ratio), true
}

// EnforceMinAngle steepens v to snapDeg when it lies within minDeg of horizontal
// Horizontal sense is kept; vertical sense is kept, with an exactly flat ball sent upward
func EnforceMinAngle(v vmath.Vec2, speed, minDeg, snapDeg float64) (vmath.Vec2, bool) {
	if vmath.V2MagSq(v) == 0 {
		return v, false
	}

	deg := math.Abs(vmath.V2Angle(v))
	fromHorizontal := math.Min(deg, 180-deg)
	if fromHorizontal >= minDeg {
		return v, false
	}

	sx := 1.0
	if v.X < 0 {
		sx = -1
	}
	sy := -1.0
	if v.Y > 0 {
		sy = 1
	}

	sin, cos := math.Sincos(vmath.DegToRad(snapDeg))
	return vmath.Vec2{X: sx * cos * speed, Y: sy * sin * speed}, true
}

// Adapter applies bounce and per-tick velocity correction to balls
// The physics world only separates bodies; all velocity response goes through here
type Adapter struct {
	rng     Rand
	log     logrus.FieldLogger
	safePos vmath.Vec2

	statRecovered  *atomic.Int64
	statRelaunched *atomic.Int64
	statRescaled   *atomic.Int64
	statSnapped    *atomic.Int64
	statPeakSpeed  *status.AtomicFloat
}

// NewAdapter creates an adapter; safePos is where non-finite balls are respawned
// log and reg may be nil
func NewAdapter(rng Rand, safePos vmath.Vec2, log logrus.FieldLogger, reg *status.Registry) *Adapter {
	return &Adapter{
		rng:            rng,
		log:            logger.OrDiscard(log),
		safePos:        safePos,
		statRecovered:  reg.Counter(status.MetricBallRecovered),
		statRelaunched: reg.Counter(status.MetricBallRelaunched),
		statRescaled:   reg.Counter(status.MetricBallRescaled),
		statSnapped:    reg.Counter(status.MetricBallAngleSnap),
		statPeakSpeed:  reg.Gauge(status.MetricBallPeakSpeed),
	}
}

// Bounce reflects b off a surface with normal n
// Normals pointing mostly up (a surface under the ball) always send the ball upward
func (a *Adapter) Bounce(b *Ball, n vmath.Vec2) bool {
	v, ok := Reflect(b.Velocity(), n)
	if !ok {
		return false
	}
	if n.Y < parameter.BallUpwardNormalY && v.Y > 0 {
		v.Y = -v.Y
	}
	b.SetVelocity(v)
	return true
}

// Update corrects a launched ball's velocity for this tick
// Order: non-finite recovery, stall relaunch, speed rescale, horizontal guard
func (a *Adapter) Update(b *Ball) Correction {
	if !b.Launched {
		return CorrectionNone
	}

	if !vmath.V2IsFinite(b.Position()) || !vmath.V2IsFinite(b.Velocity()) {
		a.log.WithFields(logrus.Fields{
			"ball_id":  b.ID(),
			"position": b.Position(),
			"velocity": b.Velocity(),
		}).Warn("ball state not finite, respawning")
		a.statRecovered.Add(1)

		b.SetPosition(a.safePos)
		a.relaunch(b)
		return CorrectionRecovered
	}

	v := b.Velocity()
	speed := vmath.V2Mag(v)
	if speed < parameter.BallStallSpeed {
		a.log.WithField("ball_id", b.ID()).Debug("ball stalled, relaunching")
		a.statRelaunched.Add(1)
		a.relaunch(b)
		return CorrectionRelaunched
	}

	var c Correction
	if nv, ok := NormalizeSpeed(v, b.TargetSpeed, parameter.BallSpeedTolerance); ok {
		v = nv
		c |= CorrectionRescaled
		a.statRescaled.Add(1)
	}
	if nv, ok := EnforceMinAngle(v, b.TargetSpeed, parameter.BallMinAngleDeg, parameter.BallSnapAngleDeg); ok {
		v = nv
		c |= CorrectionAngleSnapped
		a.statSnapped.Add(1)
	}

	if c != CorrectionNone {
		b.SetVelocity(v)
	}
	a.statPeakSpeed.Max(b.TargetSpeed)
	return c
}

func (a *Adapter) relaunch(b *Ball) {
	b.Launched = false
	b.LaunchAt(RandomLaunchAngle(a.rng))
}
