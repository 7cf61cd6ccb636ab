package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/brick-breaker/event"
	"github.com/lixenwraith/brick-breaker/logger"
	"github.com/lixenwraith/brick-breaker/parameter"
	"github.com/lixenwraith/brick-breaker/status"
)

const (
	sampleRate = beep.SampleRate(parameter.AudioSampleRate)
)

// SoundManager turns game events into procedurally generated sound cues
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cache       *soundCache
	initialized bool
	enabled     bool
	volume      float64
	lastPlayed  [soundTypeCount]time.Time
	now         func() time.Time
	log         logrus.FieldLogger

	statPlayed  *atomic.Int64
	statDropped *atomic.Int64
}

// NewSoundManager creates a new sound manager, enabled at the default volume
func NewSoundManager(log logrus.FieldLogger, reg *status.Registry) *SoundManager {
	return &SoundManager{
		mixer:       &beep.Mixer{},
		cache:       newSoundCache(),
		enabled:     true,
		volume:      parameter.AudioMasterVolume,
		now:         time.Now,
		log:         logger.OrDiscard(log).WithField("component", "audio"),
		statPlayed:  reg.Counter(status.MetricSoundPlayed),
		statDropped: reg.Counter(status.MetricSoundDropped),
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	// Initialize speaker with sample rate and buffer size
	err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration))
	if err != nil {
		return err
	}

	sm.cache.preload()
	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.log.WithField("sample_rate", int(sampleRate)).Debug("speaker initialized")
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
}

// SetEnabled turns cue playback on or off, typically from the persisted sound setting
func (sm *SoundManager) SetEnabled(enabled bool) {
	sm.mu.Lock()
	sm.enabled = enabled
	sm.mu.Unlock()
}

func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.enabled
}

// ToggleMute flips the enabled flag and returns the new muted state
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.enabled = !sm.enabled
	return !sm.enabled
}

// SetVolume sets the linear master gain, clamped to [0, 1]
func (sm *SoundManager) SetVolume(vol float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(vol, 0), 1)
}

// Play queues a cue on the mixer; returns false when muted, uninitialized or rate-limited
func (sm *SoundManager) Play(st SoundType) bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || !sm.enabled {
		return false
	}
	if !sm.admit(st, sm.now()) {
		sm.statDropped.Add(1)
		return false
	}

	buf := sm.cache.get(st)
	if len(buf) == 0 {
		return false
	}

	speaker.Lock()
	sm.mixer.Add(newBufferStreamer(buf, sm.volume))
	speaker.Unlock()

	sm.statPlayed.Add(1)
	return true
}

// HandleEvent plays the cue mapped to the event type, if any
func (sm *SoundManager) HandleEvent(ev event.GameEvent) {
	if st, ok := SoundFor(ev.Type); ok {
		sm.Play(st)
	}
}

// admit enforces MinSoundGap per cue; caller holds mu
func (sm *SoundManager) admit(st SoundType, now time.Time) bool {
	if st < 0 || st >= soundTypeCount {
		return false
	}
	last := sm.lastPlayed[st]
	if !last.IsZero() && now.Sub(last) < parameter.MinSoundGap {
		return false
	}
	sm.lastPlayed[st] = now
	return true
}

// SoundFor maps a game event to its cue
func SoundFor(et event.EventType) (SoundType, bool) {
	switch et {
	case event.EventPaddleBounce:
		return SoundPaddle, true
	case event.EventWallBounce:
		return SoundWall, true
	case event.EventBrickHit:
		return SoundBrickHit, true
	case event.EventBrickDestroyed:
		return SoundBrickBreak, true
	case event.EventBallLaunched:
		return SoundLaunch, true
	case event.EventPowerUpCollected:
		return SoundPowerUp, true
	case event.EventLifeAdded:
		return SoundLifeUp, true
	case event.EventLifeLost:
		return SoundLifeLost, true
	case event.EventLevelWin:
		return SoundLevelWin, true
	case event.EventLevelLose:
		return SoundLevelLose, true
	default:
		return 0, false
	}
}

// bufferStreamer plays a cached mono buffer once on both channels
type bufferStreamer struct {
	buf  floatBuffer
	pos  int
	gain float64
}

func newBufferStreamer(buf floatBuffer, gain float64) *bufferStreamer {
	return &bufferStreamer{buf: buf, gain: gain}
}

func (s *bufferStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	if s.pos >= len(s.buf) {
		return 0, false
	}
	for n < len(samples) && s.pos < len(s.buf) {
		v := s.buf[s.pos] * s.gain
		samples[n][0] = v
		samples[n][1] = v
		s.pos++
		n++
	}
	return n, true
}

func (s *bufferStreamer) Err() error {
	return nil
}
