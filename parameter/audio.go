package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 48000

	// AudioBufferDuration is the speaker buffer length, trading latency for underrun safety
	AudioBufferDuration = 100 * time.Millisecond

	// MinSoundGap between two plays of the same cue
	MinSoundGap = 30 * time.Millisecond

	// AudioMasterVolume is the default linear gain applied to every cue
	AudioMasterVolume = 0.6
)

// Paddle Bounce Sound
const (
	PaddleSoundDuration = 70 * time.Millisecond
	PaddleSoundAttack   = 2 * time.Millisecond
	PaddleSoundRelease  = 50 * time.Millisecond
	PaddleSoundFreq     = 440.0 // Hz
)

// Wall Bounce Sound
const (
	WallSoundDuration = 50 * time.Millisecond
	WallSoundAttack   = 2 * time.Millisecond
	WallSoundRelease  = 35 * time.Millisecond
	WallSoundFreq     = 330.0 // Hz
)

// Brick Hit Sound
const (
	BrickHitSoundDuration   = 120 * time.Millisecond
	BrickHitTransientLength = 4 * time.Millisecond
	BrickHitAttack          = 1 * time.Millisecond
	BrickHitDecayRate       = 40 * time.Millisecond
)

// Brick Break Sound
const (
	BrickBreakSoundDuration = 160 * time.Millisecond
	BrickBreakSoundAttack   = 2 * time.Millisecond
	BrickBreakSoundRelease  = 120 * time.Millisecond
	BrickBreakStartFreq     = 900.0 // Hz
	BrickBreakEndFreq       = 300.0 // Hz
)

// Launch Sound
const (
	LaunchSoundDuration = 200 * time.Millisecond
	LaunchSoundAttack   = 80 * time.Millisecond
	LaunchSoundRelease  = 100 * time.Millisecond
)

// Power-up Sound
const (
	PowerUpSoundNote1Duration = 80 * time.Millisecond
	PowerUpSoundNote2Duration = 280 * time.Millisecond
	PowerUpSoundAttack        = 5 * time.Millisecond
	PowerUpSoundNote1Release  = 40 * time.Millisecond
	PowerUpSoundNote2Release  = 200 * time.Millisecond
)

// Extra Life Sound
const (
	LifeUpSoundDuration           = 600 * time.Millisecond
	LifeUpSoundAttack             = 5 * time.Millisecond
	LifeUpSoundFundamentalRelease = 550 * time.Millisecond
	LifeUpSoundOvertoneRelease    = 200 * time.Millisecond
)

// Life Lost Sound
const (
	LifeLostSoundDuration = 400 * time.Millisecond
	LifeLostSoundAttack   = 5 * time.Millisecond
	LifeLostSoundRelease  = 150 * time.Millisecond
	LifeLostStartFreq     = 220.0 // Hz
	LifeLostEndFreq       = 55.0  // Hz
)

// Level Jingles
const (
	JingleNoteDuration = 120 * time.Millisecond
	JingleNoteAttack   = 5 * time.Millisecond
	JingleNoteRelease  = 80 * time.Millisecond
)
