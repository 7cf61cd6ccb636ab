package audio

import (
	"math"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/brick-breaker/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveTriangle
	waveNoise
)

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// noiseSeed makes noise cues repeatable across runs
const noiseSeed = 0x6272

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	return sweep(waveType, freq, freq, samples)
}

// sweep generates a waveform whose frequency glides linearly from startFreq to endFreq
func sweep(waveType int, startFreq, endFreq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0

	var noise *rand.Rand
	if waveType == waveNoise {
		noise = rand.New(rand.NewSource(noiseSeed))
	}

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveTriangle:
			buf[i] = 1.0 - 4.0*math.Abs(phase-0.5)
		case waveNoise:
			buf[i] = noise.Float64()*2 - 1
		}

		freq := startFreq
		if samples > 1 {
			freq += (endFreq - startFreq) * float64(i) / float64(samples-1)
		}
		phase += freq / float64(parameter.AudioSampleRate)
		if phase >= 1.0 {
			phase -= math.Floor(phase)
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attack, release time.Duration) {
	total := len(buf)
	attackSamples := durationToSamples(attack)
	releaseSamples := durationToSamples(release)

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// applyDecay multiplies the buffer by exp(-t/tau)
func applyDecay(buf floatBuffer, tau time.Duration) {
	rate := 1.0 / (tau.Seconds() * float64(parameter.AudioSampleRate))
	for i := range buf {
		buf[i] *= math.Exp(-float64(i) * rate)
	}
}

// mixFloatBuffers adds b into a (in place), extending a if needed
func mixFloatBuffers(a, b floatBuffer, bScale float64) floatBuffer {
	if len(b) > len(a) {
		extended := make(floatBuffer, len(b))
		copy(extended, a)
		a = extended
	}
	for i := range b {
		a[i] += b[i] * bScale
	}
	return a
}

// concatFloatBuffers appends every buffer in order
func concatFloatBuffers(bufs ...floatBuffer) floatBuffer {
	n := 0
	for _, b := range bufs {
		n += len(b)
	}
	result := make(floatBuffer, 0, n)
	for _, b := range bufs {
		result = append(result, b...)
	}
	return result
}

// normalize scales the buffer so its peak is at most 1
func normalize(buf floatBuffer) floatBuffer {
	peak := 0.0
	for _, s := range buf {
		peak = math.Max(peak, math.Abs(s))
	}
	if peak > 1.0 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return buf
}

// durationToSamples converts duration to sample count
func durationToSamples(d time.Duration) int {
	return int(d.Seconds() * float64(parameter.AudioSampleRate))
}

// --- Sound Generators (unity gain) ---

func generatePaddleSound() floatBuffer {
	buf := oscillator(waveSquare, parameter.PaddleSoundFreq, durationToSamples(parameter.PaddleSoundDuration))
	applyEnvelope(buf, parameter.PaddleSoundAttack, parameter.PaddleSoundRelease)
	return buf
}

func generateWallSound() floatBuffer {
	buf := oscillator(waveTriangle, parameter.WallSoundFreq, durationToSamples(parameter.WallSoundDuration))
	applyEnvelope(buf, parameter.WallSoundAttack, parameter.WallSoundRelease)
	return buf
}

func generateBrickHitSound() floatBuffer {
	samples := durationToSamples(parameter.BrickHitSoundDuration)

	// Inharmonic partials give a metallic ring
	body := oscillator(waveSine, 523.0, samples)
	body = mixFloatBuffers(body, oscillator(waveSine, 1410.0, samples), 0.5)
	body = mixFloatBuffers(body, oscillator(waveSine, 2310.0, samples), 0.25)
	applyDecay(body, parameter.BrickHitDecayRate)

	// Short noise click on the attack
	click := oscillator(waveNoise, 0, durationToSamples(parameter.BrickHitTransientLength))
	applyEnvelope(click, parameter.BrickHitAttack, parameter.BrickHitTransientLength/2)

	return normalize(mixFloatBuffers(body, click, 0.6))
}

func generateBrickBreakSound() floatBuffer {
	samples := durationToSamples(parameter.BrickBreakSoundDuration)
	buf := sweep(waveSquare, parameter.BrickBreakStartFreq, parameter.BrickBreakEndFreq, samples)
	noise := oscillator(waveNoise, 0, samples)
	buf = mixFloatBuffers(buf, noise, 0.3)
	applyEnvelope(buf, parameter.BrickBreakSoundAttack, parameter.BrickBreakSoundRelease)
	return normalize(buf)
}

func generateLaunchSound() floatBuffer {
	buf := sweep(waveSine, 200.0, 800.0, durationToSamples(parameter.LaunchSoundDuration))
	applyEnvelope(buf, parameter.LaunchSoundAttack, parameter.LaunchSoundRelease)
	return buf
}

func generatePowerUpSound() floatBuffer {
	// Note 1: B5 (987.77 Hz)
	n1 := oscillator(waveSquare, 987.77, durationToSamples(parameter.PowerUpSoundNote1Duration))
	applyEnvelope(n1, parameter.PowerUpSoundAttack, parameter.PowerUpSoundNote1Release)

	// Note 2: E6 (1318.51 Hz)
	n2 := oscillator(waveSquare, 1318.51, durationToSamples(parameter.PowerUpSoundNote2Duration))
	applyEnvelope(n2, parameter.PowerUpSoundAttack, parameter.PowerUpSoundNote2Release)

	return concatFloatBuffers(n1, n2)
}

func generateLifeUpSound() floatBuffer {
	samples := durationToSamples(parameter.LifeUpSoundDuration)

	// Fundamental A5 (880Hz)
	fund := oscillator(waveSine, 880.0, samples)
	applyEnvelope(fund, parameter.LifeUpSoundAttack, parameter.LifeUpSoundFundamentalRelease)

	// Overtone A6 (1760Hz)
	over := oscillator(waveSine, 1760.0, samples)
	applyEnvelope(over, parameter.LifeUpSoundAttack, parameter.LifeUpSoundOvertoneRelease)

	return normalize(mixFloatBuffers(fund, over, 0.3/0.7))
}

func generateLifeLostSound() floatBuffer {
	buf := sweep(waveTriangle, parameter.LifeLostStartFreq, parameter.LifeLostEndFreq, durationToSamples(parameter.LifeLostSoundDuration))
	applyEnvelope(buf, parameter.LifeLostSoundAttack, parameter.LifeLostSoundRelease)
	return buf
}

// jingle plays each frequency as a short enveloped note
func jingle(waveType int, freqs ...float64) floatBuffer {
	notes := make([]floatBuffer, len(freqs))
	for i, f := range freqs {
		n := oscillator(waveType, f, durationToSamples(parameter.JingleNoteDuration))
		applyEnvelope(n, parameter.JingleNoteAttack, parameter.JingleNoteRelease)
		notes[i] = n
	}
	return concatFloatBuffers(notes...)
}

func generateLevelWinSound() floatBuffer {
	// C5 E5 G5 C6
	return jingle(waveSquare, 523.25, 659.25, 783.99, 1046.50)
}

func generateLevelLoseSound() floatBuffer {
	// G4 Eb4 C4
	return jingle(waveTriangle, 392.00, 311.13, 261.63)
}

// generateSound dispatches to specific generator
func generateSound(st SoundType) floatBuffer {
	switch st {
	case SoundPaddle:
		return generatePaddleSound()
	case SoundWall:
		return generateWallSound()
	case SoundBrickHit:
		return generateBrickHitSound()
	case SoundBrickBreak:
		return generateBrickBreakSound()
	case SoundLaunch:
		return generateLaunchSound()
	case SoundPowerUp:
		return generatePowerUpSound()
	case SoundLifeUp:
		return generateLifeUpSound()
	case SoundLifeLost:
		return generateLifeLostSound()
	case SoundLevelWin:
		return generateLevelWinSound()
	case SoundLevelLose:
		return generateLevelLoseSound()
	default:
		return nil
	}
}
