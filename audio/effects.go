package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/lixenwraith/orb-arena/constant"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	return &oscillator{
		freq:     freq,
		phase:    0,
		duration: samples,
		position: 0,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope creates an ADSR envelope (simplified to just attack/release)
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := total - att - rel
	if sus < 0 {
		sus = 0
	}

	return &envelope{
		streamer:       s,
		position:       0,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, false
		}

		var vol float64 = 1.0

		// Attack phase
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		// Release phase
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = float64(remaining) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateCollectSound generates a short bright ding for orb pickup
func CreateCollectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// Fundamental (E6)
	fund := NewOscillator(1318.51, constant.CollectSoundDuration, WaveSine, rate)
	fundShaped := NewEnvelope(fund, constant.CollectSoundDuration, constant.CollectSoundAttack, constant.CollectSoundFundamentalRelease, rate)

	// Harmonic (octave up)
	over := NewOscillator(2637.02, constant.CollectSoundDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, constant.CollectSoundDuration, constant.CollectSoundAttack, constant.CollectSoundOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)

	vol := cfg.EffectVolumes[SoundCollect] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateHitSound generates a harsh low buzz layered with noise for bomb contact
func CreateHitSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	buzz := NewOscillator(90.0, constant.HitSoundDuration, WaveSaw, rate)
	buzzShaped := NewEnvelope(buzz, constant.HitSoundDuration, constant.HitSoundAttack, constant.HitSoundRelease, rate)

	noise := NewOscillator(0, constant.HitSoundDuration, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, constant.HitSoundDuration, constant.HitSoundAttack, constant.HitSoundRelease, rate)

	mixed := beep.Mix(
		newVolume(buzzShaped, 0.6),
		newVolume(noiseShaped, 0.25),
	)

	vol := cfg.EffectVolumes[SoundHit] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// CreateWaveSound generates a rising G major arpeggio that lands on a held octave
func CreateWaveSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.00, 493.88, 587.33, 783.99} // G4, B4, D5, G5
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		dur, release := constant.WaveSoundStepDuration, constant.WaveSoundStepRelease
		if i == len(notes)-1 {
			dur, release = constant.WaveSoundFinalDuration, constant.WaveSoundFinalRelease
		}
		body := NewEnvelope(NewOscillator(f, dur, WaveSine, rate), dur, constant.WaveSoundAttack, release, rate)
		edge := NewEnvelope(NewOscillator(f, dur, WaveSaw, rate), dur, constant.WaveSoundAttack, release, rate)
		parts = append(parts, beep.Mix(
			newVolume(body, 0.75),
			newVolume(edge, 0.2),
		))
	}

	vol := cfg.EffectVolumes[SoundWave] * cfg.MasterVolume
	return newVolume(beep.Seq(parts...), vol)
}

// CreateGameOverSound generates a descending three-note phrase
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.00, 311.13, 196.00} // G4, Eb4, G3
	parts := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, constant.GameOverNoteDuration, WaveSquare, rate)
		parts = append(parts, NewEnvelope(osc, constant.GameOverNoteDuration, constant.GameOverSoundAttack, constant.GameOverSoundRelease, rate))
	}

	vol := cfg.EffectVolumes[SoundGameOver] * cfg.MasterVolume
	return newVolume(beep.Seq(parts...), vol)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundCollect:
		return CreateCollectSound(cfg)
	case SoundHit:
		return CreateHitSound(cfg)
	case SoundWave:
		return CreateWaveSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
