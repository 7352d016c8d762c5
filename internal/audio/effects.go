package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-solitaire/internal/core"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// Cue timings.
const (
	pickupDuration  = 40 * time.Millisecond
	landDuration    = 60 * time.Millisecond
	drawDuration    = 70 * time.Millisecond
	recycleNote     = 90 * time.Millisecond
	attackTime      = 4 * time.Millisecond
	shortRelease    = 30 * time.Millisecond
	recycleRelease  = 60 * time.Millisecond
	noiseGainOnDraw = 0.35
)

// oscillator generates a fixed-length raw wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a new oscillator for wave generation.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
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
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with an attack ramp at the start and a release
// ramp at the end of duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = math.Max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; zero or less is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// tone is a shaped sine note.
func tone(freq float64, d, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, WaveSine, rate), d, attackTime, release, rate)
}

// Cue returns the sound for a game event, or nil for events without one.
func Cue(kind core.EventKind, volume float64, rate beep.SampleRate) beep.Streamer {
	var s beep.Streamer
	switch kind {
	case core.EventPickup:
		s = tone(660, pickupDuration, shortRelease, rate)
	case core.EventLand:
		s = beep.Mix(
			tone(220, landDuration, shortRelease, rate),
			newVolume(NewEnvelope(NewOscillator(0, landDuration, WaveNoise, rate), landDuration, attackTime, landDuration/2, rate), 0.2),
		)
	case core.EventDraw:
		noise := NewOscillator(0, drawDuration, WaveNoise, rate)
		s = newVolume(NewEnvelope(noise, drawDuration, attackTime, drawDuration/2, rate), noiseGainOnDraw)
	case core.EventRecycle:
		s = beep.Seq(
			tone(523.25, recycleNote, recycleRelease, rate),
			tone(392.0, recycleNote, recycleRelease, rate),
		)
	default:
		return nil
	}
	return newVolume(s, volume)
}
