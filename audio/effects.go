package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a raw wave for a fixed duration
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack/release and cuts the stream at duration
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	if remaining := e.totalSamples - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf, so 0 is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSelectSound is a short sine blip
func CreateSelectSound(rate beep.SampleRate, volume float64) beep.Streamer {
	tone, err := generators.SineTone(rate, 659.25)
	if err != nil {
		tone = NewOscillator(659.25, SelectSoundDuration, WaveSine, rate)
	}
	shaped := NewEnvelope(tone, SelectSoundDuration, SelectSoundAttack, SelectSoundRelease, rate)
	return newVolume(shaped, 0.5*volume)
}

// CreateMoveSound is a rising two-note chime
func CreateMoveSound(rate beep.SampleRate, volume float64) beep.Streamer {
	// First note (C5)
	n1 := NewOscillator(523.25, MoveSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, MoveSoundNote1Duration, MoveSoundAttack, MoveSoundNote1Release, rate)

	// Second note (G5)
	n2 := NewOscillator(783.99, MoveSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, MoveSoundNote2Duration, MoveSoundAttack, MoveSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.3*volume)
}

// CreateRejectSound is a low saw buzz
func CreateRejectSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(110.0, RejectSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, RejectSoundDuration, RejectSoundAttack, RejectSoundRelease, rate)
	return newVolume(shaped, 0.4*volume)
}

// CueStreamer returns a finite streamer for the cue, nil for unknown cues
func CueStreamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch c {
	case CueSelect:
		return CreateSelectSound(rate, volume)
	case CueMove:
		return CreateMoveSound(rate, volume)
	case CueReject:
		return CreateRejectSound(rate, volume)
	default:
		return nil
	}
}
