package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveTriangle
)

// oscillator generates a fixed-length tone
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a tone of freq Hz lasting duration
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
		case WaveTriangle:
			val = 4*math.Abs(o.phase-0.5) - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = float64(remaining) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 is silent.
// effects.Volume works in log2 steps and log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

type note struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

// effectNotes holds the notes of each effect, played one after another
var effectNotes = map[Effect][]note{
	EffectPaddleHit:  {{freq: 440, duration: 60 * time.Millisecond, wave: WaveSquare}},
	EffectWallBounce: {{freq: 220, duration: 50 * time.Millisecond, wave: WaveSquare}},
	EffectScore: {
		{freq: 523.25, duration: 90 * time.Millisecond, wave: WaveTriangle},
		{freq: 392, duration: 160 * time.Millisecond, wave: WaveTriangle},
	},
	EffectWin: {
		{freq: 523.25, duration: 120 * time.Millisecond, wave: WaveSine},
		{freq: 659.25, duration: 120 * time.Millisecond, wave: WaveSine},
		{freq: 783.99, duration: 300 * time.Millisecond, wave: WaveSine},
	},
}

const (
	noteAttack  = 5 * time.Millisecond
	noteRelease = 30 * time.Millisecond
)

// CreateEffect builds a fresh streamer for e at the given volume.
// Returns nil for an unknown effect.
func CreateEffect(e Effect, rate beep.SampleRate, volume float64) beep.Streamer {
	notes, ok := effectNotes[e]
	if !ok {
		return nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		osc := NewOscillator(n.freq, n.duration, n.wave, rate)
		parts = append(parts, NewEnvelope(osc, n.duration, noteAttack, noteRelease, rate))
	}

	return newVolume(beep.Seq(parts...), volume)
}
