// Package audio plays the sound tags emitted by the simulation as short
// generated tones.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/vovakirdan/tui-shooter/internal/core"
)

// SampleRate used by the speaker and every generated tone.
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Voice describes one generated effect.
type Voice struct {
	Wave     Wave
	From, To float64 // Frequency sweep in Hz
	Duration time.Duration
	Volume   float64 // Linear, 0..1
}

// voices maps every sound tag the shooter emits to a generated effect.
var voices = map[core.Sound]Voice{
	"shoot":          {WaveSquare, 1200, 600, 60 * time.Millisecond, 0.15},
	"enemy_shoot":    {WaveSaw, 500, 300, 80 * time.Millisecond, 0.12},
	"explosion":      {WaveNoise, 0, 0, 300 * time.Millisecond, 0.35},
	"crash":          {WaveNoise, 0, 0, 500 * time.Millisecond, 0.45},
	"shield_hit":     {WaveSine, 300, 900, 120 * time.Millisecond, 0.3},
	"powerup":        {WaveSine, 600, 1400, 200 * time.Millisecond, 0.3},
	"boss_alert":     {WaveSquare, 220, 180, 600 * time.Millisecond, 0.3},
	"level_complete": {WaveSine, 520, 1040, 700 * time.Millisecond, 0.3},
	"game_over":      {WaveSaw, 400, 100, 900 * time.Millisecond, 0.35},
}

// VoiceFor returns the effect for a tag.
func VoiceFor(s core.Sound) (Voice, bool) {
	v, ok := voices[s]
	return v, ok
}

// Tone builds a finite streamer for the voice with a short linear fade out.
func Tone(v Voice, rate beep.SampleRate) beep.Streamer {
	osc := &oscillator{
		voice: v,
		rate:  rate,
		total: rate.N(v.Duration),
		seed:  0x2545f491,
	}
	return newVolume(osc, v.Volume)
}

type oscillator struct {
	voice    Voice
	rate     beep.SampleRate
	total    int
	position int
	phase    float64
	seed     uint32
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		progress := float64(o.position) / float64(o.total)
		freq := o.voice.From + (o.voice.To-o.voice.From)*progress

		var val float64
		switch o.voice.Wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			o.seed = o.seed*1664525 + 1013904223
			val = float64(o.seed)/float64(math.MaxUint32)*2 - 1
		}

		// Release over the last quarter
		if progress > 0.75 {
			val *= (1 - progress) * 4
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// math.Log2(0) is -Inf, so zero volume is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
