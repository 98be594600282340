// Package audio plays the procedural background music. It is an optional
// collaborator: the game runs the same with no audio device.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const sampleRate = beep.SampleRate(44100)

// bassLine is the looping melody in Hz, eighth notes, 0 = rest.
var bassLine = []float64{
	110.00, 0, 130.81, 110.00, 164.81, 0, 146.83, 130.81,
	98.00, 0, 116.54, 98.00, 146.83, 0, 130.81, 116.54,
}

// tune is an endless sine melody with a per-note decay envelope.
type tune struct {
	rate    beep.SampleRate
	notes   []float64
	noteLen int
	pos     int
	phase   float64
}

func newTune(rate beep.SampleRate, bpm int) *tune {
	eighth := time.Minute / time.Duration(bpm) / 2
	return &tune{
		rate:    rate,
		notes:   bassLine,
		noteLen: rate.N(eighth),
	}
}

func (t *tune) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		freq := t.notes[(t.pos/t.noteLen)%len(t.notes)]
		env := 1 - float64(t.pos%t.noteLen)/float64(t.noteLen)

		var val float64
		if freq > 0 {
			val = 0.5 * env * math.Sin(2*math.Pi*t.phase)
		}
		samples[i][0] = val
		samples[i][1] = val

		t.phase += freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tune) Err() error { return nil }

// Music is the looping background track with an adjustable linear gain.
// It is a beep.Streamer and safe to adjust while the speaker pulls samples.
type Music struct {
	mu     sync.Mutex
	volume *effects.Volume
	gain   float64
}

// NewMusic creates the track at the given tempo and gain.
func NewMusic(bpm int, gain float64) *Music {
	if bpm <= 0 {
		bpm = 120
	}
	m := &Music{
		volume: &effects.Volume{
			Streamer: newTune(sampleRate, bpm),
			Base:     2,
		},
	}
	m.setGainLocked(gain)
	return m
}

// SetGain changes the playback gain (0 = silent, 1 = full).
func (m *Music) SetGain(gain float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setGainLocked(gain)
}

func (m *Music) setGainLocked(gain float64) {
	gain = math.Max(0, math.Min(1, gain))
	m.gain = gain
	m.volume.Silent = gain == 0
	if gain > 0 {
		m.volume.Volume = math.Log2(gain)
	}
}

// Gain returns the current playback gain.
func (m *Music) Gain() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.gain
}

// Stream implements beep.Streamer.
func (m *Music) Stream(samples [][2]float64) (n int, ok bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.volume.Stream(samples)
}

// Err implements beep.Streamer.
func (m *Music) Err() error { return nil }
