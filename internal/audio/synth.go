package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// waveType selects the oscillator shape.
type waveType int

const (
	waveSine waveType = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone is a finite mono oscillator with a linear attack/release envelope
// baked in. All game sounds are synthesized from these; there are no
// sample assets.
type tone struct {
	wave    waveType
	freq    float64 // Hz; ignored for noise
	endFreq float64 // sweep target; equal to freq for a steady tone
	gain    float64

	phase    float64
	position int
	total    int
	attack   int
	release  int
	rate     beep.SampleRate
}

// newTone builds a steady tone streamer.
func newTone(wave waveType, freq float64, dur time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	return newSweep(wave, freq, freq, dur, gain, rate)
}

// newSweep builds a tone whose frequency glides linearly from freq to
// endFreq over its duration.
func newSweep(wave waveType, freq, endFreq float64, dur time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	total := rate.N(dur)
	t := &tone{
		wave:    wave,
		freq:    freq,
		endFreq: endFreq,
		gain:    gain,
		total:   total,
		attack:  rate.N(5 * time.Millisecond),
		release: total / 3,
		rate:    rate,
	}
	if t.release < 1 {
		t.release = 1
	}
	return t
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.position >= t.total {
			return i, i > 0
		}

		var val float64
		switch t.wave {
		case waveSine:
			val = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			if t.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case waveSaw:
			val = 2.0 * (t.phase - 0.5)
		case waveNoise:
			val = rand.Float64()*2 - 1
		}

		val *= t.envelope() * t.gain
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(t.position) / float64(t.total)
		freq := t.freq + (t.endFreq-t.freq)*progress
		t.phase += freq / float64(t.rate)
		if t.phase >= 1.0 {
			t.phase -= 1.0
		}
		t.position++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope returns the linear attack/release gain at the current position.
func (t *tone) envelope() float64 {
	if t.position < t.attack && t.attack > 0 {
		return float64(t.position) / float64(t.attack)
	}
	releaseStart := t.total - t.release
	if t.position >= releaseStart {
		return float64(t.total-t.position) / float64(t.release)
	}
	return 1.0
}

// Per-event sound recipes. Frequencies are rough nods to the arcade
// original: short blips for shots, noise bursts scaled with asteroid size,
// and little square-wave jingles for the rare events.

func fireSound(rate beep.SampleRate) beep.Streamer {
	return newSweep(waveSquare, 880, 440, 70*time.Millisecond, 0.25, rate)
}

func thrustLoopSound(rate beep.SampleRate) beep.Streamer {
	return &rumble{rate: rate}
}

// rumble is an endless low noise bed with a slow amplitude wobble, paused
// and resumed by the engine as thrust starts and stops.
type rumble struct {
	rate beep.SampleRate
	pos  int
}

func (r *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(r.pos) / float64(r.rate)
		amp := 0.12 * (0.7 + 0.3*math.Sin(2*math.Pi*8*t))
		val := amp * (rand.Float64()*2 - 1)
		samples[i][0] = val
		samples[i][1] = val
		r.pos++
	}
	return len(samples), true
}

func (r *rumble) Err() error { return nil }

func explosionSound(dur time.Duration, rate beep.SampleRate) beep.Streamer {
	return newTone(waveNoise, 0, dur, 0.35, rate)
}

func shipDestroyedSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newSweep(waveSaw, 220, 40, 400*time.Millisecond, 0.3, rate),
		newTone(waveNoise, 0, 250*time.Millisecond, 0.3, rate),
	)
}

func extraLifeSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(waveSquare, 659.26, 90*time.Millisecond, 0.2, rate),
		newTone(waveSquare, 783.99, 90*time.Millisecond, 0.2, rate),
		newTone(waveSquare, 1046.50, 160*time.Millisecond, 0.2, rate),
	)
}

func newWaveSound(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		newTone(waveSquare, 392, 100*time.Millisecond, 0.18, rate),
		newTone(waveSquare, 523.25, 140*time.Millisecond, 0.18, rate),
	)
}
