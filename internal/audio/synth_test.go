package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/tuisteroids/tuisteroids/internal/game"
)

// drain pulls every sample out of a finite streamer.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("Streamer never finished")
	return nil
}

func TestToneDuration(t *testing.T) {
	dur := 100 * time.Millisecond
	samples := drain(t, newTone(waveSine, 440, dur, 0.5, sampleRate))
	want := sampleRate.N(dur)
	if len(samples) != want {
		t.Errorf("Expected %d samples for %v, got %d", want, dur, len(samples))
	}
}

func TestToneAmplitudeBounded(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"sine":   newTone(waveSine, 440, 50*time.Millisecond, 1.0, sampleRate),
		"square": newTone(waveSquare, 440, 50*time.Millisecond, 1.0, sampleRate),
		"saw":    newTone(waveSaw, 440, 50*time.Millisecond, 1.0, sampleRate),
		"noise":  newTone(waveNoise, 0, 50*time.Millisecond, 1.0, sampleRate),
	} {
		for i, sample := range drain(t, s) {
			if sample[0] < -1 || sample[0] > 1 || sample[1] < -1 || sample[1] > 1 {
				t.Fatalf("%s sample %d out of [-1, 1]: %v", name, i, sample)
			}
		}
	}
}

func TestToneGainScalesOutput(t *testing.T) {
	loud := drain(t, newTone(waveSquare, 440, 50*time.Millisecond, 1.0, sampleRate))
	quiet := drain(t, newTone(waveSquare, 440, 50*time.Millisecond, 0.25, sampleRate))

	peak := func(samples [][2]float64) float64 {
		max := 0.0
		for _, s := range samples {
			if v := s[0]; v > max {
				max = v
			}
			if v := -s[0]; v > max {
				max = v
			}
		}
		return max
	}

	if p := peak(quiet); p > 0.26 {
		t.Errorf("Gain 0.25 should cap peak near 0.25, got %.3f", p)
	}
	if p := peak(loud); p < 0.9 {
		t.Errorf("Gain 1.0 peak should reach near 1.0, got %.3f", p)
	}
}

func TestEnvelopeFadesOut(t *testing.T) {
	samples := drain(t, newTone(waveSquare, 440, 100*time.Millisecond, 1.0, sampleRate))

	// The release ramp makes the final samples much quieter than the middle.
	tail := samples[len(samples)-10:]
	for i, s := range tail {
		if s[0] > 0.1 || s[0] < -0.1 {
			t.Errorf("Tail sample %d should be faded out, got %.3f", i, s[0])
		}
	}
	if samples[0][0] > 0.1 || samples[0][0] < -0.1 {
		// Attack starts from silence too.
		t.Errorf("First sample should start near silence, got %.3f", samples[0][0])
	}
}

func TestEventSoundsFinite(t *testing.T) {
	for name, s := range map[string]beep.Streamer{
		"fire":           fireSound(sampleRate),
		"explosion":      explosionSound(300*time.Millisecond, sampleRate),
		"ship_destroyed": shipDestroyedSound(sampleRate),
		"extra_life":     extraLifeSound(sampleRate),
		"new_wave":       newWaveSound(sampleRate),
	} {
		if len(drain(t, s)) == 0 {
			t.Errorf("%s should produce samples", name)
		}
	}
}

func TestEngineSilentWithoutStart(t *testing.T) {
	e := NewEngine()

	// Without a speaker the engine must swallow everything quietly.
	e.Process([]game.Event{game.EventFire, game.EventThrust, game.EventExplosionLarge})
	e.Process(nil)
	e.Close()

	if e.initialized {
		t.Error("Engine should stay uninitialized without Start")
	}
}
