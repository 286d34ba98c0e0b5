package game

import "testing"

func TestAccumulatorWholeSteps(t *testing.T) {
	a := NewAccumulator(1.0 / 60)

	if n := a.Accumulate(2.6 / 60); n != 2 {
		t.Errorf("2.6 timesteps should yield 2 updates, got %d", n)
	}
	// The 0.6 remainder carried over, so 0.6 more completes one update.
	if n := a.Accumulate(0.6 / 60); n != 1 {
		t.Errorf("Carried remainder plus 0.6 of a step should yield 1 update, got %d", n)
	}
	if n := a.Accumulate(0.1 / 60); n != 0 {
		t.Errorf("A fast frame should yield no updates, got %d", n)
	}
}

func TestAccumulatorSlowFrame(t *testing.T) {
	a := NewAccumulator(1.0 / 60)
	if n := a.Accumulate(10.0 / 60); n != 10 {
		t.Errorf("A slow frame should yield all due updates, got %d", n)
	}
}

func TestAccumulatorIgnoresNegativeTime(t *testing.T) {
	a := NewAccumulator(1.0 / 60)
	a.Accumulate(0.9 / 60)
	if n := a.Accumulate(-5); n != 0 {
		t.Errorf("Negative elapsed time should yield no updates, got %d", n)
	}
	// The previous remainder survives.
	if n := a.Accumulate(0.2 / 60); n != 1 {
		t.Errorf("Remainder should survive a negative sample, got %d", n)
	}
}

func TestAccumulatorRejectsBadTimestep(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Zero timestep should panic")
		}
	}()
	NewAccumulator(0)
}
