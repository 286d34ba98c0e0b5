package game

// Accumulator decouples render pacing from simulation pacing: wall time is
// fed in, whole fixed timesteps come out, and the remainder carries over.
// A slow frame yields several updates, a fast one may yield none; either
// way the simulation only ever advances in exact dt increments.
type Accumulator struct {
	timestep    float64
	accumulated float64
}

// NewAccumulator creates an accumulator for the given fixed timestep in
// seconds.
func NewAccumulator(timestep float64) *Accumulator {
	if timestep <= 0 {
		panic("game: accumulator timestep must be positive")
	}
	return &Accumulator{timestep: timestep}
}

// Accumulate adds elapsed wall time and returns how many fixed updates are
// now due. Negative elapsed time is ignored.
func (a *Accumulator) Accumulate(elapsed float64) int {
	if elapsed < 0 {
		return 0
	}
	a.accumulated += elapsed
	n := 0
	for a.accumulated >= a.timestep {
		a.accumulated -= a.timestep
		n++
	}
	return n
}

// Timestep returns the fixed timestep in seconds.
func (a *Accumulator) Timestep() float64 { return a.timestep }
