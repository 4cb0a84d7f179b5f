package rings

import "math/rand"

// Continuation is the two-state process that breaks rings into runs. While
// drawing, each step leaves the ring with GapProbability; while in a gap,
// each step rejoins it with ContinueProbability.
type Continuation struct {
	GapProbability      float64 `yaml:"gap_probability"`
	ContinueProbability float64 `yaml:"continue_probability"`
}

// ContinuationState tracks one ring's position in the process.
type ContinuationState struct {
	c       Continuation
	drawing bool
}

// Start draws the initial state: drawing with probability 1−GapProbability.
func (c Continuation) Start(rng *rand.Rand) *ContinuationState {
	return &ContinuationState{
		c:       c,
		drawing: rng.Float64() >= c.GapProbability,
	}
}

// Drawing reports whether the current step is drawn.
func (st *ContinuationState) Drawing() bool {
	return st.drawing
}

// Next reports whether the current step is drawn, then advances the process
// by one step. It consumes exactly one draw from rng.
func (st *ContinuationState) Next(rng *rand.Rand) bool {
	cur := st.drawing
	u := rng.Float64()
	if st.drawing {
		st.drawing = !(u < st.c.GapProbability)
	} else {
		st.drawing = u < st.c.ContinueProbability
	}
	return cur
}

// Mask runs the process over points, one step per point, and returns each
// point as drawn or as a gap.
func (c Continuation) Mask(points []Point, rng *rand.Rand) []Sample {
	if len(points) == 0 {
		return nil
	}
	st := c.Start(rng)
	out := make([]Sample, len(points))
	for i, pt := range points {
		if st.Next(rng) {
			out[i] = At(pt)
		} else {
			out[i] = GapSample
		}
	}
	return out
}

func (c Continuation) validate() error {
	if !(c.GapProbability >= 0 && c.GapProbability <= 1) {
		return invalidf("gap probability must be in [0, 1], got %v", c.GapProbability)
	}
	if !(c.ContinueProbability >= 0 && c.ContinueProbability <= 1) {
		return invalidf("continue probability must be in [0, 1], got %v", c.ContinueProbability)
	}
	return nil
}
