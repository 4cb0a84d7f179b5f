package rings

import (
	"math"
	"math/rand"
)

// RingDescriptor fixes the geometry of one ring before it is sampled.
type RingDescriptor struct {
	Index              int
	Radius             float64
	AngularSampleCount int
	// Phase rotates the ring's first sample, in [0, 2π).
	Phase float64
}

// Layer is one vertical placement of a full ring set.
type Layer struct {
	Index int
	// Y is the layer coordinate. It is the third noise coordinate and the
	// vertical position used by layer placement.
	Y float64
	// Stacked is set when the composition has explicit layers. Unstacked
	// layers sample two-dimensional noise.
	Stacked bool
}

// ContourGenerator turns ring descriptors into point-or-gap sequences around
// a shared centre.
type ContourGenerator struct {
	Center       Point
	StepsPerUnit float64
	Noise        NoiseStack
	Continuation Continuation
}

// Describe computes the descriptor of ring index at radius, drawing its phase
// from rng. The sample count follows the ring's circumference so that the
// spacing between samples is roughly constant in drawing units.
func (g ContourGenerator) Describe(index int, radius float64, rng *rand.Rand) RingDescriptor {
	return RingDescriptor{
		Index:              index,
		Radius:             radius,
		AngularSampleCount: Circle{g.Center, radius}.SampleCount(g.StepsPerUnit),
		Phase:              2 * math.Pi * rng.Float64(),
	}
}

// Generate samples the ring described by desc. Drawn samples are displaced
// radially by the summed noise at their undisplaced position. The result
// has exactly desc.AngularSampleCount entries; a degenerate ring yields
// none.
func (g ContourGenerator) Generate(desc RingDescriptor, layer Layer, rng *rand.Rand) []Sample {
	n := desc.AngularSampleCount
	if n <= 0 {
		return nil
	}
	circle := Circle{Center: g.Center, Radius: desc.Radius}
	st := g.Continuation.Start(rng)
	out := make([]Sample, n)
	for i := range n {
		if !st.Next(rng) {
			out[i] = GapSample
			continue
		}
		th := 2*math.Pi*float64(i)/float64(n) + desc.Phase
		pos := circle.Eval(th)
		var d float64
		if layer.Stacked {
			d = g.Noise.DisplacementAt(pos, layer.Y)
		} else {
			d = g.Noise.Displacement(pos)
		}
		out[i] = At(displace(pos, th, d))
	}
	return out
}

// displace moves pos by d along the unit direction of angle th. A
// displacement that would produce a non-finite point is dropped.
func displace(pos Point, th, d float64) Point {
	moved := pos.Translate(VecFromAngle(th).Mul(d))
	if !moved.IsFinite() {
		return pos
	}
	return moved
}
