package rings

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
)

// GenerationMode selects how ring shapes are produced.
type GenerationMode int

const (
	// NoiseRings samples every ring on a circle of its own radius and
	// displaces the samples with point noise.
	NoiseRings GenerationMode = iota
	// GrowthRings starts from a circle of InitialRadius and grows every
	// further ring outward from the ring inside it. Spacing, radius noise
	// and point noise are not used.
	GrowthRings
)

var generationModeNames = [...]string{
	NoiseRings:  "noise",
	GrowthRings: "growth",
}

func (m GenerationMode) String() string {
	if m.valid() {
		return generationModeNames[m]
	}
	return fmt.Sprintf("GenerationMode(%d)", int(m))
}

func (m GenerationMode) valid() bool {
	return m >= 0 && int(m) < len(generationModeNames)
}

func (m GenerationMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownGeneration, int(m))
	}
	return []byte(generationModeNames[m]), nil
}

func (m *GenerationMode) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	for i, name := range generationModeNames {
		if strings.EqualFold(name, s) {
			*m = GenerationMode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownGeneration, s)
}

// GrowthPolicy controls [GrowthRings]. Each point of the next ring is the
// matching point of the current ring moved by
//
//	normal·(ConstantNormal + u₁·RandomNormal) +
//	radial·(ConstantRadial + u₂·RandomRadial + last·LastDistanceInfluence)
//
// where normal is the ring's outward normal at the point, radial is the
// unit vector of the point's angle, u₁ and u₂ are uniform in [0, 1) and last
// is how far the point moved in the previous step.
type GrowthPolicy struct {
	// Steps is the number of points on every ring.
	Steps                 int     `yaml:"steps"`
	ConstantNormal        float64 `yaml:"constant_normal"`
	RandomNormal          float64 `yaml:"random_normal"`
	ConstantRadial        float64 `yaml:"constant_radial"`
	RandomRadial          float64 `yaml:"random_radial"`
	LastDistanceInfluence float64 `yaml:"last_distance_influence"`
}

func (gp GrowthPolicy) validate() error {
	if gp.Steps < 3 {
		return invalidf("growth steps must be at least 3, got %d", gp.Steps)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"constant normal", gp.ConstantNormal},
		{"random normal", gp.RandomNormal},
		{"constant radial", gp.ConstantRadial},
		{"random radial", gp.RandomRadial},
		{"last distance influence", gp.LastDistanceInfluence},
	} {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return invalidf("growth %s must be finite, got %v", f.name, f.v)
		}
	}
	if gp.RandomNormal < 0 || gp.RandomRadial < 0 {
		return invalidf("growth random terms must not be negative, got normal=%v radial=%v", gp.RandomNormal, gp.RandomRadial)
	}
	return nil
}

// FirstRing returns Steps points evenly spaced on c, starting at angle 0.
func (gp GrowthPolicy) FirstRing(c Circle) []Point {
	out := make([]Point, gp.Steps)
	for i := range out {
		out[i] = c.Eval(2 * math.Pi * float64(i) / float64(gp.Steps))
	}
	return out
}

// Grow returns the ring that follows cur. prev is the ring that cur grew
// from; for the first step, pass cur as prev. Grow consumes exactly two
// draws from rng per point.
func (gp GrowthPolicy) Grow(prev, cur []Point, rng *rand.Rand) []Point {
	n := len(cur)
	next := make([]Point, n)
	for i, pt := range cur {
		th := 2 * math.Pi * float64(i) / float64(n)
		normal := outwardNormal(cur[(i+n-1)%n], cur[(i+1)%n])
		last := finiteOrZero(pt.Distance(prev[i]))

		along := rng.Float64()*gp.RandomNormal + gp.ConstantNormal
		radial := rng.Float64()*gp.RandomRadial + gp.ConstantRadial + last*gp.LastDistanceInfluence
		next[i] = pt.Translate(normal.Mul(along)).Translate(VecFromAngle(th).Mul(radial))
	}
	return next
}

// outwardNormal returns the unit normal at a ring point whose neighbours
// are before and after, for a ring running in the direction of increasing
// angle. Coincident neighbours have no normal and yield the zero vector.
func outwardNormal(before, after Point) Vec2 {
	n := before.Sub(after).Turn90().Normalize()
	if n.IsNaN() {
		return Vec2{}
	}
	return n
}

// ringGrower produces the rings of one layer in [GrowthRings] mode. Rings
// must be requested in index order.
type ringGrower struct {
	policy       GrowthPolicy
	first        Circle
	continuation Continuation
	prev, cur    []Point
}

func (gr *ringGrower) Next(j int, rng *rand.Rand) (RingDescriptor, []Sample) {
	if gr.cur == nil {
		gr.cur = gr.policy.FirstRing(gr.first)
		gr.prev = gr.cur
	} else {
		next := gr.policy.Grow(gr.prev, gr.cur, rng)
		gr.prev, gr.cur = gr.cur, next
	}
	desc := RingDescriptor{
		Index:              j,
		Radius:             meanDistance(gr.first.Center, gr.cur),
		AngularSampleCount: len(gr.cur),
	}
	return desc, gr.continuation.Mask(gr.cur, rng)
}

func meanDistance(center Point, pts []Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	var sum float64
	for _, pt := range pts {
		sum += pt.Distance(center)
	}
	return sum / float64(len(pts))
}
