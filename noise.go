package rings

import (
	"fmt"
	"math"
	"strings"

	perlin "github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"
)

// NoiseField is a coherent noise generator: a deterministic, continuous
// function of its coordinates with values in roughly [-1, 1].
type NoiseField interface {
	Eval2(x, y float64) float64
	Eval3(x, y, z float64) float64
}

// NoiseKind selects the algorithm behind a [NoiseSource].
type NoiseKind int

const (
	// Simplex noise (OpenSimplex). This is the default.
	Simplex NoiseKind = iota
	// Perlin noise.
	Perlin
)

var noiseKindNames = [...]string{
	Simplex: "simplex",
	Perlin:  "perlin",
}

func (k NoiseKind) String() string {
	if int(k) < len(noiseKindNames) && k >= 0 {
		return noiseKindNames[k]
	}
	return fmt.Sprintf("NoiseKind(%d)", int(k))
}

func (k NoiseKind) MarshalText() ([]byte, error) {
	if k < 0 || int(k) >= len(noiseKindNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownNoiseKind, int(k))
	}
	return []byte(noiseKindNames[k]), nil
}

func (k *NoiseKind) UnmarshalText(b []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(b)))
	if s == "" {
		*k = Simplex
		return nil
	}
	for i, name := range noiseKindNames {
		if name == s {
			*k = NoiseKind(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownNoiseKind, s)
}

// Perlin parameters: smoothing, frequency ratio between octaves and octave
// count.
const (
	perlinAlpha   = 2.0
	perlinBeta    = 2.0
	perlinOctaves = 3
)

type perlinField struct {
	p *perlin.Perlin
}

func (f perlinField) Eval2(x, y float64) float64    { return f.p.Noise2D(x, y) }
func (f perlinField) Eval3(x, y, z float64) float64 { return f.p.Noise3D(x, y, z) }

// NewNoiseField returns a generator of the given kind seeded with seed.
// Generators never share state; two fields with different seeds are
// independent.
func NewNoiseField(kind NoiseKind, seed int64) (NoiseField, error) {
	switch kind {
	case Simplex:
		return opensimplex.New(seed), nil
	case Perlin:
		return perlinField{perlin.NewPerlin(perlinAlpha, perlinBeta, perlinOctaves, seed)}, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownNoiseKind, int(kind))
	}
}

// NoiseSource configures one weighted noise contribution. Coordinates are
// divided by Scale before sampling and the result is multiplied by
// Magnitude.
type NoiseSource struct {
	Magnitude float64   `yaml:"magnitude"`
	Scale     float64   `yaml:"scale"`
	Kind      NoiseKind `yaml:"kind"`
	Seed      int64     `yaml:"seed"`
}

// Inactive reports whether the source can never contribute a displacement.
func (src NoiseSource) Inactive() bool {
	return src.Magnitude == 0
}

func (src NoiseSource) validate(name string) error {
	if math.IsNaN(src.Magnitude) || math.IsInf(src.Magnitude, 0) {
		return invalidf("%s: magnitude must be finite, got %v", name, src.Magnitude)
	}
	if src.Inactive() {
		return nil
	}
	if !(src.Scale > 0) || math.IsInf(src.Scale, 0) {
		return invalidf("%s: scale must be positive and finite, got %v", name, src.Scale)
	}
	if src.Kind < 0 || int(src.Kind) >= len(noiseKindNames) {
		return invalidf("%s: %w: %d", name, ErrUnknownNoiseKind, int(src.Kind))
	}
	return nil
}

// NoiseSampler is a [NoiseSource] bound to its generator.
type NoiseSampler struct {
	src   NoiseSource
	field NoiseField
}

// NewNoiseSampler builds the generator for src. Inactive sources get no
// generator and always sample 0.
func NewNoiseSampler(src NoiseSource) (NoiseSampler, error) {
	if src.Inactive() {
		return NoiseSampler{src: src}, nil
	}
	f, err := NewNoiseField(src.Kind, src.Seed)
	if err != nil {
		return NoiseSampler{}, err
	}
	return NoiseSampler{src: src, field: f}, nil
}

// NewNoiseSamplerWith binds src to an existing generator.
func NewNoiseSamplerWith(src NoiseSource, field NoiseField) NoiseSampler {
	return NoiseSampler{src: src, field: field}
}

func (s NoiseSampler) active() bool {
	return s.field != nil && s.src.Magnitude != 0 && s.src.Scale > 0
}

// Sample returns Magnitude·noise(x/Scale, y/Scale).
func (s NoiseSampler) Sample(x, y float64) float64 {
	if !s.active() {
		return 0
	}
	return finiteOrZero(s.src.Magnitude * s.field.Eval2(x/s.src.Scale, y/s.src.Scale))
}

// Sample3 returns Magnitude·noise(x/Scale, y/Scale, z). The third coordinate
// is not scaled; it selects the layer.
func (s NoiseSampler) Sample3(x, y, z float64) float64 {
	if !s.active() {
		return 0
	}
	return finiteOrZero(s.src.Magnitude * s.field.Eval3(x/s.src.Scale, y/s.src.Scale, z))
}

// NoiseStack is an ordered sum of noise samplers.
type NoiseStack []NoiseSampler

// NewNoiseStack builds a sampler for every source.
func NewNoiseStack(srcs []NoiseSource) (NoiseStack, error) {
	out := make(NoiseStack, 0, len(srcs))
	for _, src := range srcs {
		s, err := NewNoiseSampler(src)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// Displacement sums all samplers at pt.
func (st NoiseStack) Displacement(pt Point) float64 {
	var d float64
	for _, s := range st {
		d += s.Sample(pt.X, pt.Y)
	}
	return finiteOrZero(d)
}

// DisplacementAt sums all samplers at pt on layer z.
func (st NoiseStack) DisplacementAt(pt Point, z float64) float64 {
	var d float64
	for _, s := range st {
		d += s.Sample3(pt.X, pt.Y, z)
	}
	return finiteOrZero(d)
}

// finiteOrZero replaces NaN and infinities with 0.
func finiteOrZero(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
