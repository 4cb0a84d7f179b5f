package rings

import (
	"math/rand"
	"time"
)

// Stats summarises one composition.
type Stats struct {
	Layers int
	Rings  int
	// Samples counts angular samples over all rings, drawn or not.
	Samples int
	// Drawn counts samples that were not gaps.
	Drawn int
	// Segments counts runs produced by gap segmentation, before clipping.
	Segments int
	// Polylines and Points describe the final, clipped output.
	Polylines int
	Points    int
}

// Result is the output of one composition.
type Result struct {
	Polylines []Polyline
	Stats     Stats
}

// Composer generates ring compositions for one validated configuration.
// It owns its noise generators and its cumulative radius table, both fixed
// at construction; Compose only reads them.
type Composer struct {
	cfg         Config
	radii       []float64
	spacing     []float64
	radiusNoise NoiseSampler
	gen         ContourGenerator
	transform   SegmentTransform
	layers      []Layer
	clip        Rect
}

// NewComposer validates cfg and prepares a composer for it.
func NewComposer(cfg Config) (*Composer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.Clone()

	radiusNoise, err := NewNoiseSampler(cfg.RadiusNoise)
	if err != nil {
		return nil, err
	}
	pointNoise, err := NewNoiseStack(cfg.PointNoise)
	if err != nil {
		return nil, err
	}
	drift, err := NewNoiseSampler(cfg.LayerDrift)
	if err != nil {
		return nil, err
	}

	center := cfg.CenterPoint()
	c := &Composer{
		cfg:         cfg,
		radii:       cfg.Spacing.Radii(cfg.InitialRadius, cfg.RingCount),
		spacing:     make([]float64, cfg.RingCount),
		radiusNoise: radiusNoise,
		gen: ContourGenerator{
			Center:       center,
			StepsPerUnit: cfg.StepsPerUnit,
			Noise:        pointNoise,
			Continuation: cfg.Continuation,
		},
		transform: SegmentTransform{
			Mode:           cfg.Mode,
			Canvas:         cfg.Canvas.Rect(),
			Center:         center,
			JitterDistance: cfg.JitterDistance,
			BandCount:      cfg.BandCount,
			BandScale:      cfg.BandScale,
			LayerScale:     cfg.LayerScale,
			Drift:          drift,
		},
		clip: cfg.ClipBox(),
	}
	for j := range c.spacing {
		c.spacing[j] = cfg.Spacing.Spacing(j)
	}

	if len(cfg.Layers) == 0 {
		c.layers = []Layer{{Index: 0, Y: center.Y}}
	} else {
		for i, y := range cfg.Layers {
			c.layers = append(c.layers, Layer{Index: i, Y: y, Stacked: true})
		}
	}
	return c, nil
}

// Config returns a copy of the composer's configuration.
func (c *Composer) Config() Config {
	return c.cfg.Clone()
}

// Radii returns a copy of the cumulative radius table.
func (c *Composer) Radii() []float64 {
	return append([]float64(nil), c.radii...)
}

// Layers returns the layers the composer draws, in order.
func (c *Composer) Layers() []Layer {
	return append([]Layer(nil), c.layers...)
}

// RingRadius returns the radius of ring j on layer l, including radius
// noise.
func (c *Composer) RingRadius(l, j int) float64 {
	r := c.radii[j]
	if c.cfg.ShareRadiiAcrossLayers {
		r += float64(l) * c.spacing[j]
	}
	return r + c.radiusNoise.Sample(0, float64(j))
}

// Ring generates ring j of layer l as a noise ring and returns its
// descriptor and raw samples. rng must be the ring's own stream.
func (c *Composer) Ring(layer Layer, j int, rng *rand.Rand) (RingDescriptor, []Sample) {
	desc := c.gen.Describe(j, c.RingRadius(layer.Index, j), rng)
	return desc, c.gen.Generate(desc, layer, rng)
}

// ringSource returns the generator of the rings of one layer. Growth rings
// depend on their predecessor, so every layer gets a fresh grower.
func (c *Composer) ringSource(layer Layer) func(int, *rand.Rand) (RingDescriptor, []Sample) {
	if c.cfg.Generation == GrowthRings {
		gr := &ringGrower{
			policy:       c.cfg.Growth,
			first:        Circle{Center: c.gen.Center, Radius: c.cfg.InitialRadius},
			continuation: c.cfg.Continuation,
		}
		return gr.Next
	}
	return func(j int, rng *rand.Rand) (RingDescriptor, []Sample) {
		return c.Ring(layer, j, rng)
	}
}

// Compose generates every ring on every layer, segments and transforms the
// rings, and clips the result to the margin box. The output depends only on
// the configuration and seed.
func (c *Composer) Compose(seed int64) Result {
	start := time.Now()
	var (
		lines []Polyline
		stats = Stats{Layers: len(c.layers)}
	)
	for _, layer := range c.layers {
		ring := c.ringSource(layer)
		for j := range c.cfg.RingCount {
			rng := ringRNG(seed, layer.Index, j)
			desc, samples := ring(j, rng)

			drawn := 0
			for _, s := range samples {
				if !s.IsGap() {
					drawn++
				}
			}
			segments := 0
			for run := range Runs(samples) {
				if c.cfg.CloseFullRings && drawn == len(samples) {
					run = run.Close()
				}
				aff := c.transform.Affine(layer, rng)
				lines = append(lines, run.Transform(aff))
				segments++
			}

			stats.Rings++
			stats.Samples += len(samples)
			stats.Drawn += drawn
			stats.Segments += segments
			Logger().Debug("ring generated",
				"layer", layer.Index,
				"ring", j,
				"radius", desc.Radius,
				"samples", desc.AngularSampleCount,
				"segments", segments)
		}
	}

	lines = ClipPolylines(lines, c.clip)
	if tol := c.cfg.SimplifyTolerance; tol > 0 {
		for i, pl := range lines {
			lines[i] = SimplifyPolyline(pl, tol)
		}
	}
	stats.Polylines = len(lines)
	stats.Points = CountPoints(lines)

	Logger().Info("composition finished",
		"seed", seed,
		"rings", stats.Rings,
		"segments", stats.Segments,
		"polylines", stats.Polylines,
		"points", stats.Points,
		"elapsed", time.Since(start))
	return Result{Polylines: lines, Stats: stats}
}

// Compose validates cfg and composes it with seed. It either returns the
// complete polyline list or a validation error; generation never starts for
// an invalid configuration.
func Compose(cfg Config, seed int64) ([]Polyline, error) {
	c, err := NewComposer(cfg)
	if err != nil {
		return nil, err
	}
	return c.Compose(seed).Polylines, nil
}
