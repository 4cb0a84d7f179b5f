package rings

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

// Config is one complete parameterisation of a composition. The zero value
// is not valid; start from [DefaultConfig] or a [Preset].
type Config struct {
	// Generation selects how ring shapes are produced.
	Generation GenerationMode `yaml:"generation"`
	// Growth parameterises GrowthRings generation.
	Growth GrowthPolicy `yaml:"growth"`

	// RingCount is the number of rings per layer.
	RingCount int `yaml:"ring_count"`
	// Spacing yields the radial increment between consecutive rings.
	Spacing SpacingPolicy `yaml:"spacing"`
	// StepsPerUnit is the number of samples per unit of ring circumference.
	StepsPerUnit float64 `yaml:"steps_per_unit"`
	// InitialRadius is the radius of ring 0.
	InitialRadius float64 `yaml:"initial_radius"`
	// RadiusNoise perturbs each ring's radius as a function of its index.
	RadiusNoise NoiseSource `yaml:"radius_noise"`
	// PointNoise displaces every drawn sample radially. The contributions
	// of all sources are summed.
	PointNoise []NoiseSource `yaml:"point_noise"`

	Continuation `yaml:",inline"`

	// Layers lists layer coordinates. Empty means a single, unlayered
	// composition.
	Layers []float64 `yaml:"layers,omitempty"`
	// ShareRadiiAcrossLayers makes every layer grow its rings by one more
	// spacing step than the layer before it, instead of restarting from
	// the same radii.
	ShareRadiiAcrossLayers bool `yaml:"share_radii_across_layers"`

	Mode           TransformMode `yaml:"mode"`
	JitterDistance float64       `yaml:"jitter_distance"`
	BandCount      int           `yaml:"band_count"`
	BandScale      float64       `yaml:"band_scale"`
	LayerScale     float64       `yaml:"layer_scale"`
	LayerDrift     NoiseSource   `yaml:"layer_drift"`

	// Canvas is the paper size in drawing units.
	Canvas Size `yaml:"canvas"`
	// Center overrides the ring centre, which defaults to the middle of the
	// canvas.
	Center *Point `yaml:"center,omitempty"`
	// ClipMargin is the distance kept clear along every canvas edge.
	ClipMargin float64 `yaml:"clip_margin"`

	// CloseFullRings repeats the first point of rings that have no gap,
	// so that they are drawn as closed loops.
	CloseFullRings bool `yaml:"close_full_rings"`
	// SimplifyTolerance, if positive, removes points that deviate less
	// than this distance from the simplified line.
	SimplifyTolerance float64 `yaml:"simplify_tolerance"`
}

// DefaultConfig returns the noise-ring parameters: 40 unbroken rings on
// landscape US Letter, the innermost at 0.3 cm, packed tightly in the middle
// and relaxing to 1.5 mm spacing beyond ring 20. The growth parameters are
// used only when Generation is switched to GrowthRings.
func DefaultConfig() Config {
	return Config{
		Generation: NoiseRings,
		Growth: GrowthPolicy{
			Steps:                 400,
			ConstantNormal:        0.002,
			ConstantRadial:        0.1,
			RandomRadial:          0.04,
			LastDistanceInfluence: 0.3,
		},
		RingCount: 40,
		Spacing: SpacingPolicy{
			Base:      0.15,
			C:         2,
			K:         1,
			Threshold: 20,
		},
		StepsPerUnit:  10,
		InitialRadius: 0.3,
		RadiusNoise:   NoiseSource{Magnitude: 0.4, Scale: 20, Seed: 2},
		PointNoise: []NoiseSource{
			{Magnitude: 0.3, Scale: 7, Seed: 1},
		},
		Continuation: Continuation{
			GapProbability:      0,
			ContinueProbability: 1,
		},
		Mode:           HorizontalJitter,
		JitterDistance: 0,
		BandCount:      1,
		BandScale:      1,
		LayerScale:     1,
		Canvas:         PaperLetter.Landscape(),
		ClipMargin:     1.5,
		CloseFullRings: true,
	}
}

// LoadConfig reads a YAML configuration. Fields absent from r keep their
// [DefaultConfig] values. Unknown fields are an error.
func LoadConfig(r io.Reader) (Config, error) {
	return loadConfigOnto(DefaultConfig(), r)
}

func loadConfigOnto(cfg Config, r io.Reader) (Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("rings: decoding configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WriteConfig encodes cfg as YAML.
func WriteConfig(w io.Writer, cfg Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

// Clone returns a deep copy of cfg.
func (cfg Config) Clone() Config {
	cfg.PointNoise = append([]NoiseSource(nil), cfg.PointNoise...)
	cfg.Layers = append([]float64(nil), cfg.Layers...)
	if cfg.Center != nil {
		c := *cfg.Center
		cfg.Center = &c
	}
	return cfg
}

// ReseedNoise returns a copy of cfg whose noise sources are seeded from
// seed. Each source gets its own derived seed.
func (cfg Config) ReseedNoise(seed int64) Config {
	cfg = cfg.Clone()
	cfg.RadiusNoise.Seed = deriveSeed(seed, 0)
	cfg.LayerDrift.Seed = deriveSeed(seed, 1)
	for i := range cfg.PointNoise {
		cfg.PointNoise[i].Seed = deriveSeed(seed, uint64(i)+2)
	}
	return cfg
}

// CenterPoint returns the ring centre.
func (cfg Config) CenterPoint() Point {
	if cfg.Center != nil {
		return *cfg.Center
	}
	return cfg.Canvas.Rect().Center()
}

// ClipBox returns the canvas inset by the clip margin.
func (cfg Config) ClipBox() Rect {
	return cfg.Canvas.Rect().Inset(cfg.ClipMargin)
}

// Validate reports the first problem that prevents cfg from being composed.
// All errors wrap [ErrInvalidConfig]. Out-of-range values are rejected,
// never clamped.
func (cfg Config) Validate() error {
	finite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }

	switch cfg.Generation {
	case NoiseRings:
	case GrowthRings:
		if err := cfg.Growth.validate(); err != nil {
			return err
		}
	default:
		return invalidf("%w: %d", ErrUnknownGeneration, int(cfg.Generation))
	}
	if cfg.RingCount < 0 {
		return invalidf("ring count must not be negative, got %d", cfg.RingCount)
	}
	if err := cfg.Spacing.validate(); err != nil {
		return err
	}
	if !(cfg.StepsPerUnit > 0) || !finite(cfg.StepsPerUnit) {
		return invalidf("steps per unit must be positive and finite, got %v", cfg.StepsPerUnit)
	}
	if !finite(cfg.InitialRadius) {
		return invalidf("initial radius must be finite, got %v", cfg.InitialRadius)
	}
	if err := cfg.RadiusNoise.validate("radius noise"); err != nil {
		return err
	}
	for i, src := range cfg.PointNoise {
		if err := src.validate(fmt.Sprintf("point noise %d", i)); err != nil {
			return err
		}
	}
	if err := cfg.Continuation.validate(); err != nil {
		return err
	}
	for i, y := range cfg.Layers {
		if !finite(y) {
			return invalidf("layer %d coordinate must be finite, got %v", i, y)
		}
	}

	switch cfg.Mode {
	case HorizontalJitter:
		if !finite(cfg.JitterDistance) || cfg.JitterDistance < 0 {
			return invalidf("jitter distance must be finite and non-negative, got %v", cfg.JitterDistance)
		}
	case VerticalBandSplit:
		if cfg.BandCount < 1 {
			return invalidf("band count must be at least 1, got %d", cfg.BandCount)
		}
		if !(cfg.BandScale > 0) || !finite(cfg.BandScale) {
			return invalidf("band scale must be positive and finite, got %v", cfg.BandScale)
		}
	case VerticalLayerPlace:
		if !(cfg.LayerScale > 0) || !finite(cfg.LayerScale) {
			return invalidf("layer scale must be positive and finite, got %v", cfg.LayerScale)
		}
		if err := cfg.LayerDrift.validate("layer drift"); err != nil {
			return err
		}
	default:
		return invalidf("%w: %d", ErrUnknownMode, int(cfg.Mode))
	}

	if !(cfg.Canvas.Width > 0) || !(cfg.Canvas.Height > 0) || !finite(cfg.Canvas.Width) || !finite(cfg.Canvas.Height) {
		return invalidf("canvas must have a positive finite size, got %v", cfg.Canvas)
	}
	if !finite(cfg.ClipMargin) || cfg.ClipMargin < 0 {
		return invalidf("clip margin must be finite and non-negative, got %v", cfg.ClipMargin)
	}
	if cfg.ClipBox().IsEmpty() {
		return invalidf("clip margin %v leaves no drawing area on a %v canvas", cfg.ClipMargin, cfg.Canvas)
	}
	if cfg.Center != nil && !cfg.Center.IsFinite() {
		return invalidf("center must be finite, got %v", *cfg.Center)
	}
	if !finite(cfg.SimplifyTolerance) || cfg.SimplifyTolerance < 0 {
		return invalidf("simplify tolerance must be finite and non-negative, got %v", cfg.SimplifyTolerance)
	}
	return nil
}
