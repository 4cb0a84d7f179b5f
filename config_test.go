package rings

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoadConfigEmpty(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(""))
	require.NoError(t, err)
	diff(t, DefaultConfig(), cfg)
}

func TestLoadConfigOverlay(t *testing.T) {
	const src = `
ring_count: 12
gap_probability: 0.25
continue_probability: 0.5
mode: VerticalBandSplit
band_count: 3
band_scale: 0.5
center: {x: 4, y: 6}
point_noise:
  - {magnitude: 0.2, scale: 3, kind: perlin, seed: 9}
`
	cfg, err := LoadConfig(strings.NewReader(src))
	require.NoError(t, err)

	want := DefaultConfig()
	want.RingCount = 12
	want.GapProbability = 0.25
	want.ContinueProbability = 0.5
	want.Mode = VerticalBandSplit
	want.BandCount = 3
	want.BandScale = 0.5
	want.Center = &Point{4, 6}
	want.PointNoise = []NoiseSource{{Magnitude: 0.2, Scale: 3, Kind: Perlin, Seed: 9}}
	diff(t, want, cfg)
	require.Equal(t, Pt(4, 6), cfg.CenterPoint())
}

func TestLoadConfigUnknownField(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("ring_cout: 3\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "ring_cout")
}

func TestLoadConfigUnknownMode(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("mode: spiral\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown segment transform mode")
}

func TestLoadConfigUnknownNoiseKind(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("radius_noise: {magnitude: 1, scale: 1, kind: worley}\n"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown noise kind")
}

func TestLoadConfigValidates(t *testing.T) {
	_, err := LoadConfig(strings.NewReader("ring_count: -4\n"))
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestConfigRoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			require.NoError(t, err)
			var buf bytes.Buffer
			require.NoError(t, WriteConfig(&buf, cfg))
			got, err := LoadConfig(&buf)
			require.NoError(t, err)
			diff(t, cfg, got, cmpopts.EquateEmpty())
		})
	}
}

func TestConfigValidate(t *testing.T) {
	nan := math.NaN()
	tests := []struct {
		name string
		edit func(*Config)
	}{
		{"negative ring count", func(c *Config) { c.RingCount = -1 }},
		{"negative spacing base", func(c *Config) { c.Spacing.Base = -0.1 }},
		{"zero threshold", func(c *Config) { c.Spacing.Threshold = 0 }},
		{"shrinking spacing", func(c *Config) { c.Spacing.C, c.Spacing.K = 1, 2 }},
		{"zero steps", func(c *Config) { c.StepsPerUnit = 0 }},
		{"NaN steps", func(c *Config) { c.StepsPerUnit = nan }},
		{"infinite radius", func(c *Config) { c.InitialRadius = math.Inf(1) }},
		{"radius noise scale", func(c *Config) { c.RadiusNoise.Scale = 0 }},
		{"point noise magnitude", func(c *Config) { c.PointNoise[0].Magnitude = nan }},
		{"point noise kind", func(c *Config) { c.PointNoise[0].Kind = 7 }},
		{"gap probability", func(c *Config) { c.GapProbability = 1.5 }},
		{"continue probability", func(c *Config) { c.ContinueProbability = -0.1 }},
		{"NaN probability", func(c *Config) { c.GapProbability = nan }},
		{"NaN layer", func(c *Config) { c.Layers = []float64{1, nan} }},
		{"negative jitter", func(c *Config) { c.JitterDistance = -1 }},
		{"zero bands", func(c *Config) {
			c.Mode = VerticalBandSplit
			c.BandCount = 0
		}},
		{"zero band scale", func(c *Config) {
			c.Mode = VerticalBandSplit
			c.BandScale = 0
		}},
		{"zero layer scale", func(c *Config) {
			c.Mode = VerticalLayerPlace
			c.LayerScale = 0
		}},
		{"layer drift scale", func(c *Config) {
			c.Mode = VerticalLayerPlace
			c.LayerDrift = NoiseSource{Magnitude: 1}
		}},
		{"unknown mode", func(c *Config) { c.Mode = 42 }},
		{"empty canvas", func(c *Config) { c.Canvas = Size{} }},
		{"negative margin", func(c *Config) { c.ClipMargin = -1 }},
		{"margin swallows canvas", func(c *Config) { c.ClipMargin = 20 }},
		{"NaN center", func(c *Config) { c.Center = &Point{nan, 0} }},
		{"negative tolerance", func(c *Config) { c.SimplifyTolerance = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestConfigValidateUnknownMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mode = 9
	err := cfg.Validate()
	require.True(t, errors.Is(err, ErrUnknownMode))
	require.True(t, errors.Is(err, ErrInvalidConfig))
}

func TestConfigInactiveNoiseNeedsNoScale(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RadiusNoise = NoiseSource{}
	cfg.PointNoise = []NoiseSource{{Magnitude: 0, Scale: -1}}
	require.NoError(t, cfg.Validate())
}

func TestConfigClone(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layers = []float64{1, 2}
	cfg.Center = &Point{1, 1}
	c := cfg.Clone()
	c.Layers[0] = 10
	c.PointNoise[0].Magnitude = 10
	c.Center.X = 10
	require.Equal(t, 1.0, cfg.Layers[0])
	require.Equal(t, 0.3, cfg.PointNoise[0].Magnitude)
	require.Equal(t, 1.0, cfg.Center.X)
}

func TestConfigReseedNoise(t *testing.T) {
	cfg := DefaultConfig()
	cfg.PointNoise = append(cfg.PointNoise, NoiseSource{Magnitude: 0.1, Scale: 2})
	a := cfg.ReseedNoise(1)
	b := cfg.ReseedNoise(2)

	require.Equal(t, int64(2), cfg.RadiusNoise.Seed, "original must not change")
	require.NotEqual(t, a.RadiusNoise.Seed, b.RadiusNoise.Seed)
	require.NotEqual(t, a.PointNoise[0].Seed, a.PointNoise[1].Seed)
	require.NotEqual(t, a.RadiusNoise.Seed, a.PointNoise[0].Seed)
	diff(t, a, cfg.ReseedNoise(1))

	la, err := Compose(a, 1)
	require.NoError(t, err)
	lb, err := Compose(b, 1)
	require.NoError(t, err)
	require.NotEqual(t, la, lb)
}

func TestPresets(t *testing.T) {
	names := PresetNames()
	require.Equal(t, []string{"growth", "stack", "strata", "topo", "woodgrain"}, names)
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			cfg, err := Preset(name)
			require.NoError(t, err)
			lines, err := Compose(cfg, 1)
			require.NoError(t, err)
			require.NotEmpty(t, lines)

			box := cfg.ClipBox()
			for _, pl := range lines {
				require.GreaterOrEqual(t, len(pl), 2)
				for _, pt := range pl {
					require.True(t, box.Contains(pt), "%v outside %v", pt, box)
				}
			}
		})
	}
}

func TestPresetTopoIsDefault(t *testing.T) {
	cfg, err := Preset("topo")
	require.NoError(t, err)
	diff(t, DefaultConfig(), cfg)
}

func TestPresetUnknown(t *testing.T) {
	_, err := Preset("nope")
	require.ErrorIs(t, err, ErrUnknownPreset)
}
