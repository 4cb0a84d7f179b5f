package rings

import (
	"fmt"
	"iter"
	"math/rand"
	"strings"
)

// Runs yields the maximal runs of drawn samples. Every gap and both ends of
// the sequence delimit a run; the sequence does not wrap around, so a run
// ending at the last sample is never joined to one starting at the first.
func Runs(samples []Sample) iter.Seq[Polyline] {
	return func(yield func(Polyline) bool) {
		var cur Polyline
		for _, s := range samples {
			pt, ok := s.Point()
			if ok {
				cur = append(cur, pt)
				continue
			}
			if len(cur) > 0 {
				if !yield(cur) {
					return
				}
				cur = nil
			}
		}
		if len(cur) > 0 {
			yield(cur)
		}
	}
}

// TransformMode selects the single per-segment transform of a composition.
type TransformMode int

const (
	// HorizontalJitter shifts each segment left or right by a fixed
	// distance, choosing the direction per segment.
	HorizontalJitter TransformMode = iota
	// VerticalBandSplit squeezes each segment vertically and drops it into
	// one of several evenly spaced horizontal bands, chosen per segment.
	VerticalBandSplit
	// VerticalLayerPlace squeezes each segment vertically and moves it to
	// its layer's vertical position, optionally drifting sideways with a
	// noise field sampled along the layers.
	VerticalLayerPlace
)

var transformModeNames = [...]string{
	HorizontalJitter:   "horizontalJitter",
	VerticalBandSplit:  "verticalBandSplit",
	VerticalLayerPlace: "verticalLayerPlace",
}

func (m TransformMode) String() string {
	if m >= 0 && int(m) < len(transformModeNames) {
		return transformModeNames[m]
	}
	return fmt.Sprintf("TransformMode(%d)", int(m))
}

func (m TransformMode) valid() bool {
	return m >= 0 && int(m) < len(transformModeNames)
}

func (m TransformMode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
	}
	return []byte(transformModeNames[m]), nil
}

func (m *TransformMode) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	for i, name := range transformModeNames {
		if strings.EqualFold(name, s) {
			*m = TransformMode(i)
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownMode, s)
}

// SegmentTransform computes the transform applied to one segment.
type SegmentTransform struct {
	Mode TransformMode
	// Canvas is the drawing area; bands divide its height.
	Canvas Rect
	// Center is the ring centre. Vertical squeezing keeps it fixed.
	Center Point

	JitterDistance float64
	BandCount      int
	BandScale      float64
	LayerScale     float64
	Drift          NoiseSampler
}

// Affine returns the transform for the next segment on layer. Jitter and
// band split consume exactly one draw from rng; layer placement consumes
// none.
func (tr SegmentTransform) Affine(layer Layer, rng *rand.Rand) Affine {
	switch tr.Mode {
	case HorizontalJitter:
		dx := tr.JitterDistance
		if rng.Float64() < 0.5 {
			dx = -dx
		}
		return Translate(Vec(dx, 0))
	case VerticalBandSplit:
		slot := rng.Intn(tr.BandCount)
		bandHeight := tr.Canvas.Height() / float64(tr.BandCount)
		target := tr.Canvas.Y0 + (float64(slot)+0.5)*bandHeight
		return ScaleAbout(1, tr.BandScale, tr.Center).ThenTranslate(Vec(0, target-tr.Center.Y))
	case VerticalLayerPlace:
		dx := tr.Drift.Sample(0, layer.Y)
		return ScaleAbout(1, tr.LayerScale, tr.Center).ThenTranslate(Vec(dx, layer.Y-tr.Center.Y))
	default:
		panic(fmt.Sprintf("unhandled transform mode %v", tr.Mode))
	}
}
