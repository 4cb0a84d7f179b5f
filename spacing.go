package rings

import "math"

// SpacingPolicy maps a ring index to the radial gap before the next ring.
//
// Below Threshold the gap eases out quadratically from C·Base at the centre
// to (C−K)·Base at Threshold; beyond Threshold it is Base. With C−K = 1 the
// two pieces meet without a step.
type SpacingPolicy struct {
	Base      float64 `yaml:"base"`
	C         float64 `yaml:"c"`
	K         float64 `yaml:"k"`
	Threshold int     `yaml:"threshold"`
}

// Spacing returns the radial increment following ring i.
func (sp SpacingPolicy) Spacing(i int) float64 {
	if i > sp.Threshold {
		return sp.Base
	}
	f := float64(i) / float64(sp.Threshold)
	return sp.Base * (sp.C - sp.K*f*f)
}

// Radii returns the cumulative radius of n rings, starting at r0.
// radii[j+1] = radii[j] + Spacing(j).
func (sp SpacingPolicy) Radii(r0 float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	radii := make([]float64, n)
	radii[0] = r0
	for j := 0; j+1 < n; j++ {
		radii[j+1] = radii[j] + sp.Spacing(j)
	}
	return radii
}

func (sp SpacingPolicy) validate() error {
	finite := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
	switch {
	case !finite(sp.Base) || sp.Base < 0:
		return invalidf("spacing base must be finite and non-negative, got %v", sp.Base)
	case !finite(sp.C) || !finite(sp.K):
		return invalidf("spacing shape constants must be finite, got c=%v k=%v", sp.C, sp.K)
	case sp.Threshold <= 0:
		return invalidf("spacing threshold must be positive, got %d", sp.Threshold)
	case sp.C < 0 || sp.C-sp.K < 0:
		// The ease-out term ranges over [C−K, C] (or [C, C−K] for K < 0).
		return invalidf("spacing shape constants give a negative increment: c=%v k=%v", sp.C, sp.K)
	}
	return nil
}
