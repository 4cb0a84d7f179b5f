package rings

import "fmt"

// Sample is one step along a ring: either a drawn point or a gap.
//
// The zero value is a gap.
type Sample struct {
	pt    Point
	drawn bool
}

// GapSample marks a step that is not drawn.
var GapSample = Sample{}

// At returns a drawn sample at pt.
func At(pt Point) Sample {
	return Sample{pt: pt, drawn: true}
}

// Point returns the sample's point and whether the sample is drawn.
func (s Sample) Point() (Point, bool) {
	return s.pt, s.drawn
}

// IsGap reports whether the sample is a gap.
func (s Sample) IsGap() bool {
	return !s.drawn
}

func (s Sample) String() string {
	if !s.drawn {
		return "gap"
	}
	return s.pt.String()
}

// DrawnPoints returns the points of all drawn samples, in order.
func DrawnPoints(samples []Sample) []Point {
	var out []Point
	for _, s := range samples {
		if pt, ok := s.Point(); ok {
			out = append(out, pt)
		}
	}
	return out
}

var _ fmt.Stringer = Sample{}
