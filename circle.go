package rings

import "math"

// Circle is the undisplaced outline of a ring.
type Circle struct {
	Center Point
	Radius float64
}

// Eval returns the point on the circle at angle th, measured in radians from
// the positive x axis.
func (c Circle) Eval(th float64) Point {
	return c.Center.Translate(VecFromAngle(th).Mul(c.Radius))
}

// Perimeter returns the circumference of the circle.
func (c Circle) Perimeter() float64 {
	return math.Abs(2 * math.Pi * c.Radius)
}

// SampleCount returns how many evenly spaced samples the circle needs so that
// neighbouring samples are about 1/stepsPerUnit apart along the perimeter.
// Circles with a non-positive or non-finite radius need no samples.
func (c Circle) SampleCount(stepsPerUnit float64) int {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) || !(stepsPerUnit > 0) {
		return 0
	}
	return int(math.Ceil(c.Perimeter() * stepsPerUnit))
}
