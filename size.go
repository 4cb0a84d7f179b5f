package rings

import "fmt"

// Size is a width and height in drawing units.
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Landscape returns the size with the longer side horizontal.
func (sz Size) Landscape() Size {
	if sz.Height > sz.Width {
		return Size{Width: sz.Height, Height: sz.Width}
	}
	return sz
}

// Portrait returns the size with the longer side vertical.
func (sz Size) Portrait() Size {
	if sz.Width > sz.Height {
		return Size{Width: sz.Height, Height: sz.Width}
	}
	return sz
}

// Rect returns the rectangle spanning from the origin to (Width, Height).
func (sz Size) Rect() Rect {
	return Rect{X0: 0, Y0: 0, X1: sz.Width, Y1: sz.Height}
}

// Paper sizes in centimetres, portrait orientation.
var (
	PaperLetter = Sz(21.59, 27.94)
	PaperA4     = Sz(21.0, 29.7)
	PaperA3     = Sz(29.7, 42.0)
)
