package rings

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// SVGOptions specifies settings for [WriteSVG].
type SVGOptions struct {
	// Size is the page size in drawing units.
	Size Size
	// Unit is the physical unit of one drawing unit, such as "cm" or "mm".
	// It defaults to "cm".
	Unit string
	// StrokeWidth is the pen width in drawing units. It defaults to 0.03.
	StrokeWidth float64
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// Title, if not empty, is written as the document title.
	Title string
}

// WriteSVG writes lines as an SVG document to w, one path per polyline,
// sized so that one drawing unit is one opts.Unit on paper.
func WriteSVG(w io.Writer, lines []Polyline, opts SVGOptions) error {
	unit := opts.Unit
	if unit == "" {
		unit = "cm"
	}
	stroke := opts.StrokeWidth
	if stroke <= 0 {
		stroke = 0.03
	}
	ew := &errWriter{w: w}
	format := coordFormatter(opts.MaxPrecision)

	canvas := svg.New(ew)
	canvas.Startraw(
		fmt.Sprintf(`width="%s%s"`, format(opts.Size.Width), unit),
		fmt.Sprintf(`height="%s%s"`, format(opts.Size.Height), unit),
		fmt.Sprintf(`viewBox="0 0 %s %s"`, format(opts.Size.Width), format(opts.Size.Height)),
	)
	if opts.Title != "" {
		canvas.Title(opts.Title)
	}
	canvas.Gstyle(fmt.Sprintf("fill:none;stroke:black;stroke-width:%s;stroke-linecap:round;stroke-linejoin:round", format(stroke)))
	var sb strings.Builder
	for _, pl := range lines {
		if len(pl) < 2 {
			continue
		}
		sb.Reset()
		writePathData(&sb, pl, format)
		canvas.Path(sb.String())
	}
	canvas.Gend()
	canvas.End()
	return ew.err
}

// PathData converts a polyline to SVG path commands. Closed polylines end
// with a Z command instead of repeating the first point.
func PathData(pl Polyline, maxPrecision int) string {
	var sb strings.Builder
	writePathData(&sb, pl, coordFormatter(maxPrecision))
	return sb.String()
}

func writePathData(sb *strings.Builder, pl Polyline, format func(float64) string) {
	closed := pl.Closed()
	n := len(pl)
	if closed {
		n--
	}
	for i, pt := range pl[:n] {
		if i == 0 {
			fmt.Fprintf(sb, "M%s,%s", format(pt.X), format(pt.Y))
		} else {
			fmt.Fprintf(sb, " L%s,%s", format(pt.X), format(pt.Y))
		}
	}
	if closed {
		sb.WriteString(" Z")
	}
}

func coordFormatter(maxPrec int) func(float64) string {
	return func(n float64) string {
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', maxPrec, 64)
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
		if s == "" || s == "-" || s == "-0" {
			return "0"
		}
		return s
	}
}

// errWriter remembers the first write error; the svg package does not
// report them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}
