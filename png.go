package rings

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
)

// RasterOptions specifies settings for [RenderImage] and [WritePNG].
type RasterOptions struct {
	// Size is the page size in drawing units.
	Size Size
	// PixelsPerUnit is the resolution. It defaults to 40, about 100 dpi
	// for centimetres.
	PixelsPerUnit float64
	// LineWidth is the stroke width in pixels. It defaults to 1.
	LineWidth float64
}

func (opts RasterOptions) withDefaults() RasterOptions {
	if opts.PixelsPerUnit <= 0 {
		opts.PixelsPerUnit = 40
	}
	if opts.LineWidth <= 0 {
		opts.LineWidth = 1
	}
	return opts
}

// RenderImage draws lines in black on a white page.
func RenderImage(lines []Polyline, opts RasterOptions) image.Image {
	return renderContext(lines, opts).Image()
}

// WritePNG renders lines as a PNG preview and writes it to w.
func WritePNG(w io.Writer, lines []Polyline, opts RasterOptions) error {
	return renderContext(lines, opts).EncodePNG(w)
}

func renderContext(lines []Polyline, opts RasterOptions) *gg.Context {
	opts = opts.withDefaults()
	ppu := opts.PixelsPerUnit
	wpx := max(1, int(math.Ceil(opts.Size.Width*ppu)))
	hpx := max(1, int(math.Ceil(opts.Size.Height*ppu)))

	dc := gg.NewContext(wpx, hpx)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(opts.LineWidth)
	dc.SetLineCapRound()
	dc.SetLineJoinRound()
	for _, pl := range lines {
		if len(pl) < 2 {
			continue
		}
		dc.NewSubPath()
		for i, pt := range pl {
			if i == 0 {
				dc.MoveTo(pt.X*ppu, pt.Y*ppu)
			} else {
				dc.LineTo(pt.X*ppu, pt.Y*ppu)
			}
		}
		dc.Stroke()
	}
	return dc
}
