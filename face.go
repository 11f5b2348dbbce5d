package psf

import (
	"image"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// NewFace wraps the font as a golang.org/x/image/font.Face so it can be used
// with font.Drawer and everything else built on that interface. The baseline
// sits at the bottom of the glyph cell.
func (f *Font) NewFace() font.Face {
	return &face{font: f}
}

type face struct {
	font *Font
}

func (a *face) Close() error {
	return nil
}

// Kern is always zero, PSF fonts are fixed-cell.
func (a *face) Kern(r0, r1 rune) fixed.Int26_6 {
	return 0
}

func (a *face) Metrics() font.Metrics {
	h := fixed.I(a.font.Height())
	return font.Metrics{
		Height:     h,
		Ascent:     h,
		Descent:    0,
		XHeight:    h,
		CapHeight:  h,
		CaretSlope: image.Point{X: 0, Y: 1},
	}
}

func (a *face) Glyph(dot fixed.Point26_6, r rune) (dr image.Rectangle, mask image.Image, maskp image.Point, advance fixed.Int26_6, ok bool) {
	g := a.font.Char(r)
	if g == nil {
		return image.Rectangle{}, nil, image.Point{}, 0, false
	}

	w, h := g.Width(), g.Height()
	x := int(dot.X+32) >> 6
	y := int(dot.Y+32) >> 6
	dr = image.Rect(x, y-h, x+w, y)

	m := image.NewAlpha(image.Rect(0, 0, w, h))
	for yy := 0; yy < h; yy++ {
		for xx := 0; xx < w; xx++ {
			if on, _ := g.Get(xx, yy); on {
				m.Pix[yy*m.Stride+xx] = 0xff
			}
		}
	}
	return dr, m, image.Point{}, fixed.I(w), true
}

func (a *face) GlyphBounds(r rune) (bounds fixed.Rectangle26_6, advance fixed.Int26_6, ok bool) {
	g := a.font.Char(r)
	if g == nil {
		return fixed.Rectangle26_6{}, 0, false
	}
	return fixed.R(0, -g.Height(), g.Width(), 0), fixed.I(g.Width()), true
}

func (a *face) GlyphAdvance(r rune) (advance fixed.Int26_6, ok bool) {
	if a.font.Char(r) == nil {
		return 0, false
	}
	return fixed.I(a.font.Width()), true
}
