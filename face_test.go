package psf

import (
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestFaceGlyph(t *testing.T) {
	face := hiFont(t).NewFace()
	defer face.Close()

	dot := fixed.P(10, 20)
	dr, mask, maskp, advance, ok := face.Glyph(dot, 'H')
	if !ok {
		t.Fatal("expected a glyph for 'H'")
	}

	if want := image.Rect(10, 17, 14, 20); dr != want {
		t.Errorf("unexpected draw rect %v, want %v", dr, want)
	}
	if advance != fixed.I(4) {
		t.Error("unexpected advance", advance)
	}
	if maskp != (image.Point{}) {
		t.Error("unexpected mask point", maskp)
	}

	alpha := mask.(*image.Alpha)
	if alpha.AlphaAt(0, 0).A != 0xff {
		t.Error("expected an opaque top-left mask pixel")
	}
	if alpha.AlphaAt(1, 0).A != 0 {
		t.Error("expected a transparent mask pixel")
	}
}

func TestFaceGlyphMissing(t *testing.T) {
	face := hiFont(t).NewFace()
	if _, _, _, _, ok := face.Glyph(fixed.P(0, 0), 'z'); ok {
		t.Error("expected no glyph for an unmapped character")
	}
	if _, _, ok := face.GlyphBounds('z'); ok {
		t.Error("expected no bounds for an unmapped character")
	}
	if _, ok := face.GlyphAdvance('z'); ok {
		t.Error("expected no advance for an unmapped character")
	}
}

func TestFaceMetrics(t *testing.T) {
	face := hiFont(t).NewFace()

	m := face.Metrics()
	if m.Height != fixed.I(3) || m.Ascent != fixed.I(3) || m.Descent != 0 {
		t.Errorf("unexpected metrics %+v", m)
	}
	if face.Kern('H', 'i') != 0 {
		t.Error("fixed-cell fonts must not kern")
	}

	bounds, advance, ok := face.GlyphBounds('H')
	if !ok {
		t.Fatal("expected bounds for 'H'")
	}
	if bounds != fixed.R(0, -3, 4, 0) || advance != fixed.I(4) {
		t.Errorf("unexpected bounds %v advance %v", bounds, advance)
	}
}

func TestFaceWithDrawer(t *testing.T) {
	f := hiFont(t)

	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: f.NewFace(),
		Dot:  fixed.P(0, f.Height()),
	}
	d.DrawString("Hi")

	if got := d.Dot.X; got != fixed.I(8) {
		t.Error("unexpected dot after drawing", got)
	}
	white := color.RGBA{0xff, 0xff, 0xff, 0xff}
	if img.RGBAAt(0, 0) != white {
		t.Error("expected the first glyph's top-left pixel to be painted")
	}
	if img.RGBAAt(5, 0) != white {
		t.Error("expected the second glyph's dot to be painted")
	}
}
