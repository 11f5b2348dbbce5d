package psf

import (
	"bytes"
	"image/color"
	"unicode/utf8"
)

// Drawable is an interface which supports setting an x,y coordinate to a
// color. It is satisfied by the mutable images in the standard image package.
type Drawable interface {
	Set(x, y int, c color.Color)
}

// DrawRune paints a single character at x,y (top-left corner) in the given
// color. Only set pixels are painted, the rest of the Drawable is left
// as-is. It returns false without drawing when the font has no glyph for c.
func (f *Font) DrawRune(dr Drawable, x, y int, c rune, clr color.Color) bool {
	g := f.Char(c)
	if g == nil {
		return false
	}
	for yy := 0; yy < g.height; yy++ {
		for xx := 0; xx < g.width; xx++ {
			if on, _ := g.Get(xx, yy); on {
				dr.Set(x+xx, y+yy, clr)
			}
		}
	}
	return true
}

// DrawString paints s starting at x,y by repeated calls to DrawRune.
// Characters advance by the font width; PSF glyph cells already include
// their spacing. Characters missing from the font leave an empty cell.
func (f *Font) DrawString(dr Drawable, x, y int, s string, clr color.Color) {
	for _, c := range s {
		f.DrawRune(dr, x, y, c, clr)
		x += f.hdr.width
	}
}

// MeasureString returns the pixel width needed to draw s.
func (f *Font) MeasureString(s string) int {
	return utf8.RuneCountInString(s) * f.hdr.width
}

// StringDrawable implements Drawable over text so fonts can be rendered as
// FIGlet-style output without an image surface.
type StringDrawable struct {
	lines [][]byte
}

func (s *StringDrawable) Set(x, y int, c color.Color) {
	for len(s.lines) <= y {
		s.lines = append(s.lines, make([]byte, x))
	}
	if len(s.lines[y]) <= x {
		pad := make([]byte, 1+x-len(s.lines[y]))
		s.lines[y] = append(s.lines[y], pad...)
	}
	s.lines[y][x] = 'X'
}

// String returns the current text representation of this Drawable.
func (s *StringDrawable) String() string {
	return s.PrefixString("")
}

// PrefixString returns the current text representation with a user-provided
// prefix before each line.
func (s *StringDrawable) PrefixString(p string) string {
	var out bytes.Buffer
	for _, line := range s.lines {
		out.WriteString(p)
		out.Write(bytes.ReplaceAll(line, []byte{0}, []byte{' '}))
		out.WriteByte('\n')
	}
	return out.String()
}
