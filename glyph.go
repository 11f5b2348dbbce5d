package psf

import "strings"

// Glyph is a single character's bitmap. Rows are packed MSB-first, byteWidth
// bytes per row; padding bits past the glyph width are never exposed. Glyphs
// reference the font's data and are never mutated after decoding.
type Glyph struct {
	data      []byte
	width     int
	height    int
	byteWidth int
}

// Width returns the glyph width in pixels.
func (g *Glyph) Width() int {
	return g.width
}

// Height returns the glyph height in pixels.
func (g *Glyph) Height() int {
	return g.height
}

// Get reports whether the pixel at x,y is set. ok is false when the
// coordinates fall outside the glyph.
func (g *Glyph) Get(x, y int) (on, ok bool) {
	if x < 0 || x >= g.width || y < 0 || y >= g.height {
		return false, false
	}
	b := g.data[y*g.byteWidth+x/8]
	return b>>(7-x%8)&1 != 0, true
}

// Bitmap returns a copy of the raw row bytes.
func (g *Glyph) Bitmap() []byte {
	out := make([]byte, len(g.data))
	copy(out, g.data)
	return out
}

// String renders the glyph as a bordered block of 'X' and space cells,
// suitable for eyeballing a font in a terminal:
//
//	----------
//	|X       |
//	| XX     |
//	----------
func (g *Glyph) String() string {
	border := strings.Repeat("-", g.width+2)

	var sb strings.Builder
	sb.WriteString(border)
	sb.WriteByte('\n')
	for y := 0; y < g.height; y++ {
		sb.WriteByte('|')
		for x := 0; x < g.width; x++ {
			if on, _ := g.Get(x, y); on {
				sb.WriteByte('X')
			} else {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
