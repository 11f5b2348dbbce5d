// Package psf reads PC Screen Font (PSF) files, the raster fonts used by the
// Linux console. Both the legacy 4-byte-header format (PSF1) and the extended
// format (PSF2) are supported, including the PSF2 unicode mapping table and
// gzip-compressed font files as shipped in /usr/share/consolefonts.
//
// A decoded Font is immutable and safe for concurrent use. Glyphs can be
// inspected pixel by pixel, printed as ASCII art, drawn onto any image via
// the Drawable interface, or used with golang.org/x/image/font through
// NewFace.
package psf

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
)

// Font is a decoded PSF font: fixed glyph geometry, an indexed glyph table
// and, for PSF2 fonts carrying a unicode table, character mappings.
type Font struct {
	hdr   header
	table glyphTable
}

// Load reads and decodes the font file at path. Files compressed with gzip
// (detected by container magic, not file name) are decompressed first.
func Load(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return Parse(data)
}

// Parse decodes a PSF font from raw bytes. If data starts with the gzip
// magic it is decompressed before header decoding. When the unicode table
// maps the same codepoint to several glyphs, the first mapping wins.
func Parse(data []byte) (*Font, error) {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		var err error
		data, err = gunzip(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrDecompression, err)
		}
	}

	hdr, err := decodeHeader(data)
	if err != nil {
		return nil, err
	}
	table, err := decodeGlyphs(data, hdr)
	if err != nil {
		return nil, err
	}
	return &Font{hdr: hdr, table: table}, nil
}

func gunzip(data []byte) ([]byte, error) {
	zr, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	out, err := io.ReadAll(zr)
	if err != nil {
		return nil, err
	}
	return out, zr.Close()
}

// Width returns the pixel width shared by every glyph.
func (f *Font) Width() int {
	return f.hdr.width
}

// Height returns the pixel height shared by every glyph.
func (f *Font) Height() int {
	return f.hdr.height
}

// Count returns the number of glyphs in the font.
func (f *Font) Count() int {
	return len(f.table.glyphs)
}

// HasUnicodeTable reports whether character lookups go through a unicode
// mapping table rather than the direct-index fallback.
func (f *Font) HasUnicodeTable() bool {
	return f.table.chars != nil
}

// Glyph returns the glyph at index i, or nil when i is out of range.
func (f *Font) Glyph(i int) *Glyph {
	if i < 0 || i >= len(f.table.glyphs) {
		return nil
	}
	return &f.table.glyphs[i]
}

// Char returns the glyph for codepoint c, or nil when the font has none.
// Fonts without a unicode table fall back to the legacy convention of the
// codepoint doubling as the glyph index, for any value below Count.
func (f *Font) Char(c rune) *Glyph {
	if f.table.chars != nil {
		i, ok := f.table.chars[c]
		if !ok {
			return nil
		}
		return f.Glyph(i)
	}
	if c < 0 {
		return nil
	}
	return f.Glyph(int(c))
}

// CharSeq returns the glyph mapped to a multi-codepoint combining sequence,
// or nil. Only PSF2 unicode tables can carry such mappings.
func (f *Font) CharSeq(s string) *Glyph {
	i, ok := f.table.seqs[s]
	if !ok {
		return nil
	}
	return f.Glyph(i)
}
