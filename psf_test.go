package psf

import (
	"bytes"
	"compress/gzip"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// rowBytes converts strings of 'X' and spaces into MSB-first bitmap rows,
// byteWidth bytes per row.
func rowBytes(byteWidth int, rows ...string) []byte {
	out := make([]byte, 0, len(rows)*byteWidth)
	for _, r := range rows {
		b := make([]byte, byteWidth)
		for i := 0; i < len(r); i++ {
			if r[i] == 'X' {
				b[i/8] |= 1 << (7 - i%8)
			}
		}
		out = append(out, b...)
	}
	return out
}

func psf1Font(mode byte, height int, glyphs []byte) []byte {
	return append([]byte{psf1Magic0, psf1Magic1, mode, byte(height)}, glyphs...)
}

func psf2Font(flags, count, charSize, height, width int, glyphs, table []byte) []byte {
	hdr := make([]byte, psf2HeaderSize)
	hdr[0], hdr[1], hdr[2], hdr[3] = psf2Magic0, psf2Magic1, psf2Magic2, psf2Magic3
	le := binary.LittleEndian
	le.PutUint32(hdr[8:], psf2HeaderSize)
	le.PutUint32(hdr[12:], uint32(flags))
	le.PutUint32(hdr[16:], uint32(count))
	le.PutUint32(hdr[20:], uint32(charSize))
	le.PutUint32(hdr[24:], uint32(height))
	le.PutUint32(hdr[28:], uint32(width))
	out := append(hdr, glyphs...)
	return append(out, table...)
}

func TestParseLegacyRoundTrip(t *testing.T) {
	font, err := Parse(psf1Font(0, 8, make([]byte, 256*8)))
	if err != nil {
		t.Fatal(err)
	}

	if font.Count() != 256 {
		t.Error("unexpected glyph count", font.Count())
	}
	if font.Width() != 8 {
		t.Error("unexpected font width", font.Width())
	}
	if font.Height() != 8 {
		t.Error("unexpected font height", font.Height())
	}

	for _, i := range []int{0, 128, 255} {
		if font.Glyph(i) == nil {
			t.Errorf("glyph %d: expected a glyph", i)
		}
	}
	for _, i := range []int{-1, 256, 1024} {
		if font.Glyph(i) != nil {
			t.Errorf("glyph %d: expected nil", i)
		}
	}
}

func TestParseLegacy512(t *testing.T) {
	font, err := Parse(psf1Font(psf1Mode512, 16, make([]byte, 512*16)))
	if err != nil {
		t.Fatal(err)
	}
	if font.Count() != 512 {
		t.Error("unexpected glyph count", font.Count())
	}
	if font.Height() != 16 {
		t.Error("unexpected font height", font.Height())
	}
}

func TestCharDirectIndexFallback(t *testing.T) {
	glyphs := make([]byte, 256*8)
	copy(glyphs[65*8:], rowBytes(1,
		"   XX   ",
		"  X  X  ",
		" X    X ",
		" XXXXXX ",
		" X    X ",
		" X    X ",
		" X    X ",
		"        ",
	))
	font, err := Parse(psf1Font(0, 8, glyphs))
	if err != nil {
		t.Fatal(err)
	}

	g := font.Char('A')
	if g == nil {
		t.Fatal("expected a glyph for 'A'")
	}
	if diff := cmp.Diff(font.Glyph(65).Bitmap(), g.Bitmap()); diff != "" {
		t.Errorf("glyph mismatch (-want +got):\n%s", diff)
	}

	if font.Char(rune(256)) != nil {
		t.Error("expected nil beyond the glyph count")
	}
	if font.Char(-1) != nil {
		t.Error("expected nil for a negative codepoint")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.psf"))
	if !errors.Is(err, ErrSourceUnavailable) {
		t.Errorf("expected ErrSourceUnavailable, got %v", err)
	}
}

func TestLoadGzipped(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(psf1Font(0, 8, make([]byte, 256*8))); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "font.psf.gz")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	font, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if font.Count() != 256 {
		t.Error("unexpected glyph count", font.Count())
	}
}

func TestParseCorruptGzip(t *testing.T) {
	_, err := Parse([]byte{0x1f, 0x8b, 0xde, 0xad, 0xbe, 0xef})
	if !errors.Is(err, ErrDecompression) {
		t.Errorf("expected ErrDecompression, got %v", err)
	}
}
