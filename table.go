package psf

import (
	"fmt"
	"unicode/utf8"
)

// Unicode table control bytes (PSF2): each glyph's entry is a run of UTF-8
// encoded codepoints, uniSeqStart opens a combining-sequence group, and
// uniTerm closes the entry.
const (
	uniSeqStart = 0xfe
	uniTerm     = 0xff
)

// glyphTable holds the sliced glyph records plus the optional character
// mappings from the unicode table.
type glyphTable struct {
	glyphs []Glyph
	chars  map[rune]int   // single codepoint -> glyph index
	seqs   map[string]int // combining sequence -> glyph index
}

// decodeGlyphs slices the bitmap region declared by h into glyph records and,
// when the header advertises one, parses the trailing unicode table.
func decodeGlyphs(data []byte, h header) (glyphTable, error) {
	if h.charSize < h.byteWidth*h.height {
		return glyphTable{}, fmt.Errorf("%w: %d bytes per glyph, need %d",
			ErrTruncatedData, h.charSize, h.byteWidth*h.height)
	}

	// Bound count by the bytes actually present before multiplying, so a
	// header declaring huge counts can neither overflow the arithmetic nor
	// drive the glyph allocation past the input size.
	if h.dataOffset > len(data) ||
		(h.count > 0 && (h.charSize == 0 || h.count > (len(data)-h.dataOffset)/h.charSize)) {
		return glyphTable{}, fmt.Errorf("%w: %d glyphs of %d bytes exceed %d input bytes",
			ErrTruncatedData, h.count, h.charSize, len(data))
	}
	end := h.dataOffset + h.count*h.charSize

	t := glyphTable{glyphs: make([]Glyph, h.count)}
	for i := range t.glyphs {
		off := h.dataOffset + i*h.charSize
		t.glyphs[i] = Glyph{
			data:      data[off : off+h.charSize],
			width:     h.width,
			height:    h.height,
			byteWidth: h.byteWidth,
		}
	}

	if h.hasTable {
		var err error
		t.chars, t.seqs, err = parseUnicodeTable(data[end:], h.count)
		if err != nil {
			return glyphTable{}, err
		}
	}
	return t, nil
}

// parseUnicodeTable walks one entry per glyph. Duplicate codepoints keep
// their first mapping. The table must terminate every entry and leave no
// trailing bytes.
func parseUnicodeTable(tab []byte, count int) (map[rune]int, map[string]int, error) {
	chars := make(map[rune]int)
	seqs := make(map[string]int)

	pos := 0
	for glyph := 0; glyph < count; glyph++ {
		inSeq := false
		var seq []rune
		for {
			if pos >= len(tab) {
				return nil, nil, fmt.Errorf("%w: unterminated entry for glyph %d",
					ErrMalformedMapping, glyph)
			}
			b := tab[pos]
			if b == uniTerm {
				pos++
				break
			}
			if b == uniSeqStart {
				if inSeq && len(seq) > 0 {
					addSeq(seqs, seq, glyph)
				}
				inSeq = true
				seq = seq[:0]
				pos++
				continue
			}

			r, size := utf8.DecodeRune(tab[pos:])
			if r == utf8.RuneError && size <= 1 {
				return nil, nil, fmt.Errorf("%w: invalid utf-8 at byte %d",
					ErrMalformedMapping, pos)
			}
			pos += size

			if inSeq {
				seq = append(seq, r)
				continue
			}
			if _, dup := chars[r]; !dup {
				chars[r] = glyph
			}
		}
		if inSeq && len(seq) > 0 {
			addSeq(seqs, seq, glyph)
		}
	}

	if pos != len(tab) {
		return nil, nil, fmt.Errorf("%w: %d trailing bytes",
			ErrMalformedMapping, len(tab)-pos)
	}
	return chars, seqs, nil
}

func addSeq(seqs map[string]int, seq []rune, glyph int) {
	s := string(seq)
	if _, dup := seqs[s]; !dup {
		seqs[s] = glyph
	}
}
