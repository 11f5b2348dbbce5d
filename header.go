package psf

import (
	"encoding/binary"
	"fmt"
)

// PSF1 layout: 2-byte magic, mode byte, charsize byte. Glyphs are always
// 8 pixels wide, charsize bytes tall, one byte per row.
const (
	psf1Magic0     = 0x36
	psf1Magic1     = 0x04
	psf1HeaderSize = 4

	psf1Mode512 = 0x01
)

// PSF2 layout: 4-byte magic followed by seven little-endian uint32 fields.
const (
	psf2Magic0     = 0x72
	psf2Magic1     = 0xb5
	psf2Magic2     = 0x4a
	psf2Magic3     = 0x86
	psf2HeaderSize = 32

	psf2HasUnicodeTable = 0x01
)

// header is the unified view of both format variants. dataOffset is where
// the glyph bitmaps begin: 4 for PSF1, the headersize field for PSF2.
type header struct {
	version    int // 1 or 2, selected by the magic
	dataOffset int
	count      int
	charSize   int // bytes per glyph record
	width      int
	height     int
	byteWidth  int // bytes per bitmap row, (width+7)/8
	hasTable   bool
}

// decodeHeader validates the magic and extracts the glyph geometry. It is a
// pure function over data; the glyph region is not touched.
func decodeHeader(data []byte) (header, error) {
	if len(data) < 2 {
		return header{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}

	if data[0] == psf1Magic0 && data[1] == psf1Magic1 {
		return decodePSF1Header(data)
	}
	if len(data) < psf1HeaderSize {
		return header{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}
	if data[0] == psf2Magic0 && data[1] == psf2Magic1 &&
		data[2] == psf2Magic2 && data[3] == psf2Magic3 {
		return decodePSF2Header(data)
	}
	return header{}, fmt.Errorf("%w: %02x %02x", ErrBadMagic, data[0], data[1])
}

func decodePSF1Header(data []byte) (header, error) {
	if len(data) < psf1HeaderSize {
		return header{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}
	mode, charSize := data[2], data[3]

	count := 256
	if mode&psf1Mode512 != 0 {
		count = 512
	}

	// The legacy format has no unicode table support here; mode bits
	// beyond the glyph count are ignored.
	return header{
		version:    1,
		dataOffset: psf1HeaderSize,
		count:      count,
		charSize:   int(charSize),
		width:      8,
		height:     int(charSize),
		byteWidth:  1,
	}, nil
}

func decodePSF2Header(data []byte) (header, error) {
	if len(data) < psf2HeaderSize {
		return header{}, fmt.Errorf("%w: %d bytes", ErrTooShort, len(data))
	}

	le := binary.LittleEndian
	version := le.Uint32(data[4:])
	headerSize := le.Uint32(data[8:])
	flags := le.Uint32(data[12:])
	count := le.Uint32(data[16:])
	charSize := le.Uint32(data[20:])
	height := le.Uint32(data[24:])
	width := le.Uint32(data[28:])

	if version != 0 {
		return header{}, fmt.Errorf("%w: version %d", ErrUnsupportedVersion, version)
	}
	if headerSize < psf2HeaderSize {
		return header{}, fmt.Errorf("%w: header size %d", ErrTooShort, headerSize)
	}

	return header{
		version:    2,
		dataOffset: int(headerSize),
		count:      int(count),
		charSize:   int(charSize),
		width:      int(width),
		height:     int(height),
		byteWidth:  (int(width) + 7) / 8,
		hasTable:   flags&psf2HasUnicodeTable != 0,
	}, nil
}
