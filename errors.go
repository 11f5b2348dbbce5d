package psf

import "errors"

// Decoding errors. Everything that can go wrong while loading a font maps to
// exactly one of these; callers match with errors.Is. Lookups never return
// errors, a missing character is a nil result.
var (
	// ErrSourceUnavailable is returned by Load when the font file cannot
	// be read at all.
	ErrSourceUnavailable = errors.New("psf: source unavailable")

	// ErrDecompression is returned when a gzip container was detected but
	// its payload could not be decompressed.
	ErrDecompression = errors.New("psf: decompression failed")

	// ErrTooShort is returned when the input ends before the fixed-size
	// header does.
	ErrTooShort = errors.New("psf: data too short")

	// ErrBadMagic is returned when the leading bytes match neither the
	// PSF1 nor the PSF2 signature.
	ErrBadMagic = errors.New("psf: bad magic")

	// ErrUnsupportedVersion is returned for a PSF2 header whose version
	// field holds anything but zero.
	ErrUnsupportedVersion = errors.New("psf: unsupported version")

	// ErrTruncatedData is returned when the glyph region is smaller than
	// the header declares.
	ErrTruncatedData = errors.New("psf: truncated glyph data")

	// ErrMalformedMapping is returned when the unicode table cannot be
	// parsed to completion.
	ErrMalformedMapping = errors.New("psf: malformed unicode table")
)
