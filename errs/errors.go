// Package errs defines the sentinel errors shared across the image-tiff packages.
//
// Callers match them with errors.Is after call sites wrap them with context:
//
//	if errors.Is(err, errs.ErrOffsetOverflow) {
//	    // fall back to BigTIFF
//	}
package errs

import "errors"

var (
	// ErrEmptyInput is returned when a compression strategy other than None
	// receives a zero-length strip. The packing algorithms are undefined on
	// empty input.
	ErrEmptyInput = errors.New("strip data is empty")

	// ErrOffsetOverflow is returned when a 64-bit file offset cannot be
	// represented in the container's native offset width. The value is never
	// silently truncated.
	ErrOffsetOverflow = errors.New("offset exceeds container offset width")

	// ErrInvalidStringValue is returned when a string field contains an
	// embedded NUL or a byte outside the 7-bit ASCII range.
	ErrInvalidStringValue = errors.New("string value is not encodable as ASCII")

	// ErrInvalidCompressionLevel is returned when a Deflate level is outside
	// the range accepted by the zlib stream.
	ErrInvalidCompressionLevel = errors.New("invalid compression level")

	// ErrInvalidOffsetKind is returned when an offset kind is neither
	// classic TIFF nor BigTIFF.
	ErrInvalidOffsetKind = errors.New("invalid offset kind")

	// ErrUnsupportedCompression is returned when a compression method tag has
	// no encoder in this module.
	ErrUnsupportedCompression = errors.New("unsupported compression method")
)
