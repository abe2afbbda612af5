package compress

import (
	"fmt"
	"io"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
)

// Sink is the seekable output boundary a compressor writes strips into. The
// position reported by Offset is the absolute file position the next written
// byte will land on; tiff.Writer is the canonical implementation.
type Sink interface {
	io.Writer

	// Offset returns the absolute position of the next byte to be written.
	Offset() uint64
}

// EncodedStrip reports where one compressed strip landed.
//
// Offset is the sink position before the strip's first byte was written and
// is recorded later in the directory's strip offset field. Count is the
// exact number of bytes physically appended during the call, not the logical
// strip length.
type EncodedStrip struct {
	Offset uint64
	Count  uint64
}

// Compressor turns one raw pixel strip into its stored byte sequence.
//
// A Compressor instance owns at most one private scratch buffer, reused and
// cleared between strips, so a single instance must not be shared across
// goroutines. Compressing independent strips concurrently requires one
// instance and one sink region per goroutine.
type Compressor interface {
	// Method returns the compression tag recorded in the directory's
	// Compression field.
	Method() format.CompressionType

	// Write compresses data, appends the result to the sink exactly once,
	// and reports the landing offset with the stored byte count. Every
	// method except None rejects empty input with errs.ErrEmptyInput.
	Write(sink Sink, data []byte) (EncodedStrip, error)
}

// CreateCompressor creates a fresh Compressor for the given method tag.
//
// Each call returns a new instance: compressors own mutable scratch state,
// so sharing one instance across concurrent encoders is not safe and no
// global instances exist. Method tags this module cannot encode (the CCITT
// and JPEG families, or unknown tags) fail with errs.ErrUnsupportedCompression.
func CreateCompressor(method format.CompressionType) (Compressor, error) {
	switch method {
	case format.CompressionNone:
		return NewNoneCompressor(), nil
	case format.CompressionPackBits:
		return NewPackBitsCompressor(), nil
	case format.CompressionLZW:
		return NewLZWCompressor(), nil
	case format.CompressionDeflate:
		return NewDeflateCompressor(), nil
	case format.CompressionZstd:
		return NewZstdCompressor(), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, method)
	}
}
