// Package tiff provides the encoding core for TIFF and BigTIFF containers:
// strip compression, typed field-value serialization, and the offset policy
// separating the classic 32-bit container from the 64-bit BigTIFF variant.
//
// # Core Features
//
//   - Strip compression (None, PackBits, LZW, Deflate, Zstd) through a
//     common sink contract that reports where each strip landed
//   - Typed field values for all classic and BigTIFF field types
//   - Explicit offset-width policy: a classic offset past 4 GiB fails
//     loudly instead of being truncated
//   - Byte-order engines for "II" and "MM" files
//   - A position-tracking Writer usable directly as the compression sink
//
// # Basic Usage
//
// Compressing pixel strips into a file:
//
//	var file bytes.Buffer
//
//	w, _ := tiff.NewWriter(&file)
//	_ = w.WriteHeader(format.ClassicTiff)
//
//	comp, _ := tiff.NewCompressor(format.CompressionPackBits)
//	strip, err := comp.Write(w, pixelRow)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// strip.Offset and strip.Count are the values the directory records
//	// in StripOffsets and StripByteCounts.
//
// Serializing field values:
//
//	enc := tiff.NewValueEncoder(w.Engine())
//	field, _ := enc.ASCII("scanner model X")
//	_ = w.PadWordBoundary()
//	_ = w.WriteField(field)
//
// # Package Structure
//
// This package provides the Writer plus thin wrappers around the
// subpackages, covering the common encode path. For fine-grained control use
// the subpackages directly: compress for the strip codecs, value for field
// serialization, format for the on-disk enumerations, endian for the
// byte-order engines.
package tiff

import (
	"github.com/mindQ-GmbH-Co-KG/image-tiff/compress"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/endian"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/value"
)

// NewCompressor creates a fresh compressor for the given method tag.
//
// Supported methods:
//   - format.CompressionNone
//   - format.CompressionPackBits
//   - format.CompressionLZW
//   - format.CompressionDeflate
//   - format.CompressionZstd
//
// Any other tag fails with errs.ErrUnsupportedCompression. Compressors that
// hold scratch state implement io.Closer; close them when done to return
// their buffers to the pool.
//
// Example:
//
//	comp, err := tiff.NewCompressor(format.CompressionDeflate)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer comp.(io.Closer).Close()
//
//	strip, err := comp.Write(w, pixels)
func NewCompressor(method format.CompressionType) (compress.Compressor, error) {
	return compress.CreateCompressor(method)
}

// NewValueEncoder creates a field-value encoder bound to the given
// byte-order engine. Use the engine of the Writer the fields will be
// written through:
//
//	enc := tiff.NewValueEncoder(w.Engine())
//	bits := enc.Shorts([]uint16{8, 8, 8})
func NewValueEncoder(engine endian.EndianEngine) *value.Encoder {
	return value.NewEncoder(engine)
}
