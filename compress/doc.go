// Package compress turns raw pixel strips into stored byte sequences.
//
// A strip is one independently compressible slice of a raster image. Each
// compression method consumes the strip bytes and a write sink, appends the
// encoded payload to the sink exactly once, and reports where it landed:
//
//	comp := compress.NewPackBitsCompressor()
//	strip, err := comp.Write(sink, pixels)
//	if err != nil {
//	    return err
//	}
//	// strip.Offset and strip.Count go into the directory's
//	// StripOffsets / StripByteCounts fields.
//
// The directory assembler records the returned (offset, count) pairs; this
// package never reads back from the sink and never writes directory state
// itself.
//
// # Methods
//
// Five methods share the Compressor contract:
//
//   - None (format.CompressionNone): stores bytes as-is. The only method
//     that accepts an empty strip.
//   - PackBits (format.CompressionPackBits): byte-oriented run-length
//     packing into self-delimiting [header][payload] chunks. No external
//     codec; the chunk stream is a stable on-disk format of its own.
//   - LZW (format.CompressionLZW): the TIFF flavor of LZW via internal/lzw.
//     MSB-first packed codes, 9 to 12 bit widths, early width change.
//   - Deflate (format.CompressionDeflate): zlib streams through
//     github.com/klauspost/compress/zlib, level 0-9 or the library default.
//   - Zstd (format.CompressionZstd): Zstandard frames under the registered
//     extension tag, pure Go by default or libzstd with the gozstd build
//     tag.
//
// PackBits suits bi-level and palette images with long byte runs; it is
// often ineffective on continuous-tone data, where Deflate or Zstd do
// better. None wins when pixels are already entropy-coded.
//
// # Ownership and concurrency
//
// A Compressor instance owns at most one scratch buffer, drawn from an
// internal pool, cleared between strips, and released by Close. Instances
// are not safe for concurrent use; encode independent strips concurrently
// only with one instance and one sink region per goroutine. The sink is the
// serialization point and assumes a single writer.
//
// # Errors
//
// Empty input to any method but None fails with errs.ErrEmptyInput. Sink
// write failures and codec-internal failures are wrapped and propagated
// unretried: a failed write leaves the sink position undefined, so the
// encoding session must be aborted rather than resumed.
package compress
