package compress

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/internal/pool"
)

// DeflateCompressor encodes strips as zlib streams (the Adobe Deflate
// method, tag 8).
//
// The compression level is fixed at construction. Each strip closes its own
// zlib stream before the byte count is measured, so every payload carries a
// complete final block and decompresses on its own. The zlib writer and the
// scratch buffer are reused across strips.
type DeflateCompressor struct {
	level   int
	zw      *zlib.Writer
	scratch *pool.ByteBuffer
}

var _ Compressor = (*DeflateCompressor)(nil)

// NewDeflateCompressor creates a Deflate compressor at the zlib default
// level.
func NewDeflateCompressor() *DeflateCompressor {
	c, err := NewDeflateCompressorLevel(zlib.DefaultCompression)
	if err != nil {
		// The default level is always valid.
		panic(err)
	}

	return c
}

// NewDeflateCompressorLevel creates a Deflate compressor at the given level:
// 0 stores, 1 is fastest, 9 compresses best, and zlib.DefaultCompression
// selects the library default. Any other value fails with
// errs.ErrInvalidCompressionLevel.
func NewDeflateCompressorLevel(level int) (*DeflateCompressor, error) {
	if level != zlib.DefaultCompression && (level < zlib.NoCompression || level > zlib.BestCompression) {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompressionLevel, level)
	}

	zw, err := zlib.NewWriterLevel(io.Discard, level)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", errs.ErrInvalidCompressionLevel, level)
	}

	return &DeflateCompressor{
		level:   level,
		zw:      zw,
		scratch: pool.GetStripBuffer(),
	}, nil
}

// Method returns format.CompressionDeflate.
func (*DeflateCompressor) Method() format.CompressionType {
	return format.CompressionDeflate
}

// Level returns the compression level fixed at construction.
func (c *DeflateCompressor) Level() int {
	return c.level
}

// Write compresses data into the scratch buffer, finishes the zlib stream,
// then appends the buffer to the sink in one write. Empty input fails with
// errs.ErrEmptyInput.
func (c *DeflateCompressor) Write(sink Sink, data []byte) (EncodedStrip, error) {
	if len(data) == 0 {
		return EncodedStrip{}, fmt.Errorf("deflate: %w", errs.ErrEmptyInput)
	}

	c.scratch.Reset()
	c.zw.Reset(c.scratch)

	if _, err := c.zw.Write(data); err != nil {
		return EncodedStrip{}, fmt.Errorf("deflate: compress strip: %w", err)
	}
	if err := c.zw.Close(); err != nil {
		return EncodedStrip{}, fmt.Errorf("deflate: finish stream: %w", err)
	}

	offset := sink.Offset()
	n, err := sink.Write(c.scratch.Bytes())
	if err != nil {
		return EncodedStrip{}, fmt.Errorf("deflate: write strip: %w", err)
	}

	return EncodedStrip{Offset: offset, Count: uint64(n)}, nil
}

// Close returns the scratch buffer to the pool. The compressor must not be
// used afterwards.
func (c *DeflateCompressor) Close() error {
	pool.PutStripBuffer(c.scratch)
	c.scratch = nil

	return nil
}
