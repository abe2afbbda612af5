package compress

import (
	"fmt"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/internal/pool"
)

// ZstdCompressor encodes strips with Zstandard under the registered
// extension tag 50000.
//
// Two backends provide the codec: the pure Go klauspost encoder by default,
// or the libzstd binding when built with the gozstd tag. Both emit standard
// zstd frames, one independently decodable frame per strip.
type ZstdCompressor struct {
	scratch *pool.ByteBuffer
}

var _ Compressor = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a Zstd compressor with a pooled scratch buffer.
func NewZstdCompressor() *ZstdCompressor {
	return &ZstdCompressor{scratch: pool.GetStripBuffer()}
}

// Method returns format.CompressionZstd.
func (*ZstdCompressor) Method() format.CompressionType {
	return format.CompressionZstd
}

// Write compresses data into the scratch buffer, then appends it to the
// sink in one write. Empty input fails with errs.ErrEmptyInput.
func (c *ZstdCompressor) Write(sink Sink, data []byte) (EncodedStrip, error) {
	if len(data) == 0 {
		return EncodedStrip{}, fmt.Errorf("zstd: %w", errs.ErrEmptyInput)
	}

	c.scratch.Reset()
	c.scratch.B = zstdCompress(c.scratch.B, data)

	offset := sink.Offset()
	n, err := sink.Write(c.scratch.Bytes())
	if err != nil {
		return EncodedStrip{}, fmt.Errorf("zstd: write strip: %w", err)
	}

	return EncodedStrip{Offset: offset, Count: uint64(n)}, nil
}

// Close returns the scratch buffer to the pool. The compressor must not be
// used afterwards.
func (c *ZstdCompressor) Close() error {
	pool.PutStripBuffer(c.scratch)
	c.scratch = nil

	return nil
}
