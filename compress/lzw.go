package compress

import (
	"fmt"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/internal/lzw"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/internal/pool"
)

// LZWCompressor encodes strips with the TIFF flavor of LZW (MSB-first code
// packing, 9 to 12 bit widths, early width change).
//
// The compressor owns one scratch buffer, reused and cleared between strips;
// the string table is rebuilt per call, so no dictionary state crosses
// strips and every payload is independently decodable.
type LZWCompressor struct {
	scratch *pool.ByteBuffer
}

var _ Compressor = (*LZWCompressor)(nil)

// NewLZWCompressor creates an LZW compressor with a pooled scratch buffer.
func NewLZWCompressor() *LZWCompressor {
	return &LZWCompressor{scratch: pool.GetStripBuffer()}
}

// Method returns format.CompressionLZW.
func (*LZWCompressor) Method() format.CompressionType {
	return format.CompressionLZW
}

// Write encodes data into the scratch buffer, then appends it to the sink in
// one write. Empty input fails with errs.ErrEmptyInput.
func (c *LZWCompressor) Write(sink Sink, data []byte) (EncodedStrip, error) {
	if len(data) == 0 {
		return EncodedStrip{}, fmt.Errorf("lzw: %w", errs.ErrEmptyInput)
	}

	c.scratch.Reset()
	c.scratch.Grow(lzw.MaxEncodedLen(len(data)))
	c.scratch.B = lzw.Encode(c.scratch.B, data)

	offset := sink.Offset()
	n, err := sink.Write(c.scratch.Bytes())
	if err != nil {
		return EncodedStrip{}, fmt.Errorf("lzw: write strip: %w", err)
	}

	return EncodedStrip{Offset: offset, Count: uint64(n)}, nil
}

// Close returns the scratch buffer to the pool. The compressor must not be
// used afterwards.
func (c *LZWCompressor) Close() error {
	pool.PutStripBuffer(c.scratch)
	c.scratch = nil

	return nil
}
