package compress

import (
	"fmt"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
)

// NoneCompressor stores strips unchanged.
//
// It is the only method for which empty input is legal: an empty strip
// produces an empty payload at the current sink position. Use it when the
// pixel data is already compressed or when encode speed matters more than
// size.
type NoneCompressor struct{}

var _ Compressor = (*NoneCompressor)(nil)

// NewNoneCompressor creates a store-as-is compressor. It is stateless.
func NewNoneCompressor() NoneCompressor {
	return NoneCompressor{}
}

// Method returns format.CompressionNone.
func (NoneCompressor) Method() format.CompressionType {
	return format.CompressionNone
}

// Write appends data to the sink unchanged.
func (NoneCompressor) Write(sink Sink, data []byte) (EncodedStrip, error) {
	offset := sink.Offset()
	if len(data) == 0 {
		return EncodedStrip{Offset: offset, Count: 0}, nil
	}

	n, err := sink.Write(data)
	if err != nil {
		return EncodedStrip{}, fmt.Errorf("none: write strip: %w", err)
	}

	return EncodedStrip{Offset: offset, Count: uint64(n)}, nil
}
