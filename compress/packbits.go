package compress

import (
	"fmt"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
)

// PackBits chunk limits. A run chunk costs two bytes regardless of run
// length, so a repeat shorter than packBitsMinRun is cheaper left inside a
// literal chunk unless it starts the pending window.
const (
	packBitsMinRun   = 3
	packBitsMaxChunk = 128
)

// packBitsLiteralHeader encodes a literal chunk header for n bytes, 1..128.
func packBitsLiteralHeader(n int) byte {
	return byte(n - 1)
}

// packBitsRunHeader encodes a run chunk header for a run of n, 2..128.
func packBitsRunHeader(n int) byte {
	return byte(256 - (n - 1))
}

// PackBitsCompressor implements byte-oriented run-length packing.
//
// The output is a self-delimiting sequence of chunks, each led by one signed
// header byte h: h >= 0 means the next h+1 bytes are literal; h < 0 (stored
// as 129..255, value v) means the single following byte repeats 257-v times.
// The encoder is a single forward pass that never looks past the current
// byte pair, and chunks are streamed to the sink as they close, so the
// compressor itself is stateless.
type PackBitsCompressor struct{}

var _ Compressor = (*PackBitsCompressor)(nil)

// NewPackBitsCompressor creates a PackBits compressor.
func NewPackBitsCompressor() PackBitsCompressor {
	return PackBitsCompressor{}
}

// Method returns format.CompressionPackBits.
func (PackBitsCompressor) Method() format.CompressionType {
	return format.CompressionPackBits
}

// Write packs data into literal and run chunks.
//
// A pending window holds bytes seen but not yet flushed. A repeat becomes a
// run once it spans packBitsMinRun bytes, or immediately when it starts the
// window; runs close on a differing byte or at packBitsMaxChunk, literals
// flush at packBitsMaxChunk with the run candidate position carried over.
// The final flush emits whatever is pending, even a run of one byte short of
// worthwhile. Empty input fails with errs.ErrEmptyInput.
func (PackBitsCompressor) Write(sink Sink, data []byte) (EncodedStrip, error) {
	if len(data) == 0 {
		return EncodedStrip{}, fmt.Errorf("packbits: %w", errs.ErrEmptyInput)
	}

	offset := sink.Offset()
	written := 0

	writeRun := func(length int, b byte) error {
		n, err := sink.Write([]byte{packBitsRunHeader(length), b})
		written += n

		return err
	}
	writeLiteral := func(literal []byte) error {
		n, err := sink.Write([]byte{packBitsLiteralHeader(len(literal))})
		written += n
		if err != nil {
			return err
		}

		n, err = sink.Write(literal)
		written += n

		return err
	}

	var (
		inRun        bool
		runIndex     int // distance into the pending window where a run may start
		bytesPending int // bytes seen but not yet flushed
		pendingIndex int // index of the first pending byte
	)

	// Prime with the first byte.
	lastByte := data[0]
	srcIndex := 1
	bytesPending++

	for srcIndex < len(data) {
		currByte := data[srcIndex]
		srcIndex++
		bytesPending++

		if inRun {
			if currByte != lastByte || bytesPending > packBitsMaxChunk {
				if err := writeRun(bytesPending-1, lastByte); err != nil {
					return EncodedStrip{}, fmt.Errorf("packbits: write run chunk: %w", err)
				}

				bytesPending = 1
				pendingIndex = srcIndex - 1
				runIndex = 0
				inRun = false
			}
		} else {
			switch {
			case bytesPending > packBitsMaxChunk:
				// As much differing data as one chunk can carry; flush 128
				// bytes and keep one pending.
				if err := writeLiteral(data[pendingIndex : pendingIndex+packBitsMaxChunk]); err != nil {
					return EncodedStrip{}, fmt.Errorf("packbits: write literal chunk: %w", err)
				}

				pendingIndex += packBitsMaxChunk
				bytesPending -= packBitsMaxChunk
				runIndex = bytesPending - 1
			case currByte == lastByte:
				if bytesPending-runIndex >= packBitsMinRun || runIndex == 0 {
					// Worthwhile run: flush the differing prefix, then
					// reclassify the tail of the window as the run.
					if runIndex != 0 {
						if err := writeLiteral(data[pendingIndex : pendingIndex+runIndex]); err != nil {
							return EncodedStrip{}, fmt.Errorf("packbits: write literal chunk: %w", err)
						}
					}

					bytesPending -= runIndex
					inRun = true
				}
			default:
				runIndex = bytesPending - 1
			}
		}

		lastByte = currByte
	}

	var err error
	if inRun {
		err = writeRun(bytesPending, lastByte)
	} else {
		err = writeLiteral(data[pendingIndex : pendingIndex+bytesPending])
	}
	if err != nil {
		return EncodedStrip{}, fmt.Errorf("packbits: write final chunk: %w", err)
	}

	return EncodedStrip{Offset: offset, Count: uint64(written)}, nil
}
