package tiff

import (
	"fmt"
	"io"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/compress"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/endian"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/internal/options"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/value"
)

// Writer appends container bytes to an io.Writer and tracks the absolute
// file position of every byte. It is the sink the compression strategies
// write strips into: Offset reports where the next byte lands, which is the
// position the directory later records for the strip.
//
// Position zero is the start of the file, so the destination must be empty
// when it is wrapped.
//
// Writer is not safe for concurrent use.
type Writer struct {
	w      io.Writer
	engine endian.EndianEngine
	pos    uint64
	buf    [8]byte
}

var (
	_ io.Writer     = (*Writer)(nil)
	_ io.ByteWriter = (*Writer)(nil)
	_ compress.Sink = (*Writer)(nil)
)

// Option configures a Writer.
type Option = options.Option[*Writer]

// WithLittleEndian selects "II" byte order. This is the default.
func WithLittleEndian() Option {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetLittleEndianEngine()
	})
}

// WithBigEndian selects "MM" byte order.
func WithBigEndian() Option {
	return options.NoError(func(w *Writer) {
		w.engine = endian.GetBigEndianEngine()
	})
}

// NewWriter wraps w in a position-tracking Writer.
func NewWriter(w io.Writer, opts ...Option) (*Writer, error) {
	tw := &Writer{
		w:      w,
		engine: endian.GetLittleEndianEngine(),
	}

	if err := options.Apply(tw, opts...); err != nil {
		return nil, err
	}

	return tw, nil
}

// Engine returns the byte-order engine the writer serializes with.
func (w *Writer) Engine() endian.EndianEngine {
	return w.engine
}

// Offset returns the absolute file position of the next byte.
func (w *Writer) Offset() uint64 {
	return w.pos
}

// Write appends p and advances the position by however many bytes the
// underlying writer accepted.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	w.pos += uint64(n)

	return n, err
}

// WriteByte appends a single byte.
func (w *Writer) WriteByte(c byte) error {
	w.buf[0] = c
	_, err := w.Write(w.buf[:1])

	return err
}

// WriteU16 appends v in the writer's byte order.
func (w *Writer) WriteU16(v uint16) error {
	w.engine.PutUint16(w.buf[:2], v)
	_, err := w.Write(w.buf[:2])

	return err
}

// WriteU32 appends v in the writer's byte order.
func (w *Writer) WriteU32(v uint32) error {
	w.engine.PutUint32(w.buf[:4], v)
	_, err := w.Write(w.buf[:4])

	return err
}

// WriteU64 appends v in the writer's byte order.
func (w *Writer) WriteU64(v uint64) error {
	w.engine.PutUint64(w.buf[:8], v)
	_, err := w.Write(w.buf[:8])

	return err
}

// WriteField appends a field's serialized payload. The payload bytes carry
// the byte order of the value.Encoder that built them; pairing a Writer and
// an encoder with different engines produces a corrupt file.
func (w *Writer) WriteField(f value.Field) error {
	_, err := w.Write(f.Data)

	return err
}

// PadWordBoundary appends one zero byte when the position is odd.
// Directories and field payloads must begin on even offsets.
func (w *Writer) PadWordBoundary() error {
	if w.pos%2 == 0 {
		return nil
	}

	return w.WriteByte(0)
}

// WriteHeader appends the container preamble: the byte-order mark and the
// version word, plus the BigTIFF offset-size words when kind is
// format.BigTiff. The classic preamble is 4 bytes, the BigTIFF preamble 8.
func (w *Writer) WriteHeader(kind format.OffsetKind) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %d", errs.ErrInvalidOffsetKind, kind)
	}

	mark := endian.Mark(w.engine)
	if _, err := w.Write(mark[:]); err != nil {
		return fmt.Errorf("write byte order mark: %w", err)
	}

	if err := w.WriteU16(kind.Version()); err != nil {
		return fmt.Errorf("write version: %w", err)
	}

	if kind == format.BigTiff {
		// offset byte width, then the reserved zero word
		if err := w.WriteU16(8); err != nil {
			return fmt.Errorf("write offset size: %w", err)
		}
		if err := w.WriteU16(0); err != nil {
			return fmt.Errorf("write reserved word: %w", err)
		}
	}

	return nil
}
