package value

import (
	"fmt"
	"math"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/endian"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
	"github.com/mindQ-GmbH-Co-KG/image-tiff/format"
)

// Encoder maps native values to Fields. The byte order is fixed at
// construction and matches the container's declared order for the whole
// file.
type Encoder struct {
	engine endian.EndianEngine
}

// NewEncoder creates an Encoder bound to the given endian engine.
func NewEncoder(engine endian.EndianEngine) *Encoder {
	return &Encoder{engine: engine}
}

// Byte encodes an 8-bit unsigned integer.
func (e *Encoder) Byte(v uint8) Field {
	return Field{Type: format.TypeByte, Count: 1, Data: []byte{v}}
}

// Bytes encodes a slice of 8-bit unsigned integers.
func (e *Encoder) Bytes(vs []uint8) Field {
	data := make([]byte, len(vs))
	copy(data, vs)

	return Field{Type: format.TypeByte, Count: uint64(len(vs)), Data: data}
}

// ASCII encodes a NUL-terminated 7-bit string; Count includes the
// terminator. A byte outside the ASCII range or an embedded NUL fails with
// errs.ErrInvalidStringValue.
func (e *Encoder) ASCII(s string) (Field, error) {
	for i := 0; i < len(s); i++ {
		if s[i] == 0 || s[i] > 0x7F {
			return Field{}, fmt.Errorf("%w: byte 0x%02X at index %d", errs.ErrInvalidStringValue, s[i], i)
		}
	}

	data := make([]byte, 0, len(s)+1)
	data = append(data, s...)
	data = append(data, 0)

	return Field{Type: format.TypeASCII, Count: uint64(len(s)) + 1, Data: data}, nil
}

// Short encodes a 16-bit unsigned integer.
func (e *Encoder) Short(v uint16) Field {
	return Field{Type: format.TypeShort, Count: 1, Data: e.engine.AppendUint16(nil, v)}
}

// Shorts encodes a slice of 16-bit unsigned integers.
func (e *Encoder) Shorts(vs []uint16) Field {
	data := make([]byte, 0, 2*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint16(data, v)
	}

	return Field{Type: format.TypeShort, Count: uint64(len(vs)), Data: data}
}

// Long encodes a 32-bit unsigned integer.
func (e *Encoder) Long(v uint32) Field {
	return Field{Type: format.TypeLong, Count: 1, Data: e.engine.AppendUint32(nil, v)}
}

// Longs encodes a slice of 32-bit unsigned integers.
func (e *Encoder) Longs(vs []uint32) Field {
	data := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint32(data, v)
	}

	return Field{Type: format.TypeLong, Count: uint64(len(vs)), Data: data}
}

// Rational encodes an unsigned fraction as two Longs, numerator first.
func (e *Encoder) Rational(v Rational) Field {
	data := e.engine.AppendUint32(nil, v.Numerator)
	data = e.engine.AppendUint32(data, v.Denominator)

	return Field{Type: format.TypeRational, Count: 1, Data: data}
}

// Rationals encodes a slice of unsigned fractions.
func (e *Encoder) Rationals(vs []Rational) Field {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint32(data, v.Numerator)
		data = e.engine.AppendUint32(data, v.Denominator)
	}

	return Field{Type: format.TypeRational, Count: uint64(len(vs)), Data: data}
}

// SByte encodes an 8-bit signed integer.
func (e *Encoder) SByte(v int8) Field {
	return Field{Type: format.TypeSByte, Count: 1, Data: []byte{byte(v)}}
}

// SBytes encodes a slice of 8-bit signed integers.
func (e *Encoder) SBytes(vs []int8) Field {
	data := make([]byte, len(vs))
	for i, v := range vs {
		data[i] = byte(v)
	}

	return Field{Type: format.TypeSByte, Count: uint64(len(vs)), Data: data}
}

// Undefined encodes raw bytes whose interpretation is tag specific.
func (e *Encoder) Undefined(vs []byte) Field {
	data := make([]byte, len(vs))
	copy(data, vs)

	return Field{Type: format.TypeUndefined, Count: uint64(len(vs)), Data: data}
}

// SShort encodes a 16-bit signed integer.
func (e *Encoder) SShort(v int16) Field {
	return Field{Type: format.TypeSShort, Count: 1, Data: e.engine.AppendUint16(nil, uint16(v))}
}

// SShorts encodes a slice of 16-bit signed integers.
func (e *Encoder) SShorts(vs []int16) Field {
	data := make([]byte, 0, 2*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint16(data, uint16(v))
	}

	return Field{Type: format.TypeSShort, Count: uint64(len(vs)), Data: data}
}

// SLong encodes a 32-bit signed integer.
func (e *Encoder) SLong(v int32) Field {
	return Field{Type: format.TypeSLong, Count: 1, Data: e.engine.AppendUint32(nil, uint32(v))}
}

// SLongs encodes a slice of 32-bit signed integers.
func (e *Encoder) SLongs(vs []int32) Field {
	data := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint32(data, uint32(v))
	}

	return Field{Type: format.TypeSLong, Count: uint64(len(vs)), Data: data}
}

// SRational encodes a signed fraction as two SLongs, numerator first.
func (e *Encoder) SRational(v SRational) Field {
	data := e.engine.AppendUint32(nil, uint32(v.Numerator))
	data = e.engine.AppendUint32(data, uint32(v.Denominator))

	return Field{Type: format.TypeSRational, Count: 1, Data: data}
}

// SRationals encodes a slice of signed fractions.
func (e *Encoder) SRationals(vs []SRational) Field {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint32(data, uint32(v.Numerator))
		data = e.engine.AppendUint32(data, uint32(v.Denominator))
	}

	return Field{Type: format.TypeSRational, Count: uint64(len(vs)), Data: data}
}

// Float encodes a 32-bit IEEE float.
func (e *Encoder) Float(v float32) Field {
	return Field{Type: format.TypeFloat, Count: 1, Data: e.engine.AppendUint32(nil, math.Float32bits(v))}
}

// Floats encodes a slice of 32-bit IEEE floats.
func (e *Encoder) Floats(vs []float32) Field {
	data := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint32(data, math.Float32bits(v))
	}

	return Field{Type: format.TypeFloat, Count: uint64(len(vs)), Data: data}
}

// Double encodes a 64-bit IEEE float.
func (e *Encoder) Double(v float64) Field {
	return Field{Type: format.TypeDouble, Count: 1, Data: e.engine.AppendUint64(nil, math.Float64bits(v))}
}

// Doubles encodes a slice of 64-bit IEEE floats.
func (e *Encoder) Doubles(vs []float64) Field {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint64(data, math.Float64bits(v))
	}

	return Field{Type: format.TypeDouble, Count: uint64(len(vs)), Data: data}
}

// Ifd encodes a sub-directory offset stored as a Long.
func (e *Encoder) Ifd(v uint32) Field {
	return Field{Type: format.TypeIfd, Count: 1, Data: e.engine.AppendUint32(nil, v)}
}

// Ifds encodes a slice of sub-directory offsets stored as Longs.
func (e *Encoder) Ifds(vs []uint32) Field {
	data := make([]byte, 0, 4*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint32(data, v)
	}

	return Field{Type: format.TypeIfd, Count: uint64(len(vs)), Data: data}
}

// Long8 encodes a 64-bit unsigned integer (BigTIFF).
func (e *Encoder) Long8(v uint64) Field {
	return Field{Type: format.TypeLong8, Count: 1, Data: e.engine.AppendUint64(nil, v)}
}

// Long8s encodes a slice of 64-bit unsigned integers (BigTIFF).
func (e *Encoder) Long8s(vs []uint64) Field {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint64(data, v)
	}

	return Field{Type: format.TypeLong8, Count: uint64(len(vs)), Data: data}
}

// SLong8 encodes a 64-bit signed integer (BigTIFF).
func (e *Encoder) SLong8(v int64) Field {
	return Field{Type: format.TypeSLong8, Count: 1, Data: e.engine.AppendUint64(nil, uint64(v))}
}

// SLong8s encodes a slice of 64-bit signed integers (BigTIFF).
func (e *Encoder) SLong8s(vs []int64) Field {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint64(data, uint64(v))
	}

	return Field{Type: format.TypeSLong8, Count: uint64(len(vs)), Data: data}
}

// Ifd8 encodes a sub-directory offset stored as a Long8 (BigTIFF).
func (e *Encoder) Ifd8(v uint64) Field {
	return Field{Type: format.TypeIfd8, Count: 1, Data: e.engine.AppendUint64(nil, v)}
}

// Ifd8s encodes a slice of sub-directory offsets stored as Long8s (BigTIFF).
func (e *Encoder) Ifd8s(vs []uint64) Field {
	data := make([]byte, 0, 8*len(vs))
	for _, v := range vs {
		data = e.engine.AppendUint64(data, v)
	}

	return Field{Type: format.TypeIfd8, Count: uint64(len(vs)), Data: data}
}

// Offset encodes a file offset at the container's native width. Under
// ClassicTiff a candidate above the 32-bit range fails with
// errs.ErrOffsetOverflow; the value is never truncated.
func (e *Encoder) Offset(kind format.OffsetKind, v uint64) (Field, error) {
	data, err := kind.AppendOffset(e.engine, nil, v)
	if err != nil {
		return Field{}, err
	}

	return Field{Type: kind.OffsetType(), Count: 1, Data: data}, nil
}

// Offsets encodes a strip offset or byte count array at the container's
// native width, failing on the first value out of range.
func (e *Encoder) Offsets(kind format.OffsetKind, vs []uint64) (Field, error) {
	data := make([]byte, 0, kind.OffsetSize()*len(vs))
	for _, v := range vs {
		var err error
		data, err = kind.AppendOffset(e.engine, data, v)
		if err != nil {
			return Field{}, err
		}
	}

	return Field{Type: kind.OffsetType(), Count: uint64(len(vs)), Data: data}, nil
}
