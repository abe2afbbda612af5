package format

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/mindQ-GmbH-Co-KG/image-tiff/errs"
)

// OffsetKind selects the container's offset width: classic TIFF stores file
// offsets as 32-bit Longs, BigTIFF as 64-bit Long8s. The two variants differ
// only in offset width and a few header constants, so everything that records
// an offset takes an OffsetKind instead of being generic over the width.
type OffsetKind uint8

const (
	ClassicTiff OffsetKind = iota + 1 // ClassicTiff is the 32-bit offset variant (version 42).
	BigTiff                           // BigTiff is the 64-bit offset variant (version 43).
)

// Header version numbers following the byte-order mark.
const (
	classicVersion uint16 = 42
	bigVersion     uint16 = 43
)

func (k OffsetKind) String() string {
	switch k {
	case ClassicTiff:
		return "ClassicTiff"
	case BigTiff:
		return "BigTiff"
	default:
		return "Unknown"
	}
}

// IsValid reports whether k is a known offset kind.
func (k OffsetKind) IsValid() bool {
	return k == ClassicTiff || k == BigTiff
}

// OffsetSize returns the byte width of a file offset under this kind.
func (k OffsetKind) OffsetSize() int {
	if k == BigTiff {
		return 8
	}

	return 4
}

// OffsetType returns the field type tag used to record offsets and byte
// counts under this kind.
func (k OffsetKind) OffsetType() FieldType {
	if k == BigTiff {
		return TypeLong8
	}

	return TypeLong
}

// Version returns the header version word written after the byte-order mark.
func (k OffsetKind) Version() uint16 {
	if k == BigTiff {
		return bigVersion
	}

	return classicVersion
}

// ConvertOffset validates that a 64-bit byte position is representable at this
// kind's native width and returns it unchanged. Under ClassicTiff a candidate
// above math.MaxUint32 fails with errs.ErrOffsetOverflow; under BigTiff the
// conversion always succeeds. The value is never truncated.
func (k OffsetKind) ConvertOffset(candidate uint64) (uint64, error) {
	if k != BigTiff && candidate > math.MaxUint32 {
		return 0, fmt.Errorf("%w: 0x%X does not fit in 32 bits", errs.ErrOffsetOverflow, candidate)
	}

	return candidate, nil
}

// AppendOffset appends the candidate at this kind's native width in the given
// byte order, after the same range check as ConvertOffset.
func (k OffsetKind) AppendOffset(order binary.AppendByteOrder, dst []byte, candidate uint64) ([]byte, error) {
	if _, err := k.ConvertOffset(candidate); err != nil {
		return dst, err
	}

	if k == BigTiff {
		return order.AppendUint64(dst, candidate), nil
	}

	return order.AppendUint32(dst, uint32(candidate)), nil
}
