package value

import "github.com/mindQ-GmbH-Co-KG/image-tiff/format"

// Field is one directory value ready for the table writer: the field type
// tag, the element count, and the serialized element bytes. For ASCII values
// Count includes the NUL terminator.
type Field struct {
	Type  format.FieldType
	Count uint64
	Data  []byte
}

// Size returns the serialized byte length.
func (f Field) Size() int {
	return len(f.Data)
}

// FitsInline reports whether the serialized value fits in a directory
// entry's value slot instead of needing a pointed-to location. Classic
// entries hold 4 bytes inline, BigTIFF entries 8.
func (f Field) FitsInline(kind format.OffsetKind) bool {
	return len(f.Data) <= kind.OffsetSize()
}

// Rational is an unsigned fraction stored as a 32-bit numerator followed by
// a 32-bit denominator.
type Rational struct {
	Numerator   uint32
	Denominator uint32
}

// SRational is a signed fraction stored as a 32-bit numerator followed by a
// 32-bit denominator.
type SRational struct {
	Numerator   int32
	Denominator int32
}
