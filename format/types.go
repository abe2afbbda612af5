// Package format defines the on-disk enumerations of the TIFF container: field
// type tags, compression method tags, and the offset-width policy shared by the
// classic and BigTIFF variants.
package format

type (
	FieldType       uint16
	CompressionType uint16
)

// Field type tags as stored in a directory entry. The first twelve are the
// TIFF 6.0 set; Ifd is the SubIFD extension; Long8, SLong8 and Ifd8 exist only
// in BigTIFF files.
const (
	TypeByte      FieldType = 1  // 8-bit unsigned integer
	TypeASCII     FieldType = 2  // 7-bit ASCII bytes, NUL-terminated
	TypeShort     FieldType = 3  // 16-bit unsigned integer
	TypeLong      FieldType = 4  // 32-bit unsigned integer
	TypeRational  FieldType = 5  // two Longs: numerator, denominator
	TypeSByte     FieldType = 6  // 8-bit signed integer
	TypeUndefined FieldType = 7  // raw bytes, interpretation tag-specific
	TypeSShort    FieldType = 8  // 16-bit signed integer
	TypeSLong     FieldType = 9  // 32-bit signed integer
	TypeSRational FieldType = 10 // two SLongs: numerator, denominator
	TypeFloat     FieldType = 11 // 32-bit IEEE float
	TypeDouble    FieldType = 12 // 64-bit IEEE float
	TypeIfd       FieldType = 13 // Long holding a sub-directory offset
	TypeLong8     FieldType = 16 // 64-bit unsigned integer (BigTIFF)
	TypeSLong8    FieldType = 17 // 64-bit signed integer (BigTIFF)
	TypeIfd8      FieldType = 18 // Long8 holding a sub-directory offset (BigTIFF)
)

// Compression method tags as stored in the Compression directory field.
// Every registered tag a writer may encounter is listed; SupportedForEncoding
// reports the subset this module can produce.
const (
	CompressionNone       CompressionType = 1     // CompressionNone stores strips as-is.
	CompressionCCITTRLE   CompressionType = 2     // CompressionCCITTRLE is CCITT modified Huffman RLE.
	CompressionGroup3Fax  CompressionType = 3     // CompressionGroup3Fax is CCITT T.4 bi-level encoding.
	CompressionGroup4Fax  CompressionType = 4     // CompressionGroup4Fax is CCITT T.6 bi-level encoding.
	CompressionLZW        CompressionType = 5     // CompressionLZW is the TIFF variant of LZW.
	CompressionOldJPEG    CompressionType = 6     // CompressionOldJPEG is the withdrawn TIFF 6.0 JPEG scheme.
	CompressionJPEG       CompressionType = 7     // CompressionJPEG is JPEG per TTN2.
	CompressionDeflate    CompressionType = 8     // CompressionDeflate is a zlib stream (Adobe tag).
	CompressionPackBits   CompressionType = 32773 // CompressionPackBits is byte-oriented run-length packing.
	CompressionOldDeflate CompressionType = 32946 // CompressionOldDeflate is the older PKZIP-style Deflate tag.
	CompressionZstd       CompressionType = 50000 // CompressionZstd is the registered Zstandard extension.
)

func (t FieldType) String() string {
	switch t {
	case TypeByte:
		return "Byte"
	case TypeASCII:
		return "ASCII"
	case TypeShort:
		return "Short"
	case TypeLong:
		return "Long"
	case TypeRational:
		return "Rational"
	case TypeSByte:
		return "SByte"
	case TypeUndefined:
		return "Undefined"
	case TypeSShort:
		return "SShort"
	case TypeSLong:
		return "SLong"
	case TypeSRational:
		return "SRational"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeIfd:
		return "Ifd"
	case TypeLong8:
		return "Long8"
	case TypeSLong8:
		return "SLong8"
	case TypeIfd8:
		return "Ifd8"
	default:
		return "Unknown"
	}
}

// Size returns the byte width of a single element of this type, or 0 for an
// unknown type tag.
func (t FieldType) Size() int {
	switch t {
	case TypeByte, TypeASCII, TypeSByte, TypeUndefined:
		return 1
	case TypeShort, TypeSShort:
		return 2
	case TypeLong, TypeSLong, TypeFloat, TypeIfd:
		return 4
	case TypeRational, TypeSRational, TypeDouble, TypeLong8, TypeSLong8, TypeIfd8:
		return 8
	default:
		return 0
	}
}

// IsValid reports whether t is one of the known field type tags.
func (t FieldType) IsValid() bool {
	return t.Size() != 0
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionCCITTRLE:
		return "CCITTRLE"
	case CompressionGroup3Fax:
		return "Group3Fax"
	case CompressionGroup4Fax:
		return "Group4Fax"
	case CompressionLZW:
		return "LZW"
	case CompressionOldJPEG:
		return "OldJPEG"
	case CompressionJPEG:
		return "JPEG"
	case CompressionDeflate:
		return "Deflate"
	case CompressionPackBits:
		return "PackBits"
	case CompressionOldDeflate:
		return "OldDeflate"
	case CompressionZstd:
		return "Zstd"
	default:
		return "Unknown"
	}
}

// SupportedForEncoding reports whether this module can produce strips with the
// given method. The CCITT and JPEG families need bit-tables and quantization
// machinery that live outside this module.
func (c CompressionType) SupportedForEncoding() bool {
	switch c {
	case CompressionNone, CompressionLZW, CompressionDeflate, CompressionPackBits, CompressionZstd:
		return true
	default:
		return false
	}
}
