// Package endian provides the byte-order engines that serialize multi-byte
// values in the container's declared byte order.
//
// A TIFF file declares its byte order once, in the first two header bytes:
// "II" (0x4949) for little-endian, "MM" (0x4D4D) for big-endian. Every
// multi-byte value in the file (header words, directory entries, field
// values) follows that declaration, so encoders are handed one EndianEngine
// at construction and use it for the lifetime of the file.
//
// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary. The append form avoids the temporary buffer that PutUintXX
// requires:
//
//	buf = engine.AppendUint32(buf, value)
//
// Both engines are immutable and safe for concurrent use.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface. binary.LittleEndian and binary.BigEndian satisfy
// it directly.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Byte-order marks as they appear in the first two header bytes.
const (
	LittleEndianMark uint16 = 0x4949 // "II"
	BigEndianMark    uint16 = 0x4D4D // "MM"
)

// GetLittleEndianEngine returns the engine for "II" files.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the engine for "MM" files.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// IsLittleEndian reports whether the engine serializes least significant byte
// first.
func IsLittleEndian(engine EndianEngine) bool {
	return engine == binary.LittleEndian
}

// Mark returns the two header bytes declaring the engine's byte order:
// "II" for little-endian, "MM" for big-endian. The mark bytes are identical
// twins, so they read the same under either order.
func Mark(engine EndianEngine) [2]byte {
	if IsLittleEndian(engine) {
		return [2]byte{0x49, 0x49}
	}

	return [2]byte{0x4D, 0x4D}
}
