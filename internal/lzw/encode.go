// Package lzw implements the encoder side of the LZW variant used by
// tag-directory image containers. It differs from the GIF flavor written by
// the standard library's compress/lzw in two ways: codes are packed most
// significant bit first, and the code width increases one code earlier so
// that a decoder whose string table lags the encoder by one entry reads
// every code at the width it was written.
//
// Code widths grow from 9 to 12 bits. The stream opens with a clear code,
// resets the table before code 4095 would be assigned, and ends with the
// end-of-information code, so every encoded block is independently
// decodable.
package lzw

import "sync"

const (
	clearCode = 256
	eoiCode   = 257
	firstCode = 258

	minWidth = 9
	maxWidth = 12

	// tableLimit is the first code value never assigned; reaching it forces
	// a clear code and a table reset.
	tableLimit = 1<<maxWidth - 1

	tableSlots = 1 << 13
	tableMask  = tableSlots - 1
)

// encoder holds the string table and the bit accumulator for one Encode
// call. Instances are pooled; the table occupancy markers are cleared at the
// start of every call.
type encoder struct {
	dst   []byte
	acc   uint32
	nBits uint
	width uint
	next  uint32

	keys  [tableSlots]uint32
	codes [tableSlots]uint16
}

var encoderPool = sync.Pool{
	New: func() any {
		return new(encoder)
	},
}

// Encode appends the LZW encoding of src to dst and returns the extended
// slice.
func Encode(dst, src []byte) []byte {
	e, _ := encoderPool.Get().(*encoder)
	dst = e.encode(dst, src)
	e.dst = nil
	encoderPool.Put(e)

	return dst
}

// MaxEncodedLen returns an upper bound on the encoded size of n source
// bytes. Incompressible input costs at most maxWidth bits per symbol, plus
// the control codes framing the stream and one clear code per table reset.
func MaxEncodedLen(n int) int {
	codes := n + 3 + n/(tableLimit-firstCode)
	return (codes*maxWidth + 7) / 8
}

func (e *encoder) encode(dst, src []byte) []byte {
	e.dst = dst
	e.acc = 0
	e.nBits = 0
	e.width = minWidth
	e.next = firstCode
	clear(e.codes[:])

	e.emit(clearCode)
	if len(src) == 0 {
		e.emit(eoiCode)
		e.flush()

		return e.dst
	}

	prev := uint32(src[0])
	for _, c := range src[1:] {
		key := prev<<8 | uint32(c)
		code, slot := e.find(key)
		if code != 0 {
			prev = uint32(code)
			continue
		}

		e.emit(prev)
		e.keys[slot] = key
		e.codes[slot] = uint16(e.next)
		e.next++
		prev = uint32(c)

		if e.next == tableLimit {
			e.emit(clearCode)
			clear(e.codes[:])
			e.next = firstCode
			e.width = minWidth
		} else if e.next > 1<<e.width-1 {
			// One code earlier than compress/lzw: the decoder's table is one
			// entry behind, so it widens after assigning entry 510, not 511.
			e.width++
		}
	}

	e.emit(prev)
	e.emit(eoiCode)
	e.flush()

	return e.dst
}

// find probes the open-addressed table for key and returns the stored code
// along with the slot it lives in, or zero and the first free slot. A zero
// code marks a free slot since assigned codes start at firstCode.
func (e *encoder) find(key uint32) (uint16, int) {
	slot := int(key * 0x9E3779B1 >> 19)
	for {
		code := e.codes[slot]
		if code == 0 || e.keys[slot] == key {
			return code, slot
		}

		slot = (slot + 1) & tableMask
	}
}

func (e *encoder) emit(code uint32) {
	e.acc = e.acc<<e.width | code
	e.nBits += e.width
	for e.nBits >= 8 {
		e.nBits -= 8
		e.dst = append(e.dst, byte(e.acc>>e.nBits))
	}
}

// flush writes any partial trailing byte, left aligned and zero padded.
func (e *encoder) flush() {
	if e.nBits > 0 {
		e.dst = append(e.dst, byte(e.acc<<(8-e.nBits)))
		e.nBits = 0
	}
}
