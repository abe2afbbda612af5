// Package value serializes native Go scalars and arrays into directory field
// records: a type tag, an element count, and the element bytes laid out in
// the container's declared byte order.
//
// An Encoder is bound to one endian.EndianEngine at construction, matching
// the byte-order mark in the file header. Every constructor returns a Field
// whose Data length equals Type.Size() times Count. The only fallible
// mappings are ASCII (7-bit bytes, no embedded NUL, one appended terminator)
// and Offset/Offsets (range-checked against the container's offset width).
package value
