// Package codec reads and writes the binary NBT wire format.
//
// A document is a single named root tag, which must be a compound:
//
//	0x0a  u16 name length  name bytes  compound payload
//
// All integers and floats are big-endian. Strings are Java modified
// UTF-8 with an unsigned 16-bit byte length. A compound payload is a
// sequence of (kind byte, name, payload) entries closed by a 0x00 byte;
// a list payload is an element kind byte, a signed 32-bit count and the
// element payloads. Byte and int arrays carry a signed 32-bit length.
//
// Files are usually wrapped in a single gzip member; EncodeCompressed
// and DecodeCompressed handle that envelope and DecodeAuto accepts
// either form.
//
// Decoding never returns a partial tree: any error aborts the whole
// document.
package codec
