package codec

import (
	"unicode/utf16"
	"unicode/utf8"
)

const maxStringLen = 1<<16 - 1

// mutf8Len returns the modified UTF-8 length of s.
func mutf8Len(s string) int {
	n := 0
	for _, r := range s {
		switch {
		case r == 0:
			n += 2
		case r < 0x80:
			n++
		case r < 0x800:
			n += 2
		case r < 0x10000:
			n += 3
		default:
			n += 6
		}
	}
	return n
}

// appendMUTF8 encodes s the way java.io.DataOutput.writeUTF does: NUL
// takes two bytes and runes outside the BMP become a surrogate pair of
// three-byte sequences.
func appendMUTF8(dst []byte, s string) []byte {
	for _, r := range s {
		switch {
		case r == 0:
			dst = append(dst, 0xc0, 0x80)
		case r < 0x80:
			dst = append(dst, byte(r))
		case r < 0x800:
			dst = append(dst, 0xc0|byte(r>>6), 0x80|byte(r&0x3f))
		case r < 0x10000:
			dst = append3(dst, r)
		default:
			hi, lo := utf16.EncodeRune(r)
			dst = append3(dst, hi)
			dst = append3(dst, lo)
		}
	}
	return dst
}

func append3(dst []byte, r rune) []byte {
	return append(dst, 0xe0|byte(r>>12), 0x80|byte((r>>6)&0x3f), 0x80|byte(r&0x3f))
}

// decodeMUTF8 is the inverse of appendMUTF8. Unpaired surrogates decode
// to U+FFFD.
func decodeMUTF8(b []byte) (string, bool) {
	ascii := true
	for _, c := range b {
		if c >= 0x80 {
			ascii = false
			break
		}
	}
	if ascii {
		return string(b), true
	}
	units := make([]uint16, 0, len(b))
	for i := 0; i < len(b); {
		c := b[i]
		switch {
		case c < 0x80:
			units = append(units, uint16(c))
			i++
		case c&0xe0 == 0xc0:
			if i+1 >= len(b) || b[i+1]&0xc0 != 0x80 {
				return "", false
			}
			units = append(units, uint16(c&0x1f)<<6|uint16(b[i+1]&0x3f))
			i += 2
		case c&0xf0 == 0xe0:
			if i+2 >= len(b) || b[i+1]&0xc0 != 0x80 || b[i+2]&0xc0 != 0x80 {
				return "", false
			}
			units = append(units, uint16(c&0x0f)<<12|uint16(b[i+1]&0x3f)<<6|uint16(b[i+2]&0x3f))
			i += 3
		default:
			return "", false
		}
	}
	runes := utf16.Decode(units)
	buf := make([]byte, 0, len(b))
	for _, r := range runes {
		buf = utf8.AppendRune(buf, r)
	}
	return string(buf), true
}
