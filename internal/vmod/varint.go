package vmod

import "fmt"

// The vmod varint packs 7 bits per byte with a continuation flag in the high
// bit of each of the first three bytes. A fourth byte, if reached, contributes
// all 8 bits with no flag, capping the encoding at 4 bytes.

// maxVarint is the largest encodable value: three 7-bit groups plus one full
// byte at shift 21.
const maxVarint = 1<<29 - 1

// readUvarint decodes one varint from the front of buf and returns the value
// and the number of bytes consumed.
func readUvarint(buf []byte) (int, int, error) {
	var v int
	for i := 0; i < 4; i++ {
		if i >= len(buf) {
			return 0, 0, fmt.Errorf("vmod: truncated varint")
		}
		b := buf[i]
		if i < 3 {
			v |= int(b&0x7f) << (i * 7)
			if b&0x80 == 0 {
				return v, i + 1, nil
			}
		} else {
			v |= int(b) << 21
		}
	}
	return v, 4, nil
}

// appendUvarint encodes v and appends it to dst.
func appendUvarint(dst []byte, v int) ([]byte, error) {
	if v < 0 || v > maxVarint {
		return dst, fmt.Errorf("vmod: value %d out of varint range", v)
	}
	for i := 0; i < 3; i++ {
		b := byte(v & 0x7f)
		v >>= 7
		if v == 0 {
			return append(dst, b), nil
		}
		dst = append(dst, b|0x80)
	}
	// Remaining high bits go into the raw fourth byte.
	return append(dst, byte(v)), nil
}
