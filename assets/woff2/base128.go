/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff2

import (
	"bytes"
	"io"
)

// base128Size returns the number of bytes needed to encode `v` as UIntBase128.
func base128Size(v uint32) int {
	size := 1
	for v >= 0x80 {
		size++
		v >>= 7
	}
	return size
}

// writeBase128 writes `v` as UIntBase128: big endian groups of 7 bits, the high bit set on all but
// the last byte.
func writeBase128(w *bytes.Buffer, v uint32) {
	size := base128Size(v)
	for i := 0; i < size; i++ {
		b := byte(v>>(7*uint(size-1-i))) & 0x7F
		if i < size-1 {
			b |= 0x80
		}
		w.WriteByte(b)
	}
}

// readBase128 reads a UIntBase128 value. At most 5 bytes are consumed, leading zeros and values that
// do not fit 32 bits are rejected.
func readBase128(r io.ByteReader) (uint32, error) {
	var accum uint32
	for i := 0; i < 5; i++ {
		b, err := r.ReadByte()
		if err != nil {
			return 0, ErrTruncated
		}
		if i == 0 && b == 0x80 {
			return 0, errBase128Zero
		}
		if accum&0xFE000000 != 0 {
			return 0, errBase128Overflow
		}
		accum = accum<<7 | uint32(b&0x7F)
		if b&0x80 == 0 {
			return accum, nil
		}
	}
	return 0, errBase128Overflow
}
