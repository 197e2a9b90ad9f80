/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/creatorplaybook/assettool/common"
)

// byteWriter encapsulates io.Writer and provides methods to write binary data as fit for truetype fonts.
// Writes are buffered until flushed. Provides methods to calculate checksum of the current buffer.
type byteWriter struct {
	w io.Writer

	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	_, err := w.w.Write(w.buffer.Bytes())
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// bufferedLen returns the length of the current buffer.
func (w *byteWriter) bufferedLen() int {
	return w.buffer.Len()
}

// checksum returns the checksum of the current buffer.
func (w *byteWriter) checksum() uint32 {
	return calcChecksum(w.buffer.Bytes())
}

// pad writes zero bytes until the buffer length is a multiple of 4.
func (w *byteWriter) pad() {
	for w.buffer.Len()%4 != 0 {
		w.buffer.WriteByte(0)
	}
}

// calcChecksum returns the sum of `data` as big endian uint32 values. A trailing partial value is
// padded with zeros.
func calcChecksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

// writeSlice appends raw bytes to the buffer.
func (w *byteWriter) writeSlice(b []byte) error {
	_, err := w.buffer.Write(b)
	return err
}

// Write a series of values to `w`.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		var err error
		switch t := f.(type) {
		case uint8, uint16, int16, uint32, int32, int64:
			err = binary.Write(&w.buffer, binary.BigEndian, t)
		case fixed, fword, ufword, longdatetime, offset16, offset32, tag:
			err = binary.Write(&w.buffer, binary.BigEndian, t)
		case []uint8:
			err = w.writeSlice(t)
		default:
			common.Log.Debug("Write type check error: %T", t)
			return errTypeCheck
		}
		if err != nil {
			return err
		}
	}

	return nil
}
