/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff2

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
)

type dirEntry struct {
	tag     string
	origLen uint32
}

// Decode parses a WOFF2 file whose tables are all stored with the null transform.
func Decode(data []byte) (*Font, error) {
	if len(data) < headerSize {
		return nil, ErrTruncated
	}
	var h header
	if err := binary.Read(bytes.NewReader(data[:headerSize]), binary.BigEndian, &h); err != nil {
		return nil, err
	}
	if h.Signature != signature {
		return nil, ErrBadSignature
	}
	if h.Flavor == flavorCollection {
		return nil, ErrCollection
	}
	if int(h.Length) != len(data) {
		return nil, fmt.Errorf("%w: length %d, have %d bytes", ErrCorrupt, h.Length, len(data))
	}
	if h.NumTables == 0 {
		return nil, ErrNoTables
	}
	if h.Reserved != 0 {
		return nil, fmt.Errorf("%w: reserved field %d", ErrCorrupt, h.Reserved)
	}

	r := bytes.NewReader(data[headerSize:])
	entries, err := readDirectory(r, int(h.NumTables))
	if err != nil {
		return nil, err
	}

	start := len(data) - r.Len()
	end := start + int(h.TotalCompressedSize)
	if end > len(data) {
		return nil, ErrTruncated
	}

	var (
		want    uint64
		lengths = make([]uint32, len(entries))
	)
	for i, e := range entries {
		want += uint64(e.origLen)
		lengths[i] = e.origLen
	}
	if sfntSize(lengths) != h.TotalSfntSize {
		return nil, fmt.Errorf("%w: totalSfntSize %d", ErrCorrupt, h.TotalSfntSize)
	}

	br := brotli.NewReader(bytes.NewReader(data[start:end]))
	stream, err := io.ReadAll(io.LimitReader(br, int64(want)+1))
	if err != nil {
		return nil, fmt.Errorf("woff2: decompress: %w", err)
	}
	if uint64(len(stream)) != want {
		return nil, fmt.Errorf("%w: table stream %d bytes, want %d", ErrCorrupt, len(stream), want)
	}

	f := &Font{Flavor: h.Flavor, Tables: make([]Table, len(entries))}
	var off uint32
	for i, e := range entries {
		f.Tables[i] = Table{Tag: e.tag, Data: stream[off : off+e.origLen]}
		off += e.origLen
	}
	return f, nil
}

func readDirectory(r *bytes.Reader, n int) ([]dirEntry, error) {
	entries := make([]dirEntry, 0, n)
	for i := 0; i < n; i++ {
		flags, err := r.ReadByte()
		if err != nil {
			return nil, ErrTruncated
		}
		var tag string
		if idx := flags & flagTagMask; idx == flagArbitraryTag {
			var b [4]byte
			if _, err := io.ReadFull(r, b[:]); err != nil {
				return nil, ErrTruncated
			}
			tag = string(b[:])
		} else {
			tag = knownTags[idx]
		}
		origLen, err := readBase128(r)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", tag, err)
		}
		if !hasNullTransform(tag, flags>>transformShift) {
			return nil, fmt.Errorf("%w: table %s version %d", ErrUnsupportedTransform, tag, flags>>transformShift)
		}
		entries = append(entries, dirEntry{tag: tag, origLen: origLen})
	}
	return entries, nil
}
