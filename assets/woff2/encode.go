/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff2

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/andybalholm/brotli"

	"github.com/creatorplaybook/assettool/common"
)

// Encode serializes `f` as a WOFF2 file.
func Encode(f *Font) ([]byte, error) {
	if f == nil || len(f.Tables) == 0 {
		return nil, ErrNoTables
	}
	if f.Flavor == flavorCollection {
		return nil, ErrCollection
	}

	var (
		dir     bytes.Buffer
		stream  bytes.Buffer
		lengths = make([]uint32, 0, len(f.Tables))
		seen    = map[string]int{}
	)
	for i, t := range f.Tables {
		tag, err := normalizeTag(t.Tag)
		if err != nil {
			return nil, fmt.Errorf("table %d %q: %w", i, t.Tag, err)
		}
		if _, dup := seen[tag]; dup {
			return nil, fmt.Errorf("woff2: duplicate table %q", tag)
		}
		seen[tag] = i

		flags := byte(flagArbitraryTag)
		idx, known := knownTagIndex[tag]
		if known {
			flags = byte(idx)
		}
		if tag == "glyf" || tag == "loca" {
			flags |= nullTransformGlyf << transformShift
		}
		dir.WriteByte(flags)
		if !known {
			dir.WriteString(tag)
		}
		writeBase128(&dir, uint32(len(t.Data)))

		stream.Write(t.Data)
		lengths = append(lengths, uint32(len(t.Data)))
		common.Log.Trace("woff2: table %s flags=0x%02x length=%d", tag, flags, len(t.Data))
	}

	glyf, hasGlyf := seen["glyf"]
	loca, hasLoca := seen["loca"]
	if hasGlyf != hasLoca || (hasGlyf && loca < glyf) {
		return nil, errGlyfLoca
	}

	var compressed bytes.Buffer
	bw := brotli.NewWriterOptions(&compressed, brotli.WriterOptions{
		Quality: brotliQuality,
		LGWin:   brotliWindow,
	})
	if _, err := bw.Write(stream.Bytes()); err != nil {
		return nil, fmt.Errorf("woff2: compress: %w", err)
	}
	if err := bw.Close(); err != nil {
		return nil, fmt.Errorf("woff2: compress: %w", err)
	}

	total := headerSize + dir.Len() + compressed.Len()
	padded := (total + 3) &^ 3

	h := header{
		Signature:           signature,
		Flavor:              f.Flavor,
		Length:              uint32(padded),
		NumTables:           uint16(len(f.Tables)),
		TotalSfntSize:       sfntSize(lengths),
		TotalCompressedSize: uint32(compressed.Len()),
		MajorVersion:        1,
	}

	out := bytes.NewBuffer(make([]byte, 0, padded))
	if err := binary.Write(out, binary.BigEndian, &h); err != nil {
		return nil, err
	}
	out.Write(dir.Bytes())
	out.Write(compressed.Bytes())
	for out.Len() < padded {
		out.WriteByte(0)
	}

	common.Log.Debug("woff2: %d tables, sfnt %d bytes, stream %d -> %d bytes",
		len(f.Tables), h.TotalSfntSize, stream.Len(), compressed.Len())
	return out.Bytes(), nil
}
