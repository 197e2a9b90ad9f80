/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"encoding/binary"
	"fmt"
	"io"
	"sort"

	"github.com/creatorplaybook/assettool/common"
)

// Table is the raw data of a single sfnt table identified by its 4 byte tag (e.g. "cvt ").
type Table struct {
	Tag  string
	Data []byte
}

// Write assembles an sfnt font of `flavor` from `tables` and writes it to `w`.
// The tables are written sorted by tag, 4-byte aligned, with fresh table checksums and the head
// checksumAdjustment recomputed over the whole font.
func Write(w io.Writer, flavor uint32, tables []Table) error {
	if len(tables) == 0 {
		return errRequiredField
	}

	sorted := make([]Table, len(tables))
	copy(sorted, tables)
	sort.SliceStable(sorted, func(i, j int) bool {
		ti, tj := makeTag(sorted[i].Tag), makeTag(sorted[j].Tag)
		return string(ti[:]) < string(tj[:])
	})

	f := &font{
		ot:   newOffsetTable(flavor, len(sorted)),
		trec: &tableRecords{trMap: map[string]tableRecord{}},
	}

	// Lay out the table data and build the records.
	offset := 12 + 16*len(sorted)
	headOffset := -1
	for i := range sorted {
		t := &sorted[i]
		tt := makeTag(t.Tag)
		if _, dup := f.trec.trMap[tt.String()]; dup {
			return fmt.Errorf("duplicate table %q", t.Tag)
		}

		data := t.Data
		if tt.String() == "head" {
			if len(data) < 12 {
				return fmt.Errorf("head too short: %w", errRangeCheck)
			}
			data = append([]byte(nil), data...)
			binary.BigEndian.PutUint32(data[8:], 0)
			t.Data = data
			headOffset = offset
		}

		rec := tableRecord{
			tableTag: tt,
			checksum: calcChecksum(data),
			offset:   offset32(offset),
			length:   uint32(len(data)),
		}
		f.trec.list = append(f.trec.list, rec)
		f.trec.trMap[tt.String()] = rec
		offset += align4(len(data))
	}

	bw := newByteWriter(w)
	err := f.writeOffsetTable(bw)
	if err != nil {
		return err
	}
	err = f.writeTableRecords(bw)
	if err != nil {
		return err
	}
	for _, t := range sorted {
		err = bw.writeSlice(t.Data)
		if err != nil {
			return err
		}
		bw.pad()
	}

	if headOffset >= 0 {
		adjustment := checksumMagic - bw.checksum()
		binary.BigEndian.PutUint32(bw.buffer.Bytes()[headOffset+8:], adjustment)
	} else {
		common.Log.Debug("No head table, checksumAdjustment not set")
	}

	common.Log.Trace("Assembled sfnt: %d tables, %d bytes", len(sorted), bw.bufferedLen())
	return bw.flush()
}
