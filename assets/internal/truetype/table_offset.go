/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "math/bits"

type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

// newOffsetTable returns the offset table for a font with `numTables` tables, with the binary search
// fields filled in.
func newOffsetTable(sfntVersion uint32, numTables int) *offsetTable {
	entrySelector := 0
	if numTables > 0 {
		entrySelector = bits.Len(uint(numTables)) - 1
	}
	searchRange := 16 << uint(entrySelector)
	return &offsetTable{
		sfntVersion:   sfntVersion,
		numTables:     uint16(numTables),
		searchRange:   uint16(searchRange),
		entrySelector: uint16(entrySelector),
		rangeShift:    uint16(numTables*16 - searchRange),
	}
}

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange)
	if err != nil {
		return nil, err
	}

	err = r.read(&ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	return ot, nil
}

func (f *font) writeOffsetTable(w *byteWriter) error {
	if f.ot == nil {
		return errRequiredField
	}
	return w.write(f.ot.sfntVersion, f.ot.numTables, f.ot.searchRange, f.ot.entrySelector, f.ot.rangeShift)
}
