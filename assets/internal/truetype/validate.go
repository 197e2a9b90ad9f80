/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/creatorplaybook/assettool/common"
)

// validate font data model `f` in `r`. Checks if required tables are present, whether the table
// records are within the file and whether table checksums are correct.
func (f *font) validate(r *byteReader) error {
	if f.trec == nil {
		common.Log.Debug("Table records missing")
		return errRequiredField
	}
	if f.ot == nil {
		common.Log.Debug("Offsets table missing")
		return errRequiredField
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return errRequiredField
	}

	err := r.Seek(0)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r.reader)
	if err != nil {
		return err
	}
	data := buf.Bytes()

	headRec, ok := f.trec.trMap["head"]
	if !ok {
		common.Log.Debug("head not set")
		return errRequiredField
	}

	// All records must lie within the data before any table is checksummed.
	for _, tr := range f.trec.list {
		if end := int64(tr.offset) + int64(tr.length); end > int64(len(data)) {
			common.Log.Debug("Table %s outside font data (%d > %d)", tr.tableTag, end, len(data))
			return errRangeCheck
		}
	}

	// Validate each table.
	common.Log.Debug("Validating font tables")
	for _, tr := range f.trec.list {
		start := int(tr.offset)
		b := make([]byte, tr.length)
		copy(b, data[start:start+int(tr.length)])
		if tr.tableTag.String() == "head" {
			// Set the checksumAdjustment to 0 so that head checksum is valid.
			if len(b) < 12 {
				return fmt.Errorf("head too short: %w", errRangeCheck)
			}
			b[8], b[9], b[10], b[11] = 0, 0, 0, 0
		}

		checksum := calcChecksum(b)
		if tr.checksum != checksum {
			common.Log.Debug("Invalid checksum for %s (%d != %d)", tr.tableTag, checksum, tr.checksum)
			return fmt.Errorf("%w: table %s", ErrChecksumMismatch, tr.tableTag)
		}
	}

	// Validate the font as a whole, with checksumAdjustment data set to 0 in the head table.
	common.Log.Debug("Validating entire font")
	hoff := int(headRec.offset)
	whole := make([]byte, len(data))
	copy(whole, data)
	binary.BigEndian.PutUint32(whole[hoff+8:], 0)

	adjustment := checksumMagic - calcChecksum(whole)
	if f.head.checksumAdjustment != adjustment {
		common.Log.Debug("checksumAdjustment %08X, expected %08X", f.head.checksumAdjustment, adjustment)
		return fmt.Errorf("%w: font checksum adjustment", ErrChecksumMismatch)
	}

	return nil
}
