/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseSyntheticFont(t *testing.T) {
	fnt, err := ParseBytes(buildTestFont(t, defaultTestFont))
	require.NoError(t, err)

	assert.Equal(t, FlavorTrueType, fnt.Flavor())
	assert.Equal(t, 7, fnt.numTables())
	assert.Contains(t, fnt.trec.trMap, "cvt")
	assert.Contains(t, fnt.trec.trMap, "OS/2")
	assert.NotContains(t, fnt.trec.trMap, "CFF")

	info := fnt.Info()
	assert.Equal(t, Info{
		Family:      "Test Sans",
		Subfamily:   "Medium",
		WeightClass: 500,
		NumGlyphs:   2,
		UnitsPerEm:  1000,
	}, info)
}

func TestOffsetTableFields(t *testing.T) {
	testcases := []struct {
		numTables int
		expected  offsetTable
	}{
		{1, offsetTable{sfntVersion: FlavorTrueType, numTables: 1, searchRange: 16, entrySelector: 0, rangeShift: 0}},
		{7, offsetTable{sfntVersion: FlavorTrueType, numTables: 7, searchRange: 64, entrySelector: 2, rangeShift: 48}},
		{16, offsetTable{sfntVersion: FlavorTrueType, numTables: 16, searchRange: 256, entrySelector: 4, rangeShift: 0}},
		{18, offsetTable{sfntVersion: FlavorTrueType, numTables: 18, searchRange: 256, entrySelector: 4, rangeShift: 32}},
	}

	for _, tcase := range testcases {
		assert.Equal(t, tcase.expected, *newOffsetTable(FlavorTrueType, tcase.numTables))
	}

	fnt, err := ParseBytes(buildTestFont(t, defaultTestFont))
	require.NoError(t, err)
	assert.Equal(t, *newOffsetTable(FlavorTrueType, 7), *fnt.ot)

	// Marshal to buffer and reload.
	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, fnt.writeOffsetTable(bw))
	require.NoError(t, bw.flush())

	ot, err := fnt.parseOffsetTable(newByteReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, fnt.ot, ot)
}

// Test unmarshalling and marshalling table records.
func TestTableRecordsReadWrite(t *testing.T) {
	fnt, err := ParseBytes(buildTestFont(t, defaultTestFont))
	require.NoError(t, err)

	var tags []string
	for _, tr := range fnt.trec.list {
		tags = append(tags, string(tr.tableTag[:]))
	}
	assert.Equal(t, []string{"OS/2", "cvt ", "glyf", "head", "loca", "maxp", "name"}, tags)

	// Offsets are 4-byte aligned and follow the directory.
	offset := uint32(12 + 16*7)
	for _, tr := range fnt.trec.list {
		assert.Equal(t, offset, uint32(tr.offset), tr.tableTag.String())
		offset += uint32(align4(int(tr.length)))
	}

	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, fnt.writeTableRecords(bw))
	require.NoError(t, bw.flush())

	trs, err := fnt.parseTableRecords(newByteReader(bytes.NewReader(buf.Bytes())))
	require.NoError(t, err)
	assert.Equal(t, fnt.trec.list, trs.list)
}

func TestParseRejectsCollectionsAndGarbage(t *testing.T) {
	ttc := make([]byte, 64)
	binary.BigEndian.PutUint32(ttc, flavorTTC)
	_, err := ParseBytes(ttc)
	assert.ErrorIs(t, err, ErrUnsupportedFlavor)

	_, err = ParseBytes([]byte("definitely not a font"))
	assert.Error(t, err)

	_, err = ParseBytes(nil)
	assert.Error(t, err)
}

func TestParseRequiresHead(t *testing.T) {
	var tables []Table
	for _, tbl := range testFontTables(t, defaultTestFont) {
		if tbl.Tag != "head" {
			tables = append(tables, tbl)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FlavorTrueType, tables))

	_, err := ParseBytes(buf.Bytes())
	assert.ErrorIs(t, err, errRequiredField)
}

func TestParseMaxpVersion05(t *testing.T) {
	spec := defaultTestFont
	spec.maxp05 = true
	spec.numGlyphs = 42

	fnt, err := ParseBytes(buildTestFont(t, spec))
	require.NoError(t, err)
	assert.Equal(t, 42, fnt.Info().NumGlyphs)
}

func TestItalicAndMissingOS2(t *testing.T) {
	spec := defaultTestFont
	spec.italic = true
	spec.os2 = false

	fnt, err := ParseBytes(buildTestFont(t, spec))
	require.NoError(t, err)
	info := fnt.Info()
	assert.True(t, info.Italic)
	assert.Equal(t, 0, info.WeightClass)
}

func TestParseHhea(t *testing.T) {
	spec := defaultTestFont
	spec.hhea = true

	data := buildTestFont(t, spec)
	fnt, err := ParseBytes(data)
	require.NoError(t, err)
	require.NoError(t, fnt.Validate())

	info := fnt.Info()
	assert.Equal(t, 800, info.Ascender)
	assert.Equal(t, -200, info.Descender)
	assert.Equal(t, 90, info.LineGap)
	require.NotNil(t, fnt.hhea)
	assert.Equal(t, uint16(2), fnt.hhea.numberOfHMetrics)
}

func TestParseGoRegular(t *testing.T) {
	fnt, err := ParseBytes(goregular.TTF)
	require.NoError(t, err)
	assert.Equal(t, FlavorTrueType, fnt.Flavor())
	assert.Contains(t, fnt.trec.trMap, "glyf")
	assert.Contains(t, fnt.trec.trMap, "loca")

	info := fnt.Info()
	assert.Contains(t, info.Family, "Go")
	assert.Greater(t, info.NumGlyphs, 100)
	assert.NotEmpty(t, info.FullName)
	assert.NotEmpty(t, info.PostScriptName)
	assert.Positive(t, info.Ascender)
	assert.Negative(t, info.Descender)
}

// withRecordLength returns a copy of `data` with the length of table record `i` set to `length`.
func withRecordLength(data []byte, i int, length uint32) []byte {
	out := append([]byte(nil), data...)
	binary.BigEndian.PutUint32(out[12+16*i+12:], length)
	return out
}

func TestTablesRangeCheck(t *testing.T) {
	data := buildTestFont(t, defaultTestFont)
	fnt, err := ParseBytes(data)
	require.NoError(t, err)
	cvt := -1
	for i, tr := range fnt.trec.list {
		if tr.tableTag.String() == "cvt" {
			cvt = i
		}
	}
	require.GreaterOrEqual(t, cvt, 0)

	testcases := []struct {
		name   string
		length uint32
	}{
		{"huge", 0x7FFFFFF0},
		{"max", 0xFFFFFFFF},
		{"one past end", uint32(len(data)) - uint32(fnt.trec.list[cvt].offset) + 1},
	}
	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			corrupt, err := ParseBytes(withRecordLength(data, cvt, tcase.length))
			require.NoError(t, err)
			_, err = corrupt.Tables()
			assert.ErrorIs(t, err, errRangeCheck)
		})
	}
}
