/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

// testFontSpec describes a synthetic font built for tests.
type testFontSpec struct {
	family    string
	subfamily string
	weight    uint16
	italic    bool
	numGlyphs uint16
	os2       bool
	hhea      bool
	maxp05    bool
}

func (s testFontSpec) model(t testing.TB) *font {
	enc := utf16be.NewEncoder()
	family, err := enc.Bytes([]byte(s.family))
	require.NoError(t, err)
	subfamily, err := enc.Bytes([]byte(s.subfamily))
	require.NoError(t, err)

	f := &font{
		head: &headTable{
			majorVersion: 1,
			fontRevision: 0x00010000,
			magicNumber:  headMagicNumber,
			unitsPerEm:   1000,
			xMax:         500,
			yMax:         700,
		},
		maxp: &maxpTable{
			version:   maxpVersion10,
			numGlyphs: s.numGlyphs,
			maxPoints: 12,
			maxZones:  2,
		},
		name: &nameTable{
			nameRecords: []*nameRecord{
				{platformID: platformMacintosh, nameID: NameIDFamily, data: []byte("Mac " + s.family)},
				{platformID: platformWindows, encodingID: 1, languageID: 0x409, nameID: NameIDFamily, data: family},
				{platformID: platformWindows, encodingID: 1, languageID: 0x409, nameID: NameIDSubfamily, data: subfamily},
			},
		},
	}
	if s.hhea {
		f.hhea = &hheaTable{
			majorVersion:     1,
			ascender:         800,
			descender:        -200,
			lineGap:          90,
			advanceWidthMax:  600,
			caretSlopeRise:   1,
			numberOfHMetrics: s.numGlyphs,
		}
	}
	if s.maxp05 {
		f.maxp = &maxpTable{version: maxpVersion05, numGlyphs: s.numGlyphs}
	}
	if s.italic {
		f.head.macStyle = 0x0002
	}
	if s.os2 {
		f.os2 = &os2Table{
			version:       4,
			usWeightClass: s.weight,
			usWidthClass:  5,
			achVendID:     makeTag("TEST"),
			usWinAscent:   900,
			usWinDescent:  200,
		}
		if s.italic {
			f.os2.fsSelection = 0x0001
		}
	}
	return f
}

func serialize(t testing.TB, fn func(w *byteWriter) error) []byte {
	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, fn(bw))
	require.NoError(t, bw.flush())
	return buf.Bytes()
}

// testFontTables returns the tables of a synthetic font described by `s`.
func testFontTables(t testing.TB, s testFontSpec) []Table {
	f := s.model(t)
	tables := []Table{
		{Tag: "head", Data: serialize(t, f.writeHead)},
		{Tag: "maxp", Data: serialize(t, f.writeMaxp)},
		{Tag: "name", Data: serialize(t, f.writeNameTable)},
		{Tag: "cvt ", Data: []byte{0x00, 0x10, 0x00, 0x20, 0x00, 0x30}},
		{Tag: "glyf", Data: []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{Tag: "loca", Data: []byte{0, 0, 0, 5, 0, 5}},
	}
	if s.hhea {
		tables = append(tables, Table{Tag: "hhea", Data: serialize(t, f.writeHhea)})
	}
	if s.os2 {
		tables = append(tables, Table{Tag: "OS/2", Data: serialize(t, f.writeOS2Table)})
	}
	return tables
}

// buildTestFont returns the bytes of a valid synthetic font described by `s`.
func buildTestFont(t testing.TB, s testFontSpec) []byte {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, FlavorTrueType, testFontTables(t, s)))
	return buf.Bytes()
}

var defaultTestFont = testFontSpec{
	family:    "Test Sans",
	subfamily: "Medium",
	weight:    500,
	numGlyphs: 2,
	os2:       true,
}
