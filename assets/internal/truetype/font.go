/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"

	"github.com/creatorplaybook/assettool/common"
)

// font is a data model for truetype fonts with basic access methods.
// Only the tables needed to describe the font are decoded, all other tables are kept as records and
// read as opaque data when repackaging.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	name *nameTable
	os2  *os2Table
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error

	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}
	switch f.ot.sfntVersion {
	case FlavorTrueType, FlavorApple, FlavorCFF:
	default:
		common.Log.Debug("Unsupported sfnt version %08X", f.ot.sfntVersion)
		return nil, fmt.Errorf("%w: %08X", ErrUnsupportedFlavor, f.ot.sfntVersion)
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	f.head, err = f.parseHead(r)
	if err != nil {
		return nil, err
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return nil, fmt.Errorf("head: %w", errRequiredField)
	}

	f.maxp, err = f.parseMaxp(r)
	if err != nil {
		return nil, err
	}
	if f.maxp == nil {
		common.Log.Debug("maxp table missing")
		return nil, fmt.Errorf("maxp: %w", errRequiredField)
	}

	f.hhea, err = f.parseHhea(r)
	if err != nil {
		return nil, err
	}

	f.name, err = f.parseNameTable(r)
	if err != nil {
		return nil, err
	}

	f.os2, err = f.parseOS2Table(r)
	if err != nil {
		return nil, err
	}

	common.Log.Trace("Parsed font with %d tables:\n%s", f.numTables(), f.trec)
	return f, nil
}

// Info describes a font for reporting and stylesheet generation.
type Info struct {
	Family         string
	Subfamily      string
	FullName       string
	PostScriptName string
	WeightClass    int // 0 when the font has no OS/2 table.
	Italic         bool
	NumGlyphs      int
	UnitsPerEm     int

	// Vertical metrics from hhea, in font units. Zero when the font has no hhea table.
	Ascender  int
	Descender int
	LineGap   int
}

func (f *font) info() Info {
	inf := Info{
		Family:         f.GetNameByID(NameIDTypographicFamily),
		Subfamily:      f.GetNameByID(NameIDSubfamily),
		FullName:       f.GetNameByID(NameIDFullName),
		PostScriptName: f.GetNameByID(NameIDPostScriptName),
		NumGlyphs:      int(f.maxp.numGlyphs),
		UnitsPerEm:     int(f.head.unitsPerEm),
		Italic:         f.head.italic(),
	}
	if inf.Family == "" {
		inf.Family = f.GetNameByID(NameIDFamily)
	}
	if f.hhea != nil {
		inf.Ascender = int(f.hhea.ascender)
		inf.Descender = int(f.hhea.descender)
		inf.LineGap = int(f.hhea.lineGap)
	}
	if f.os2 != nil {
		inf.WeightClass = int(f.os2.usWeightClass)
		inf.Italic = inf.Italic || f.os2.italic()
	}
	return inf
}
