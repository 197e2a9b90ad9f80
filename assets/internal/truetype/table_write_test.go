/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"

	"github.com/creatorplaybook/assettool/common"
)

// Serializers for the decoded tables, used to build synthetic fonts.

func (f *font) writeHead(w *byteWriter) error {
	if f.head == nil {
		return errRequiredField
	}
	t := f.head
	err := w.write(t.majorVersion, t.minorVersion, t.fontRevision, t.checksumAdjustment, t.magicNumber)
	if err != nil {
		return err
	}

	err = w.write(t.flags, t.unitsPerEm, t.created, t.modified, t.xMin, t.yMin, t.xMax, t.yMax)
	if err != nil {
		return err
	}

	return w.write(t.macStyle, t.lowestRecPPEM, t.fontDirectionHint, t.indexToLocFormat, t.glyphDataFormat)
}

func (f *font) writeMaxp(w *byteWriter) error {
	if f.maxp == nil {
		return errRequiredField
	}
	t := f.maxp
	err := w.write(t.version, t.numGlyphs)
	if err != nil {
		return err
	}
	if t.version == maxpVersion05 {
		return nil
	}

	if t.version < maxpVersion10 {
		common.Log.Debug("Range check error")
		return errRangeCheck
	}

	err = w.write(t.maxPoints, t.maxContours, t.maxCompositePoints, t.maxCompositeContours)
	if err != nil {
		return err
	}

	err = w.write(t.maxZones, t.maxTwilightPoints, t.maxStorage, t.maxFunctionDefs, t.maxInstructionDefs)
	if err != nil {
		return err
	}

	return w.write(t.maxStackElements, t.maxSizeOfInstructions, t.maxComponentElements, t.maxComponentDepth)
}

func (f *font) writeHhea(w *byteWriter) error {
	if f.hhea == nil {
		return errRequiredField
	}
	t := f.hhea
	err := w.write(t.majorVersion, t.minorVersion, t.ascender, t.descender, t.lineGap)
	if err != nil {
		return err
	}
	err = w.write(t.advanceWidthMax, t.minLeftSideBearing, t.minRightSideBearing, t.xMaxExtent)
	if err != nil {
		return err
	}
	err = w.write(t.caretSlopeRise, t.caretSlopeRun, t.caretOffset)
	if err != nil {
		return err
	}
	var reserved int16
	err = w.write(reserved, reserved, reserved, reserved)
	if err != nil {
		return err
	}
	return w.write(t.metricDataFormat, t.numberOfHMetrics)
}

// writeNameTable writes a format 0 name table. Record lengths and offsets are derived from the data.
func (f *font) writeNameTable(w *byteWriter) error {
	if f.name == nil {
		return errRequiredField
	}
	t := f.name
	count := len(t.nameRecords)
	stringOffset := offset16(6 + 12*count)
	err := w.write(uint16(0), uint16(count), stringOffset)
	if err != nil {
		return err
	}

	var storage bytes.Buffer
	for _, nr := range t.nameRecords {
		nr.length = uint16(len(nr.data))
		nr.offset = offset16(storage.Len())
		storage.Write(nr.data)
		err = w.write(nr.platformID, nr.encodingID, nr.languageID, nr.nameID, nr.length, nr.offset)
		if err != nil {
			return err
		}
	}
	return w.writeSlice(storage.Bytes())
}

func (f *font) writeOS2Table(w *byteWriter) error {
	if f.os2 == nil {
		return errRequiredField
	}
	t := f.os2
	panose := make([]uint8, 10)
	copy(panose, t.panose10)

	err := w.write(t.version, t.xAvgCharWidth, t.usWeightClass, t.usWidthClass, t.fsType)
	if err != nil {
		return err
	}
	err = w.write(t.ySubscriptXSize, t.ySubscriptYSize, t.ySubscriptXOffset, t.ySubscriptYOffset)
	if err != nil {
		return err
	}
	err = w.write(t.ySuperscriptXSize, t.ySuperscriptYSize, t.ySuperscriptXOffset, t.ySuperscriptYOffset)
	if err != nil {
		return err
	}
	err = w.write(t.yStrikeoutSize, t.yStrikeoutPosition, t.sFamilyClass, panose)
	if err != nil {
		return err
	}
	err = w.write(t.ulUnicodeRange1, t.ulUnicodeRange2, t.ulUnicodeRange3, t.ulUnicodeRange4)
	if err != nil {
		return err
	}
	err = w.write(t.achVendID, t.fsSelection, t.usFirstCharIndex, t.usLastCharIndex, t.sTypoAscender)
	if err != nil {
		return err
	}
	err = w.write(t.sTypoDescender, t.sTypoLineGap, t.usWinAscent, t.usWinDescent)
	if err != nil || t.version == 0 {
		return err
	}

	err = w.write(t.ulCodePageRange1, t.ulCodePageRange2)
	if err != nil || t.version == 1 {
		return err
	}

	err = w.write(t.sxHeight, t.sCapHeight, t.usDefaultChar, t.usBreakChar, t.usMaxContext)
	if err != nil || t.version < 5 {
		return err
	}

	return w.write(t.usLowerOpticalPointSize, t.usUpperOpticalPointSize)
}
