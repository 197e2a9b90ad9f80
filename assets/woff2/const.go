/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff2

import "errors"

var (
	// ErrNoTables is returned when encoding a font without tables.
	ErrNoTables = errors.New("woff2: font has no tables")
	// ErrCollection is returned for font collections which are not supported.
	ErrCollection = errors.New("woff2: font collections are not supported")
	// ErrBadSignature is returned when decoding data that does not start with 'wOF2'.
	ErrBadSignature = errors.New("woff2: invalid signature")
	// ErrTruncated is returned when the data ends before the structures it declares.
	ErrTruncated = errors.New("woff2: truncated data")
	// ErrCorrupt is returned when the header, directory and table stream disagree.
	ErrCorrupt = errors.New("woff2: inconsistent font data")
	// ErrUnsupportedTransform is returned when decoding a table stored with a non-null transform.
	ErrUnsupportedTransform = errors.New("woff2: transformed tables are not supported")

	errBadTag         = errors.New("woff2: invalid table tag")
	errGlyfLoca       = errors.New("woff2: glyf and loca must be present together, glyf first")
	errBase128Zero    = errors.New("woff2: UIntBase128 with leading zeros")
	errBase128Overflow = errors.New("woff2: UIntBase128 overflow")
)

const (
	signature  uint32 = 0x774F4632 // 'wOF2'
	headerSize        = 48

	flavorCollection uint32 = 0x74746366 // 'ttcf'

	// Table directory flags: bits 0-5 hold the known tag index, bits 6-7 the transform version.
	flagTagMask       = 0x3F
	flagArbitraryTag  = 0x3F
	transformShift    = 6
	nullTransformGlyf = 3

	// Brotli settings used by the reference encoder.
	brotliQuality = 11
	brotliWindow  = 22
)

// header is the fixed size WOFF2 file header.
type header struct {
	Signature           uint32
	Flavor              uint32
	Length              uint32
	NumTables           uint16
	Reserved            uint16
	TotalSfntSize       uint32
	TotalCompressedSize uint32
	MajorVersion        uint16
	MinorVersion        uint16
	MetaOffset          uint32
	MetaLength          uint32
	MetaOrigLength      uint32
	PrivOffset          uint32
	PrivLength          uint32
}
