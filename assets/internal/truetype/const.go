/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "errors"

var (
	errTypeCheck     = errors.New("type check error")
	errRangeCheck    = errors.New("range check error")
	errRequiredField = errors.New("required field missing")

	// ErrChecksumMismatch is returned by validation when a table checksum or the whole-font checksum
	// adjustment does not match the font data.
	ErrChecksumMismatch = errors.New("checksum mismatch")

	// ErrUnsupportedFlavor is returned for sfnt versions that are not TrueType or CFF outlines,
	// including font collections.
	ErrUnsupportedFlavor = errors.New("unsupported sfnt version")
)

// sfnt versions (flavors).
const (
	FlavorTrueType uint32 = 0x00010000
	FlavorApple    uint32 = 0x74727565 // 'true'
	FlavorCFF      uint32 = 0x4F54544F // 'OTTO'
	flavorTTC      uint32 = 0x74746366 // 'ttcf'
)

// checksumMagic is the value the whole-font checksum must add up to, see head.checksumAdjustment.
const checksumMagic = 0xB1B0AFBA
