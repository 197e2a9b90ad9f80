/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff2

// Table is a single sfnt table with its tag and uncompressed data.
type Table struct {
	Tag  string
	Data []byte
}

// Font is the content of a WOFF2 file: the sfnt flavor and its tables in directory order.
type Font struct {
	Flavor uint32
	Tables []Table
}

// sfntSize returns the size of the uncompressed sfnt holding `tables`.
func sfntSize(lengths []uint32) uint32 {
	size := uint32(12 + 16*len(lengths))
	for _, l := range lengths {
		size += (l + 3) &^ 3
	}
	return size
}
