/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype supports loading, validating and assembling sfnt (TrueType/OpenType) font files.
// Specifically intended for repackaging fonts into web font containers: the tables are read as
// opaque blocks, only the tables needed to describe the font (head, maxp, name, OS/2) are decoded.
package truetype
