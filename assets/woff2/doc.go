/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package woff2 encodes and decodes WOFF2 web font containers.
//
// The encoder stores every table with the null transform (glyf and loca with transform version 3,
// all other tables with version 0) and compresses the concatenated table data as a single brotli
// stream, which is what browsers require of a WOFF2 file. Decoding is limited to the same subset:
// files using the glyf/loca or hmtx transforms are rejected.
//
// Format reference: https://www.w3.org/TR/WOFF2/
package woff2
