/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package woff2

// knownTags lists the table tags that are encoded as an index in the table directory flags.
var knownTags = [63]string{
	"cmap", "head", "hhea", "hmtx", "maxp", "name", "OS/2", "post",
	"cvt ", "fpgm", "glyf", "loca", "prep", "CFF ", "VORG", "EBDT",
	"EBLC", "gasp", "hdmx", "kern", "LTSH", "PCLT", "VDMX", "vhea",
	"vmtx", "BASE", "GDEF", "GPOS", "GSUB", "EBSC", "JSTF", "MATH",
	"CBDT", "CBLC", "COLR", "CPAL", "SVG ", "sbix", "acnt", "avar",
	"bdat", "bloc", "bsln", "cvar", "fdsc", "feat", "fmtx", "fvar",
	"gvar", "hsty", "just", "lcar", "mort", "morx", "opbd", "prop",
	"trak", "Zapf", "Silf", "Glat", "Gloc", "Feat", "Sill",
}

var knownTagIndex = func() map[string]int {
	m := make(map[string]int, len(knownTags))
	for i, t := range knownTags {
		m[t] = i
	}
	return m
}()

// normalizeTag pads `t` with spaces to 4 bytes. Tags longer than 4 bytes or empty are invalid.
func normalizeTag(t string) (string, error) {
	if len(t) == 0 || len(t) > 4 {
		return "", errBadTag
	}
	for len(t) < 4 {
		t += " "
	}
	return t, nil
}

// hasNullTransform reports whether transform version `version` is the null transform for `tag`.
func hasNullTransform(tag string, version byte) bool {
	if tag == "glyf" || tag == "loca" {
		return version == nullTransformGlyf
	}
	return version == 0
}
