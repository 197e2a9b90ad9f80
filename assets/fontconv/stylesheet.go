/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontconv

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/google/renameio/v2"
)

// Stylesheet returns @font-face rules for the converted fonts in `results`. Font URLs are `urlPrefix`
// followed by the file name and a fingerprint query for cache busting. Installed copies are preferred
// through local() when the font names are known, and known vertical metrics are pinned with the
// ascent, descent and line gap overrides.
func Stylesheet(urlPrefix string, results []Result) string {
	var sb strings.Builder
	for _, r := range results {
		if r.Status != StatusConverted {
			continue
		}
		family := r.Family
		if family == "" {
			family = strings.TrimSuffix(filepath.Base(r.Output), filepath.Ext(r.Output))
		}
		weight := r.Weight
		if weight == 0 {
			weight = 400
		}
		style := "normal"
		if r.Italic {
			style = "italic"
		}
		url := urlPrefix + filepath.Base(r.Output)
		if r.Fingerprint != "" {
			url += "?v=" + r.Fingerprint
		}

		var src []string
		for _, name := range []string{r.FullName, r.PostScriptName} {
			if local := "local(" + quote(name) + ")"; name != "" && !slices.Contains(src, local) {
				src = append(src, local)
			}
		}
		src = append(src, "url("+quote(url)+") format('woff2')")

		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "@font-face {\n")
		fmt.Fprintf(&sb, "  font-family: %s;\n", quote(family))
		fmt.Fprintf(&sb, "  font-style: %s;\n", style)
		fmt.Fprintf(&sb, "  font-weight: %d;\n", weight)
		fmt.Fprintf(&sb, "  font-display: swap;\n")
		fmt.Fprintf(&sb, "  src: %s;\n", strings.Join(src, ", "))
		if r.Ascent > 0 {
			fmt.Fprintf(&sb, "  ascent-override: %s;\n", percent(r.Ascent))
			fmt.Fprintf(&sb, "  descent-override: %s;\n", percent(r.Descent))
			fmt.Fprintf(&sb, "  line-gap-override: %s;\n", percent(r.LineGap))
		}
		fmt.Fprintf(&sb, "}\n")
	}
	return sb.String()
}

// WriteStylesheet writes Stylesheet(urlPrefix, results) to `path`, creating parent directories.
func WriteStylesheet(path, urlPrefix string, results []Result) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return renameio.WriteFile(path, []byte(Stylesheet(urlPrefix, results)), 0o644)
}

// quote returns `s` as a single quoted CSS string.
func quote(s string) string {
	s = strings.ReplaceAll(s, "\\", "\\\\")
	return "'" + strings.ReplaceAll(s, "'", "\\'") + "'"
}

// percent formats the em fraction `v` as a CSS percentage with at most two decimals.
func percent(v float64) string {
	s := strconv.FormatFloat(v*100, 'f', 2, 64)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	return s + "%"
}
