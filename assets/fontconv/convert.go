/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontconv

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/font/sfnt"

	"github.com/creatorplaybook/assettool/assets/internal/truetype"
	"github.com/creatorplaybook/assettool/assets/woff2"
	"github.com/creatorplaybook/assettool/common"
)

// fileOptions controls a single conversion.
type fileOptions struct {
	verify bool
	strict bool
}

// converted describes a written WOFF2 file.
type converted struct {
	size        int64
	fingerprint string
	info        truetype.Info
}

// ConvertFile converts the TrueType font at `inputPath` into a WOFF2 file at `outputPath`.
// The output is verified by decoding it again. Nothing is written when the conversion fails.
func ConvertFile(inputPath, outputPath string) error {
	_, err := convertFile(inputPath, outputPath, fileOptions{verify: true})
	return err
}

// OutputName returns the WOFF2 file name for `name`: a trailing .ttf (any case) is replaced by .woff2.
func OutputName(name string) string {
	ext := filepath.Ext(name)
	if strings.EqualFold(ext, ".ttf") {
		name = strings.TrimSuffix(name, ext)
	}
	return name + ".woff2"
}

func convertFile(inputPath, outputPath string, opts fileOptions) (*converted, error) {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, err
	}

	fnt, err := truetype.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if _, err := sfnt.Parse(data); err != nil {
		return nil, fmt.Errorf("load font: %w", err)
	}

	if err := fnt.Validate(); err != nil {
		if opts.strict || !errors.Is(err, truetype.ErrChecksumMismatch) {
			return nil, fmt.Errorf("validate font: %w", err)
		}
		common.Log.Warning("%s: %v", filepath.Base(inputPath), err)
	}

	tables, err := fnt.Tables()
	if err != nil {
		return nil, fmt.Errorf("read tables: %w", err)
	}
	src := &woff2.Font{Flavor: fnt.Flavor(), Tables: make([]woff2.Table, len(tables))}
	for i, t := range tables {
		src.Tables[i] = woff2.Table{Tag: t.Tag, Data: t.Data}
	}
	info := fnt.Info()

	enc, err := woff2.Encode(src)
	if err != nil {
		return nil, err
	}
	if opts.verify {
		if err := verify(src, info, enc); err != nil {
			return nil, err
		}
	}

	if err := renameio.WriteFile(outputPath, enc, 0o644); err != nil {
		return nil, err
	}

	sum := blake2b.Sum256(enc)
	out := &converted{
		size:        int64(len(enc)),
		fingerprint: hex.EncodeToString(sum[:6]),
		info:        info,
	}
	common.Log.Debug("%s: %d tables, %d glyphs, %d -> %d bytes, %q %s weight %d",
		filepath.Base(inputPath), len(tables), info.NumGlyphs, len(data), len(enc),
		info.Family, info.Subfamily, info.WeightClass)
	return out, nil
}

// verify decodes `enc` and compares its tables with `src`. The decoded tables are then reassembled
// into an sfnt, which must load, pass checksum validation and describe the same font as `want`.
func verify(src *woff2.Font, want truetype.Info, enc []byte) error {
	dec, err := woff2.Decode(enc)
	if err != nil {
		return fmt.Errorf("%w: %v", errVerify, err)
	}
	if dec.Flavor != src.Flavor || len(dec.Tables) != len(src.Tables) {
		return errVerify
	}
	tables := make([]truetype.Table, len(dec.Tables))
	for i, t := range src.Tables {
		d := dec.Tables[i]
		if d.Tag != t.Tag || !bytes.Equal(d.Data, t.Data) {
			return fmt.Errorf("%w: table %q", errVerify, t.Tag)
		}
		tables[i] = truetype.Table{Tag: d.Tag, Data: d.Data}
	}

	var buf bytes.Buffer
	if err := truetype.Write(&buf, dec.Flavor, tables); err != nil {
		return fmt.Errorf("%w: rebuild: %v", errVerify, err)
	}
	sf, err := sfnt.Parse(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: load rebuilt font: %v", errVerify, err)
	}
	fnt, err := truetype.ParseBytes(buf.Bytes())
	if err != nil {
		return fmt.Errorf("%w: parse rebuilt font: %v", errVerify, err)
	}
	if err := fnt.Validate(); err != nil {
		return fmt.Errorf("%w: rebuilt font: %v", errVerify, err)
	}

	got := fnt.Info()
	if got != want {
		common.Log.Debug("Rebuilt font info %+v, expected %+v", got, want)
		return fmt.Errorf("%w: font info changed", errVerify)
	}
	if sf.NumGlyphs() != got.NumGlyphs || int(sf.UnitsPerEm()) != got.UnitsPerEm {
		return fmt.Errorf("%w: %d glyphs, %d units per em", errVerify, sf.NumGlyphs(), sf.UnitsPerEm())
	}
	return nil
}
