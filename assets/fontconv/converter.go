/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontconv

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/creatorplaybook/assettool/assets/config"
	"github.com/creatorplaybook/assettool/common"
)

// Status is the outcome of converting one configured font.
type Status int

// Conversion outcomes.
const (
	StatusConverted Status = iota
	StatusMissing
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusConverted:
		return "converted"
	case StatusMissing:
		return "missing"
	case StatusFailed:
		return "failed"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Result is the outcome for one configured font file.
type Result struct {
	Name   string // configured font file name
	Output string // WOFF2 path
	Status Status
	Err    error // set when Status is StatusFailed

	// Set when Status is StatusConverted.
	Size        int64
	Fingerprint string
	Family      string
	Weight      int
	Italic      bool

	// Names the font may be installed under locally, for the local() sources of the stylesheet.
	FullName       string
	PostScriptName string
	// Vertical metrics as a fraction of the em, zero when unknown.
	Ascent  float64
	Descent float64
	LineGap float64
}

// Report holds the results of a Run in configuration order.
type Report struct {
	Results   []Result
	Total     int
	Succeeded int
}

// AllSucceeded returns true if every configured font was converted.
func (r *Report) AllSucceeded() bool {
	return r.Succeeded == r.Total
}

// Converter converts the configured fonts of a staging directory.
type Converter struct {
	cfg config.FontsConfig
	out io.Writer
}

// New returns a Converter for `cfg` writing progress lines to `out`.
func New(cfg config.FontsConfig, out io.Writer) *Converter {
	if out == nil {
		out = io.Discard
	}
	return &Converter{cfg: cfg, out: out}
}

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
)

// Run converts every configured font in order. It returns a *StagingDirError before touching the
// output directory when the staging directory does not exist. Per file failures are recorded in the
// report and do not make Run fail.
func (c *Converter) Run(ctx context.Context) (*Report, error) {
	fi, err := os.Stat(c.cfg.StagingDir)
	if err != nil || !fi.IsDir() {
		common.Log.Debug("Staging dir %s: %v", c.cfg.StagingDir, err)
		return nil, &StagingDirError{Dir: c.cfg.StagingDir}
	}
	if err := os.MkdirAll(c.cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	c.printf("Converting TTF to WOFF2...\n\n")

	report := &Report{Total: len(c.cfg.Files)}
	opts := fileOptions{verify: c.cfg.Verify, strict: c.cfg.Strict}
	for _, f := range c.cfg.Files {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		res := c.convertOne(f, opts)
		if res.Status == StatusConverted {
			report.Succeeded++
		}
		report.Results = append(report.Results, res)
	}

	c.printf("\n")
	if report.AllSucceeded() {
		c.printf("%s All fonts converted successfully!\n", okMark("✓"))
	} else {
		c.printf("%s  Converted %d/%d fonts\n", warnMark("⚠️"), report.Succeeded, report.Total)
		c.printf("   Check the staged TTF files, or download prebuilt WOFF2 files: assettool fonts fetch\n")
	}

	if c.cfg.CSSFile != "" {
		if err := WriteStylesheet(c.cfg.CSSFile, c.cfg.CSSURLPrefix, report.Results); err != nil {
			return report, fmt.Errorf("write stylesheet: %w", err)
		}
		common.Log.Info("Wrote %s", c.cfg.CSSFile)
	}
	return report, nil
}

func (c *Converter) convertOne(f config.FontFile, opts fileOptions) Result {
	inputPath := filepath.Join(c.cfg.StagingDir, f.Name)
	outName := OutputName(f.Name)
	res := Result{
		Name:   f.Name,
		Output: filepath.Join(c.cfg.OutputDir, outName),
	}

	if _, err := os.Stat(inputPath); errors.Is(err, os.ErrNotExist) {
		c.printf("  %s %s not found\n", failMark("✗"), f.Name)
		res.Status = StatusMissing
		return res
	}

	conv, err := convertFile(inputPath, res.Output, opts)
	if err != nil {
		common.Log.Debug("Converting %s: %v", f.Name, err)
		c.printf("Error converting %s: %v\n", inputPath, err)
		c.printf("  %s Failed to convert %s\n", failMark("✗"), f.Name)
		res.Status = StatusFailed
		res.Err = err
		return res
	}

	res.Status = StatusConverted
	res.Size = conv.size
	res.Fingerprint = conv.fingerprint
	res.Family = conv.info.Family
	res.Italic = conv.info.Italic
	res.FullName = conv.info.FullName
	res.PostScriptName = conv.info.PostScriptName
	if upem := float64(conv.info.UnitsPerEm); upem > 0 {
		res.Ascent = float64(conv.info.Ascender) / upem
		res.Descent = -float64(conv.info.Descender) / upem
		res.LineGap = float64(conv.info.LineGap) / upem
	}
	res.Weight = f.Weight
	if res.Weight == 0 {
		res.Weight = conv.info.WeightClass
	}
	c.printf("  %s %s (%.1f KB)\n", okMark("✓"), outName, float64(conv.size)/1024)
	return res
}

func (c *Converter) printf(format string, args ...interface{}) {
	fmt.Fprintf(c.out, format, args...)
}
