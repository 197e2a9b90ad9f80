/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package imgtrim

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/creatorplaybook/assettool/common"
)

// DefaultSuffix is inserted between the file stem and extension of batch outputs.
const DefaultSuffix = "_trimmed"

// BatchOptions configures BatchTrim.
type BatchOptions struct {
	Padding int
	Suffix  string    // DefaultSuffix when empty
	Workers int       // files trimmed concurrently, at least 1
	Out     io.Writer // progress lines, discarded when nil
}

// FileError is a failure to trim one file of a batch.
type FileError struct {
	Name string
	Err  error
}

func (e *FileError) Error() string {
	return e.Name + ": " + e.Err.Error()
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// BatchReport lists the trimmed files and the failures of a batch, both in directory order.
type BatchReport struct {
	Results []Result
	Failed  []*FileError
}

// OutputName returns `name` with `suffix` inserted before its extension.
func OutputName(name, suffix string) string {
	ext := filepath.Ext(name)
	return strings.TrimSuffix(name, ext) + suffix + ext
}

// IsPNG returns true if `name` has a .png extension in any case.
func IsPNG(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".png")
}

// BatchTrim trims every PNG file directly in `inDir` into `outDir`. A file that fails is logged,
// reported and skipped; the remaining files are still processed. An error is returned only when the
// directories cannot be used or `ctx` is cancelled.
func BatchTrim(ctx context.Context, inDir, outDir string, opts BatchOptions) (*BatchReport, error) {
	if opts.Padding < 0 {
		return nil, ErrNegativePadding
	}
	if opts.Suffix == "" {
		opts.Suffix = DefaultSuffix
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	if opts.Out == nil {
		opts.Out = io.Discard
	}

	entries, err := os.ReadDir(inDir)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if IsPNG(e.Name()) && isRegular(inDir, e) {
			names = append(names, e.Name())
		}
	}
	common.Log.Debug("Trimming %d PNG files from %s with %d workers", len(names), inDir, opts.Workers)

	var (
		mu       sync.Mutex
		results  = make([]*Result, len(names))
		failures = make([]*FileError, len(names))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			outName := OutputName(name, opts.Suffix)
			res, err := TrimFile(filepath.Join(inDir, name), filepath.Join(outDir, outName), opts.Padding)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				common.Log.Debug("Trimming %s: %v", name, err)
				failures[i] = &FileError{Name: name, Err: err}
				fmt.Fprintf(opts.Out, "Failed: %s: %v\n", name, err)
				return nil
			}
			results[i] = res
			fmt.Fprintf(opts.Out, "Trimmed: %s -> %s\n", name, outName)
			return nil
		})
	}
	waitErr := g.Wait()

	report := &BatchReport{}
	for i := range names {
		if results[i] != nil {
			report.Results = append(report.Results, *results[i])
		}
		if failures[i] != nil {
			report.Failed = append(report.Failed, failures[i])
		}
	}
	return report, waitErr
}

// isRegular reports whether `e` is a regular file, following symbolic links.
func isRegular(dir string, e fs.DirEntry) bool {
	if e.Type()&fs.ModeSymlink == 0 {
		return e.Type().IsRegular()
	}
	fi, err := os.Stat(filepath.Join(dir, e.Name()))
	if err != nil {
		common.Log.Debug("Skipping %s: %v", e.Name(), err)
		return false
	}
	return fi.Mode().IsRegular()
}
