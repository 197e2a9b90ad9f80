/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fontfetch downloads prebuilt WOFF2 files into the font output directory.
package fontfetch

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fatih/color"
	"github.com/google/renameio/v2"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/crypto/blake2b"

	"github.com/creatorplaybook/assettool/assets/config"
	"github.com/creatorplaybook/assettool/assets/fontconv"
	"github.com/creatorplaybook/assettool/common"
)

// maxRedirects bounds the redirects followed per download.
const maxRedirects = 5

var errTooManyRedirects = errors.New("stopped after too many redirects")

// ManualHint lists where the fonts can be downloaded by hand.
const ManualHint = `Alternative: Download fonts manually from:
1. https://fonts.google.com/specimen/DM+Sans
2. https://fonts.google.com/specimen/Baloo+2
3. Extract WOFF2 files to public/fonts/
`

// StatusError is returned for a download answered with a status other than 200.
type StatusError struct {
	Name       string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("failed to download %s: %d", e.Name, e.StatusCode)
}

// Fetcher downloads a list of remote fonts into a directory.
type Fetcher struct {
	Client *http.Client
	Out    io.Writer // progress lines
	// Progress, when non-nil, receives a byte progress bar per download.
	Progress io.Writer
}

// New returns a Fetcher with a default HTTP client writing progress lines to `out`.
func New(out io.Writer) *Fetcher {
	return &Fetcher{
		Client: &http.Client{
			Timeout: 60 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return errTooManyRedirects
				}
				return nil
			},
		},
		Out: out,
	}
}

// FetchAll downloads `fonts` in order into `dir`, which is created when missing. It stops at the
// first failure. The results can be passed to fontconv.WriteStylesheet.
func (f *Fetcher) FetchAll(ctx context.Context, dir string, fonts []config.RemoteFont) ([]fontconv.Result, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	f.printf("Downloading fonts from Google Fonts...\n\n")
	results := make([]fontconv.Result, 0, len(fonts))
	for _, font := range fonts {
		res, err := f.Fetch(ctx, dir, font)
		if err != nil {
			return results, err
		}
		results = append(results, res)
		f.printf("%s Downloaded %s\n", color.GreenString("✓"), font.Name)
	}
	f.printf("\n%s All fonts downloaded successfully!\n", color.GreenString("✓"))
	return results, nil
}

// Fetch downloads `font` into `dir`. The file only appears once it is complete.
func (f *Fetcher) Fetch(ctx context.Context, dir string, font config.RemoteFont) (fontconv.Result, error) {
	path := filepath.Join(dir, font.Name)
	res := fontconv.Result{
		Name:   font.Name,
		Output: path,
		Status: fontconv.StatusFailed,
		Family: font.Family,
		Weight: font.Weight,
	}

	res.Size, res.Fingerprint, res.Err = f.download(ctx, path, font)
	if res.Err != nil {
		return res, res.Err
	}
	res.Status = fontconv.StatusConverted
	common.Log.Debug("Wrote %s (%d bytes, %s)", path, res.Size, res.Fingerprint)
	return res, nil
}

// download writes the body of `font.URL` to `path` and returns its size and fingerprint.
func (f *Fetcher) download(ctx context.Context, path string, font config.RemoteFont) (int64, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, font.URL, nil)
	if err != nil {
		return 0, "", fmt.Errorf("failed to download %s: %w", font.Name, err)
	}
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	common.Log.Debug("GET %s", font.URL)
	resp, err := client.Do(req)
	if err != nil {
		return 0, "", fmt.Errorf("failed to download %s: %w", font.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, "", &StatusError{Name: font.Name, StatusCode: resp.StatusCode}
	}

	var body io.Reader = resp.Body
	if f.Progress != nil {
		bar := progressbar.NewOptions64(resp.ContentLength,
			progressbar.OptionSetWriter(f.Progress),
			progressbar.OptionSetDescription(font.Name),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(30),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		body = io.TeeReader(resp.Body, bar)
	}

	h, err := blake2b.New256(nil)
	if err != nil {
		return 0, "", err
	}
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return 0, "", fmt.Errorf("failed to download %s: %w", font.Name, err)
	}
	defer pf.Cleanup()

	n, err := io.Copy(io.MultiWriter(pf, h), body)
	if err == nil {
		err = pf.CloseAtomicallyReplace()
	}
	if err != nil {
		return 0, "", fmt.Errorf("failed to download %s: %w", font.Name, err)
	}
	return n, hex.EncodeToString(h.Sum(nil)[:6]), nil
}

func (f *Fetcher) printf(format string, args ...interface{}) {
	if f.Out != nil {
		fmt.Fprintf(f.Out, format, args...)
	}
}
