/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package imgtrim crops the transparent border off PNG images.
package imgtrim

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/renameio/v2"

	"github.com/creatorplaybook/assettool/common"
)

// ErrNegativePadding is returned for a padding below zero.
var ErrNegativePadding = errors.New("padding must not be negative")

// Result describes a trimmed file.
type Result struct {
	Input      string
	Output     string
	SourceSize image.Point
	Size       image.Point
	// Crop is the kept area in source coordinates. It covers the whole source when Cropped is false.
	Crop    image.Rectangle
	Cropped bool // false for a fully transparent image, which is saved unchanged
}

// BoundingBox returns the smallest rectangle containing every pixel of `img` with non-zero alpha.
// ok is false when the image is fully transparent.
func BoundingBox(img *image.NRGBA) (box image.Rectangle, ok bool) {
	b := img.Bounds()
	minX, minY, maxX, maxY := b.Max.X, b.Max.Y, b.Min.X, b.Min.Y
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		for x := b.Min.X; x < b.Max.X; x++ {
			if row[(x-b.Min.X)*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x >= maxX {
				maxX = x + 1
			}
			if y < minY {
				minY = y
			}
			maxY = y + 1
		}
	}
	if maxX <= minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX, maxY), true
}

// Trim crops `img` to the bounding box of its non-transparent pixels grown by `padding` on every side
// and clamped to the image. The image is normalized to NRGBA first. A fully transparent image is
// returned unchanged with ok set to false.
func Trim(img image.Image, padding int) (out *image.NRGBA, crop image.Rectangle, ok bool, err error) {
	if padding < 0 {
		return nil, image.Rectangle{}, false, ErrNegativePadding
	}
	src := imaging.Clone(img)
	box, ok := BoundingBox(src)
	if !ok {
		return src, src.Bounds(), false, nil
	}
	crop = image.Rect(
		box.Min.X-padding, box.Min.Y-padding,
		box.Max.X+padding, box.Max.Y+padding,
	).Intersect(src.Bounds())
	return imaging.Crop(src, crop), crop, true, nil
}

// TrimFile trims the image at `inputPath` and writes it as PNG to `outputPath`, creating parent
// directories as needed.
func TrimFile(inputPath, outputPath string, padding int) (*Result, error) {
	if padding < 0 {
		return nil, ErrNegativePadding
	}
	img, err := imaging.Open(inputPath)
	if err != nil {
		return nil, err
	}
	out, crop, cropped, err := Trim(img, padding)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return nil, err
	}
	if err := writePNG(outputPath, out); err != nil {
		return nil, fmt.Errorf("save %s: %w", outputPath, err)
	}

	res := &Result{
		Input:      inputPath,
		Output:     outputPath,
		SourceSize: img.Bounds().Size(),
		Size:       out.Bounds().Size(),
		Crop:       crop,
		Cropped:    cropped,
	}
	if !cropped {
		common.Log.Debug("%s is fully transparent, saved unchanged", inputPath)
	} else {
		common.Log.Debug("%s: %v -> %v", inputPath, res.SourceSize, res.Size)
	}
	return res, nil
}

// writePNG encodes `img` into a pending file that replaces `path` only once it is complete and synced.
func writePNG(path string, img image.Image) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer pf.Cleanup()

	if err := imaging.Encode(pf, img, imaging.PNG); err != nil {
		return err
	}
	return pf.CloseAtomicallyReplace()
}
