// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns discovered image files into JPEG output files.
//
// Decoding is delegated to the registered image codecs: the standard
// library handles PNG, GIF, and JPEG, and golang.org/x/image supplies
// WebP, BMP, and TIFF. Formats without a registered decoder (SVG among
// the recognized extensions) fail per file at decode time.
package convert

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	_ "image/gif"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/pdiddy/jpegify/pkg/types"
)

// File converts the image at path into a JPEG in cfg.OutputDir and
// returns the output path. The output filename is the input stem plus
// ".jpg"; an existing file with that name is overwritten. The output
// directory is flat, so two sources sharing a stem overwrite each other.
func File(path string, cfg types.ConversionConfig) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decoding image: %w", err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	outPath := filepath.Join(cfg.OutputDir, stem+".jpg")

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", outPath, err)
	}

	quality := cfg.Quality
	if quality <= 0 {
		quality = types.DefaultQuality
	}
	if err := jpeg.Encode(out, flatten(src), &jpeg.Options{Quality: quality}); err != nil {
		out.Close()
		return "", fmt.Errorf("encoding JPEG: %w", err)
	}
	if err := out.Close(); err != nil {
		return "", fmt.Errorf("writing %s: %w", outPath, err)
	}
	return outPath, nil
}

// flatten composites src onto an opaque white canvas of the same
// dimensions and returns the result. Transparent and partially
// transparent regions end up blended with white; palette, grayscale,
// and YCbCr sources are expanded to RGB by the draw operation. For a
// fully opaque source the white background never shows through, so the
// operation reduces to a plain color-model conversion.
func flatten(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Over)
	return dst
}
