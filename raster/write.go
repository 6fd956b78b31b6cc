package raster

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"slices"

	ico "github.com/sergeymakinen/go-ico"

	"github.com/safing/icongen/base/utils"
	"github.com/safing/icongen/base/utils/renameio"
)

// MaxICOSize is the largest frame the ICO format can hold.
const MaxICOSize = 256

const outputPermission = utils.PublicReadPermission

var pngEncoder = &png.Encoder{
	CompressionLevel: png.BestCompression,
}

// WritePNG writes img as PNG to path.
// Missing parent directories are created and an existing file is replaced.
// It returns the amount of bytes written.
func WritePNG(img image.Image, path string) (int64, error) {
	if err := utils.EnsureParentDirectory(path, outputPermission); err != nil {
		return 0, err
	}

	n, err := renameio.WriteFunc(path, outputPermission.AsUnixFilePermission(), func(w io.Writer) error {
		return pngEncoder.Encode(w, img)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}

// WriteICO writes a multi-size ICO with the given sizes to path.
//
// src is resized once to the largest size. All other frames are derived from
// that base image. src must be at least as large as the largest size.
// Missing parent directories are created and an existing file is replaced.
// It returns the amount of bytes written.
func WriteICO(src *image.NRGBA, path string, sizes []int, f Filter) (int64, error) {
	sizes, err := icoSizes(sizes)
	if err != nil {
		return 0, err
	}

	// Sizes are sorted largest first.
	base, err := Resize(src, sizes[0], f)
	if err != nil {
		return 0, err
	}
	frames := make([]image.Image, 0, len(sizes))
	for _, size := range sizes {
		frame, err := Resize(base, size, f)
		if err != nil {
			return 0, err
		}
		frames = append(frames, frame)
	}

	if err := utils.EnsureParentDirectory(path, outputPermission); err != nil {
		return 0, err
	}
	n, err := renameio.WriteFunc(path, outputPermission.AsUnixFilePermission(), func(w io.Writer) error {
		return ico.EncodeAll(w, frames)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return n, nil
}

// icoSizes validates sizes and returns them de-duplicated, largest first.
func icoSizes(sizes []int) ([]int, error) {
	if len(sizes) == 0 {
		return nil, fmt.Errorf("%w: no icon sizes given", ErrInvalidSize)
	}
	for _, size := range sizes {
		if size <= 0 || size > MaxICOSize {
			return nil, fmt.Errorf("%w: icon size %d is outside of 1-%d", ErrInvalidSize, size, MaxICOSize)
		}
	}

	sorted := slices.Clone(sizes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	slices.Reverse(sorted)
	return sorted, nil
}
