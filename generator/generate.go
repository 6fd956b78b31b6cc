package generator

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"github.com/safing/icongen/base/log"
	"github.com/safing/icongen/base/utils"
	"github.com/safing/icongen/raster"
)

// Result describes a written asset.
type Result struct {
	Asset
	// File is the path of the written file.
	File string
	// Bytes is the size of the written file.
	Bytes int64
}

// Run loads the source image, normalizes it to a square and generates all
// requested targets. The output directory is created if needed.
// The first failure aborts the run; files written up to then remain.
func Run(opts *Options, loader *raster.Loader) ([]Result, error) {
	if err := utils.EnsureDirectory(opts.OutDir, utils.PublicReadPermission); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	src, err := loader.Load(opts.InputPath)
	if err != nil {
		return nil, err
	}
	b := src.Bounds()
	log.Debugf("generator: loaded %s (%dx%d)", opts.InputPath, b.Dx(), b.Dy())

	square := raster.Square(src, opts.PadToSquare, opts.Background)
	if square != src {
		mode := "cropped"
		if opts.PadToSquare {
			mode = "padded"
		}
		log.Infof("generator: source is %dx%d, %s to %dx%d", b.Dx(), b.Dy(), mode, square.Bounds().Dx(), square.Bounds().Dy())
		if opts.PadToSquare {
			log.Debugf("generator: padding with %s", raster.FormatHexColor(opts.Background))
		}
	}

	return Generate(opts, square)
}

// Generate writes the assets of all requested targets from the square
// source image. src is only read.
func Generate(opts *Options, src *image.NRGBA) ([]Result, error) {
	if b := src.Bounds(); b.Dx() != b.Dy() {
		return nil, fmt.Errorf("%w: source must be square, is %dx%d", raster.ErrInvalidSize, b.Dx(), b.Dy())
	}

	var results []Result
	for _, t := range opts.Targets {
		for _, asset := range Plan(t) {
			result, err := generateAsset(opts, src, asset)
			if err != nil {
				return results, fmt.Errorf("failed to generate %s: %w", asset.Path, err)
			}
			log.Infof("generator: wrote %s (%s)", asset.Path, humanize.Bytes(uint64(result.Bytes)))
			results = append(results, result)
		}
	}
	return results, nil
}

func generateAsset(opts *Options, src *image.NRGBA, asset Asset) (Result, error) {
	file := filepath.Join(opts.OutDir, filepath.FromSlash(asset.Path))
	log.Tracef("generator: rendering %s at %v", asset.Path, asset.Sizes)

	var (
		n   int64
		err error
	)
	switch {
	case asset.Format == FormatICO:
		n, err = raster.WriteICO(src, file, asset.Sizes, opts.Filter)

	case asset.Maskable:
		var img *image.NRGBA
		img, err = raster.FitWithPadding(src, asset.MaxSize(), opts.MaskableScale, opts.Background, opts.Filter)
		if err == nil {
			n, err = raster.WritePNG(img, file)
		}

	default:
		var img *image.NRGBA
		img, err = raster.Resize(src, asset.MaxSize(), opts.Filter)
		if err == nil {
			n, err = raster.WritePNG(img, file)
		}
	}
	if err != nil {
		return Result{}, err
	}

	return Result{
		Asset: asset,
		File:  file,
		Bytes: n,
	}, nil
}
