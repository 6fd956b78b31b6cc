package raster

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	ico "github.com/sergeymakinen/go-ico"

	// Additional raster decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// VectorRasterizer renders a vector image at its declared size.
type VectorRasterizer interface {
	Rasterize(r io.Reader) (image.Image, error)
}

// defaultVectorRasterizer is set by builds that include SVG support.
var defaultVectorRasterizer VectorRasterizer

// Loader loads source images.
type Loader struct {
	// Vector renders vector sources. If nil, loading a vector source fails
	// with ErrMissingDependency.
	Vector VectorRasterizer
}

// NewLoader returns a loader with all capabilities of this build.
func NewLoader() *Loader {
	return &Loader{
		Vector: defaultVectorRasterizer,
	}
}

// IsVector returns whether the path names a vector image.
func IsVector(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".svg")
}

// Load reads the image at path and returns it as NRGBA.
func (l *Loader) Load(path string) (*image.NRGBA, error) {
	var (
		img image.Image
		err error
	)
	switch {
	case IsVector(path):
		img, err = l.loadVector(path)
	case strings.EqualFold(filepath.Ext(path), ".ico"):
		img, err = loadICO(path)
	default:
		img, err = gg.LoadImage(path)
		if err != nil {
			err = fmt.Errorf("%w %s: %w", ErrUnreadableImage, path, err)
		}
	}
	if err != nil {
		return nil, err
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w %s: image is empty", ErrUnreadableImage, path)
	}
	return ToNRGBA(img), nil
}

func (l *Loader) loadVector(path string) (image.Image, error) {
	if l.Vector == nil {
		return nil, fmt.Errorf(
			"%w: %s is an SVG, but this build has no SVG rasterizer; rebuild without the nosvg tag or export it to a 1024x1024 PNG first",
			ErrMissingDependency, path,
		)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadableImage, path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, err := l.Vector.Rasterize(f)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadableImage, path, err)
	}
	return img, nil
}

func loadICO(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadableImage, path, err)
	}

	// Decode with the ICO decoder directly: format sniffing through
	// image.Decode fails on some icons that contain cursor data.
	img, err := ico.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrUnreadableImage, path, err)
	}
	return img, nil
}
