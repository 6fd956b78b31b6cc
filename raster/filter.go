package raster

import (
	"image"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Filter resamples images.
type Filter interface {
	// Name returns the name the filter is registered under.
	Name() string
	// Scale returns a new size×size image resampled from src.
	Scale(src *image.NRGBA, size int) *image.NRGBA
}

// Filter names.
const (
	FilterLanczos    = "lanczos"
	FilterCatmullRom = "catmullrom"
	FilterBiLinear   = "bilinear"
	FilterNearest    = "nearest"
	FilterMitchell   = "mitchell"
	FilterLanczos2   = "lanczos2"
)

// filterPreference is the order in which filters are tried when the
// requested one is not available.
var filterPreference = []string{
	FilterLanczos,
	FilterCatmullRom,
	FilterBiLinear,
}

var (
	filters     = make(map[string]Filter)
	filtersLock sync.RWMutex
)

// lanczos3 is the Lanczos kernel with a = 3. The draw package widens the
// kernel support when downscaling, so every source pixel contributes.
var lanczos3 = &draw.Kernel{
	Support: 3,
	At: func(t float64) float64 {
		if t == 0 {
			return 1
		}
		if t >= 3 {
			return 0
		}
		x := math.Pi * t
		return 3 * math.Sin(x) * math.Sin(x/3) / (x * x)
	},
}

func init() {
	RegisterFilter(&drawFilter{name: FilterLanczos, interp: lanczos3})
	RegisterFilter(&drawFilter{name: FilterCatmullRom, interp: draw.CatmullRom})
	RegisterFilter(&drawFilter{name: FilterBiLinear, interp: draw.BiLinear})
	RegisterFilter(&drawFilter{name: FilterNearest, interp: draw.NearestNeighbor})
	RegisterFilter(&nfntFilter{name: FilterMitchell, interp: resize.MitchellNetravali})
	RegisterFilter(&nfntFilter{name: FilterLanczos2, interp: resize.Lanczos2})
}

// RegisterFilter makes a filter available by its name.
// A filter registered under an existing name replaces the old one.
func RegisterFilter(f Filter) {
	filtersLock.Lock()
	defer filtersLock.Unlock()

	filters[strings.ToLower(f.Name())] = f
}

// Filters returns the names of all registered filters, sorted.
func Filters() []string {
	filtersLock.RLock()
	defer filtersLock.RUnlock()

	names := make([]string, 0, len(filters))
	for name := range filters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultFilter returns the best available filter.
func DefaultFilter() Filter {
	filtersLock.RLock()
	defer filtersLock.RUnlock()

	for _, name := range filterPreference {
		if f, ok := filters[name]; ok {
			return f
		}
	}
	// NearestNeighbor never goes away, but keep this from returning nil.
	return &drawFilter{name: FilterNearest, interp: draw.NearestNeighbor}
}

// LookupFilter returns the filter with the given name.
// An empty name selects the default filter. If the filter is not available,
// the default filter is returned with exact set to false.
func LookupFilter(name string) (f Filter, exact bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultFilter(), true
	}

	filtersLock.RLock()
	f, ok := filters[name]
	filtersLock.RUnlock()
	if ok {
		return f, true
	}
	return DefaultFilter(), false
}

// drawFilter resamples with an interpolator from golang.org/x/image/draw.
type drawFilter struct {
	name   string
	interp draw.Interpolator
}

func (f *drawFilter) Name() string { return f.name }

func (f *drawFilter) Scale(src *image.NRGBA, size int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	f.interp.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// nfntFilter resamples with github.com/nfnt/resize.
type nfntFilter struct {
	name   string
	interp resize.InterpolationFunction
}

func (f *nfntFilter) Name() string { return f.name }

func (f *nfntFilter) Scale(src *image.NRGBA, size int) *image.NRGBA {
	scaled := resize.Resize(uint(size), uint(size), src, f.interp)
	if nrgba, ok := scaled.(*image.NRGBA); ok && nrgba.Bounds().Min == (image.Point{}) {
		return nrgba
	}
	return ToNRGBA(scaled)
}
