package generator

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/hashicorp/go-multierror"

	"github.com/safing/icongen/base/log"
	"github.com/safing/icongen/raster"
)

// Defaults.
const (
	DefaultTargets       = "web"
	DefaultBackground    = "#000000"
	DefaultMaskableScale = 0.80
)

// Config holds the textual settings as given on the command line or in a
// config file.
type Config struct {
	Input         string  `yaml:"input"`
	Out           string  `yaml:"out"`
	Targets       string  `yaml:"targets"`
	NoPad         bool    `yaml:"no_pad"`
	Background    string  `yaml:"background"`
	MaskableScale float64 `yaml:"maskable_scale"`
	Filter        string  `yaml:"filter"`
}

// DefaultConfig returns the config with all defaults set.
func DefaultConfig() Config {
	return Config{
		Targets:       DefaultTargets,
		Background:    DefaultBackground,
		MaskableScale: DefaultMaskableScale,
		Filter:        raster.FilterLanczos,
	}
}

// Options is the validated configuration of a run.
// It must not be changed after creation.
type Options struct {
	InputPath     string
	OutDir        string
	Targets       Targets
	PadToSquare   bool
	Background    color.NRGBA
	MaskableScale float64
	Filter        raster.Filter
}

// Options parses and validates the config. All problems are reported
// together.
func (c Config) Options() (*Options, error) {
	var errs *multierror.Error

	if c.Input == "" {
		errs = multierror.Append(errs, errors.New("no input image given"))
	}
	if c.Out == "" {
		errs = multierror.Append(errs, errors.New("no output directory given"))
	}

	targets, err := ParseTargets(c.Targets)
	if err != nil {
		errs = multierror.Append(errs, err)
	}

	background, err := raster.ParseHexColor(c.Background)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("background: %w", err))
	}

	if math.IsNaN(c.MaskableScale) || math.IsInf(c.MaskableScale, 0) {
		errs = multierror.Append(errs, fmt.Errorf("maskable scale %v is not a number", c.MaskableScale))
	} else if c.MaskableScale < raster.MinContentScale || c.MaskableScale > raster.MaxContentScale {
		log.Warningf(
			"generator: maskable scale %.2f is outside of %.1f-%.1f and will be clamped",
			c.MaskableScale, raster.MinContentScale, raster.MaxContentScale,
		)
	}

	filter, exact := raster.LookupFilter(c.Filter)
	if !exact {
		log.Warningf("generator: resampling filter %q is not available, falling back to %s", c.Filter, filter.Name())
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	if len(targets) == 0 {
		log.Warning("generator: no targets selected, nothing will be generated")
	}

	return &Options{
		InputPath:     c.Input,
		OutDir:        c.Out,
		Targets:       targets,
		PadToSquare:   !c.NoPad,
		Background:    background,
		MaskableScale: c.MaskableScale,
		Filter:        filter,
	}, nil
}
