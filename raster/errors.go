package raster

import "errors"

// Errors.
var (
	// ErrInvalidColor is returned for colors not in #RRGGBB or #RRGGBBAA form.
	ErrInvalidColor = errors.New("invalid color")

	// ErrMissingDependency is returned when an input needs a capability,
	// such as vector rasterization, that is not available in this build.
	ErrMissingDependency = errors.New("missing dependency")

	// ErrUnreadableImage is returned when the source image cannot be opened
	// or decoded.
	ErrUnreadableImage = errors.New("unreadable image")

	// ErrInvalidSize is returned for target sizes that cannot be produced.
	ErrInvalidSize = errors.New("invalid size")
)
