package generator

import (
	"fmt"
	"slices"
)

// Format is the file format of an asset.
type Format uint8

// Formats.
const (
	FormatPNG Format = iota
	FormatICO
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatICO:
		return "ico"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Asset describes one output file.
type Asset struct {
	// Path is the slash-separated path relative to the output directory.
	Path string
	// Sizes holds the pixel sizes of the square image(s) in the file.
	// PNG assets have exactly one size.
	Sizes  []int
	Format Format
	// Maskable assets pad the artwork onto an opaque background with a
	// safe margin.
	Maskable bool
	// Manifest marks assets that belong into the web app manifest.
	Manifest bool
}

var webPlan = []Asset{
	{Path: "favicon.ico", Sizes: []int{16, 32, 48}, Format: FormatICO, Manifest: true},
	{Path: "apple-touch-icon.png", Sizes: []int{180}},
	{Path: "icon-192.png", Sizes: []int{192}, Manifest: true},
	{Path: "icon-512.png", Sizes: []int{512}, Manifest: true},
	{Path: "icon-maskable-512.png", Sizes: []int{512}, Maskable: true, Manifest: true},
}

// macIconset lists the iconset entries in the naming scheme iconutil
// expects. @2x entries double the nominal size.
var macIconset = []struct {
	name string
	size int
}{
	{"icon_16x16.png", 16},
	{"icon_16x16@2x.png", 32},
	{"icon_32x32.png", 32},
	{"icon_32x32@2x.png", 64},
	{"icon_128x128.png", 128},
	{"icon_128x128@2x.png", 256},
	{"icon_256x256.png", 256},
	{"icon_256x256@2x.png", 512},
	{"icon_512x512.png", 512},
	{"icon_512x512@2x.png", 1024},
}

// MacIconsetDir is the iconset directory within the output directory.
const MacIconsetDir = "ue/mac/AppIcon.iconset"

var enginePlan = buildEnginePlan()

func buildEnginePlan() []Asset {
	plan := []Asset{
		{Path: "ue/windows/icon.ico", Sizes: []int{16, 24, 32, 48, 64, 128, 256}, Format: FormatICO},
	}
	for _, entry := range macIconset {
		plan = append(plan, Asset{Path: MacIconsetDir + "/" + entry.name, Sizes: []int{entry.size}})
	}
	return append(plan,
		Asset{Path: "ue/linux/icon-256.png", Sizes: []int{256}},
		Asset{Path: "ue/linux/icon-512.png", Sizes: []int{512}},
	)
}

// Plan returns the assets generated for the given target.
func Plan(t Target) []Asset {
	var plan []Asset
	switch t {
	case TargetWeb:
		plan = webPlan
	case TargetEngine:
		plan = enginePlan
	default:
		return nil
	}

	copied := make([]Asset, len(plan))
	for i, a := range plan {
		a.Sizes = slices.Clone(a.Sizes)
		copied[i] = a
	}
	return copied
}

// MaxSize returns the largest size of the asset.
func (a Asset) MaxSize() int {
	return slices.Max(a.Sizes)
}
