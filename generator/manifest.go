package generator

import (
	"fmt"
	"path"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/safing/icongen/base/log"
	"github.com/safing/icongen/base/utils"
	"github.com/safing/icongen/raster"
)

type manifestIcon struct {
	Src     string `json:"src"`
	Sizes   string `json:"sizes"`
	Type    string `json:"type"`
	Purpose string `json:"purpose,omitempty"`
}

// WebManifest returns the icon related members of a web app manifest for
// the web target, pretty printed.
func WebManifest(opts *Options) (string, error) {
	// Manifest colors are opaque.
	bg := opts.Background
	if bg.A != 0xFF {
		log.Warningf("generator: manifest background_color ignores the alpha of %s", raster.FormatHexColor(bg))
		bg.A = 0xFF
	}
	manifest, err := sjson.Set("{}", "background_color", raster.FormatHexColor(bg))
	if err != nil {
		return "", err
	}
	manifest, err = sjson.SetRaw(manifest, "icons", "[]")
	if err != nil {
		return "", err
	}

	for _, asset := range Plan(TargetWeb) {
		if !asset.Manifest {
			continue
		}

		sizes := make([]string, 0, len(asset.Sizes))
		for _, size := range asset.Sizes {
			sizes = append(sizes, fmt.Sprintf("%dx%d", size, size))
		}
		mimeType, _ := utils.MimeTypeByExtension(path.Ext(asset.Path))
		icon := manifestIcon{
			Src:   asset.Path,
			Sizes: strings.Join(sizes, " "),
			Type:  mimeType,
		}
		if asset.Maskable {
			icon.Purpose = "maskable"
		}

		manifest, err = sjson.Set(manifest, "icons.-1", icon)
		if err != nil {
			return "", err
		}
	}

	return gjson.Get(manifest, "@pretty").String(), nil
}
