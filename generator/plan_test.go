package generator

import (
	"path"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebPlan(t *testing.T) {
	t.Parallel()

	var paths []string
	for _, a := range Plan(TargetWeb) {
		paths = append(paths, a.Path)
	}
	assert.Equal(t, []string{
		"favicon.ico",
		"apple-touch-icon.png",
		"icon-192.png",
		"icon-512.png",
		"icon-maskable-512.png",
	}, paths)
}

func TestEnginePlan(t *testing.T) {
	t.Parallel()

	iconset := make(map[string]int)
	var others []string
	for _, a := range Plan(TargetEngine) {
		if path.Dir(a.Path) == MacIconsetDir {
			assert.Equal(t, FormatPNG, a.Format)
			iconset[path.Base(a.Path)] = a.MaxSize()
			continue
		}
		others = append(others, a.Path)
	}

	assert.Equal(t, map[string]int{
		"icon_16x16.png":      16,
		"icon_16x16@2x.png":   32,
		"icon_32x32.png":      32,
		"icon_32x32@2x.png":   64,
		"icon_128x128.png":    128,
		"icon_128x128@2x.png": 256,
		"icon_256x256.png":    256,
		"icon_256x256@2x.png": 512,
		"icon_512x512.png":    512,
		"icon_512x512@2x.png": 1024,
	}, iconset)
	assert.Equal(t, []string{
		"ue/windows/icon.ico",
		"ue/linux/icon-256.png",
		"ue/linux/icon-512.png",
	}, others)
}

func TestPlanReturnsCopies(t *testing.T) {
	t.Parallel()

	plan := Plan(TargetWeb)
	plan[0].Sizes[0] = 1
	plan[1].Path = "changed.png"

	fresh := Plan(TargetWeb)
	assert.Equal(t, []int{16, 32, 48}, fresh[0].Sizes)
	assert.Equal(t, "apple-touch-icon.png", fresh[1].Path)
	assert.Nil(t, Plan("bogus"))
}
