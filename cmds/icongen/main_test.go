package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/safing/icongen/base/utils"
	"github.com/safing/icongen/generator"
	"github.com/safing/icongen/raster"
)

func writeSource(t *testing.T, dir string, w, h int) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x), G: uint8(y), B: 0xC0, A: 0xFF})
		}
	}
	path := filepath.Join(dir, "icon.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	require.NoError(t, png.Encode(f, img))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(append(args, "--log", "error"))
	err := cmd.Execute()
	return stdout.String(), err
}

func TestUnknownTargetWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "dist")
	_, err := execute(t, "--input", writeSource(t, dir, 64, 64), "--out", out, "--targets", "bogus")
	require.ErrorIs(t, err, generator.ErrUnknownTarget)
	assert.NoDirExists(t, out)
}

func TestInvalidColorWritesNothing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "dist")
	_, err := execute(t, "--input", writeSource(t, dir, 64, 64), "--out", out, "--background", "#abc")
	require.ErrorIs(t, err, raster.ErrInvalidColor)
	assert.NoDirExists(t, out)
}

func TestOutputOnExistingFileKeepsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeSource(t, dir, 64, 64)

	// Output pointing at the source image.
	_, err := execute(t, "--input", input, "--out", input)
	require.ErrorIs(t, err, utils.ErrNotADirectory)
	f, err := os.Open(input)
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()
	_, err = png.Decode(f)
	require.NoError(t, err)

	// Output pointing at an unrelated file.
	notes := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(notes, []byte("keep me"), 0o600))
	_, err = execute(t, "--input", input, "--out", notes)
	require.ErrorIs(t, err, utils.ErrNotADirectory)
	data, err := os.ReadFile(notes)
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestErrorsAreLeftToMain(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	stderr := &bytes.Buffer{}
	cmd.SetOut(io.Discard)
	cmd.SetErr(stderr)
	cmd.SetArgs([]string{"--targets", "bogus", "--log", "error"})
	require.Error(t, cmd.Execute())
	assert.Empty(t, stderr.String())
}

func TestMissingRequiredFlags(t *testing.T) {
	t.Parallel()

	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no input image given")
	assert.Contains(t, err.Error(), "no output directory given")
}

func TestGenerateWebWithManifest(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	out := filepath.Join(dir, "dist")
	stdout, err := execute(t,
		"--input", writeSource(t, dir, 300, 200),
		"--out", out,
		"--background", "#FFFFFF",
		"--maskable-scale", "0.5",
		"--print-manifest",
	)
	require.NoError(t, err)

	for _, name := range []string{"favicon.ico", "apple-touch-icon.png", "icon-192.png", "icon-512.png", "icon-maskable-512.png"} {
		assert.FileExists(t, filepath.Join(out, name))
	}
	assert.NoDirExists(t, filepath.Join(out, "ue"))

	require.True(t, gjson.Valid(stdout))
	assert.Equal(t, "#ffffff", gjson.Get(stdout, "background_color").String())
	assert.Equal(t, int64(4), gjson.Get(stdout, "icons.#").Int())
}

func TestGenerateFromConfigFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	input := writeSource(t, dir, 128, 128)
	out := filepath.Join(dir, "dist")
	configFile := filepath.Join(dir, "icongen.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte(
		"input: "+input+"\n"+
			"out: "+out+"\n"+
			"targets: web\n"+
			"filter: catmullrom\n",
	), 0o600))

	// The flag overrides the config file.
	_, err := execute(t, "--config", configFile, "--targets", "ue")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "ue", "windows", "icon.ico"))
	assert.NoFileExists(t, filepath.Join(out, "favicon.ico"))
}

func TestConfigFileErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, err := execute(t, "--config", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	configFile := filepath.Join(dir, "icongen.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("colour: red\n"), 0o600))
	_, err = execute(t, "--config", configFile)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Parallel()

	cmd := newRootCmd()
	cfg, err := loadConfig("", generator.Config{Targets: "ignored"}, cmd.Flags())
	require.NoError(t, err)
	assert.Equal(t, generator.DefaultConfig(), cfg)
}

func TestVersionCommand(t *testing.T) {
	t.Parallel()

	stdout, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "icongen")
}
