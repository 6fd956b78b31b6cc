package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/safing/icongen/base/log"
	"github.com/safing/icongen/cmds/cmdbase"
	"github.com/safing/icongen/generator"
	"github.com/safing/icongen/raster"
)

type rootOptions struct {
	flags         generator.Config
	configFile    string
	logLevel      string
	printManifest bool

	// loader is replaced in tests.
	loader *raster.Loader
}

func newRootCmd() *cobra.Command {
	ro := &rootOptions{
		flags:  generator.DefaultConfig(),
		loader: raster.NewLoader(),
	}

	cmd := &cobra.Command{
		Use:   "icongen --input <image> --out <dir>",
		Short: "Generate web/PWA and game engine icon assets from a single source image",
		Long: `Generate icon assets from a single source image, preferably a square 1024x1024 PNG.

Targets:
  web  favicon.ico, apple-touch-icon.png, icon-192.png, icon-512.png, icon-maskable-512.png
  ue   ue/windows/icon.ico, ue/mac/AppIcon.iconset/, ue/linux/icon-256.png, ue/linux/icon-512.png

SVG input is rendered at its declared size. For best results export a 1024x1024 PNG first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.run(cmd)
		},
	}

	flags := cmd.Flags()
	{
		flags.StringVar(&ro.flags.Input, "input", "", "Path to the source image (PNG recommended, SVG supported).")
		flags.StringVar(&ro.flags.Out, "out", "", "Output directory, created if absent.")
		flags.StringVar(&ro.flags.Targets, "targets", generator.DefaultTargets, "Comma-separated targets: web, ue.")
		flags.BoolVar(&ro.flags.NoPad, "no-pad", false, "Do not pad to square. If the input is not square, crop instead.")
		flags.StringVar(&ro.flags.Background, "background", generator.DefaultBackground, "Background color for padding and maskable icons, as #RRGGBB or #RRGGBBAA.")
		flags.Float64Var(&ro.flags.MaskableScale, "maskable-scale", generator.DefaultMaskableScale, "Scale of the artwork inside the maskable icon canvas.")
		flags.StringVar(&ro.flags.Filter, "filter", raster.FilterLanczos, "Resampling filter: "+strings.Join(raster.Filters(), ", ")+".")
		flags.StringVar(&ro.configFile, "config", "", "YAML file with defaults for the flags above.")
		flags.BoolVar(&ro.printManifest, "print-manifest", false, "Print the icons section of a web app manifest to stdout.")
		_ = cmd.MarkFlagFilename("input")
		_ = cmd.MarkFlagDirname("out")
		_ = cmd.MarkFlagFilename("config", "yaml", "yml")
	}

	cmd.PersistentFlags().StringVar(&ro.logLevel, "log", "info", "Set log level to [trace|debug|info|warning|error|critical].")
	cmd.AddCommand(cmdbase.NewVersionCmd())

	return cmd
}

func (ro *rootOptions) run(cmd *cobra.Command) error {
	if err := log.Start(ro.logLevel); err != nil {
		return err
	}

	cfg, err := loadConfig(ro.configFile, ro.flags, cmd.Flags())
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	results, err := generator.Run(opts, ro.loader)
	if err != nil {
		return err
	}

	var total int64
	for _, r := range results {
		total += r.Bytes
	}
	log.Infof(
		"icongen: generated %d files (%s) in %s with %d warnings",
		len(results), humanize.Bytes(uint64(total)), opts.OutDir, log.TotalWarningLogLines(),
	)

	if ro.printManifest {
		if !opts.Targets.Has(generator.TargetWeb) {
			log.Warning("icongen: --print-manifest only applies to the web target")
			return nil
		}
		manifest, err := generator.WebManifest(opts)
		if err != nil {
			return fmt.Errorf("failed to build manifest: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), manifest)
		return err
	}

	return nil
}
