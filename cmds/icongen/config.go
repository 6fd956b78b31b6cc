package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/safing/icongen/generator"
)

// loadConfig returns the defaults, overlaid by the config file (if any),
// overlaid by the flags that were set on the command line.
func loadConfig(configFile string, flagValues generator.Config, flags *pflag.FlagSet) (generator.Config, error) {
	cfg := generator.DefaultConfig()

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	if flags.Changed("input") {
		cfg.Input = flagValues.Input
	}
	if flags.Changed("out") {
		cfg.Out = flagValues.Out
	}
	if flags.Changed("targets") {
		cfg.Targets = flagValues.Targets
	}
	if flags.Changed("no-pad") {
		cfg.NoPad = flagValues.NoPad
	}
	if flags.Changed("background") {
		cfg.Background = flagValues.Background
	}
	if flags.Changed("maskable-scale") {
		cfg.MaskableScale = flagValues.MaskableScale
	}
	if flags.Changed("filter") {
		cfg.Filter = flagValues.Filter
	}

	return cfg, nil
}
