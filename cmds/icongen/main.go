package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/safing/icongen/base/info"
	"github.com/safing/icongen/base/log"
)

func main() {
	// Let cobra ignore if we are started from the explorer.
	cobra.MousetrapHelpText = ""

	info.Set("icongen", "", "GPLv3")

	if err := newRootCmd().Execute(); err != nil {
		log.Criticalf("icongen: %s", err)
		os.Exit(1)
	}
}
