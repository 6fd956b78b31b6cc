package cmdbase

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/safing/icongen/base/info"
)

// NewVersionCmd returns a command that prints the version and build metadata.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version and related metadata.",
		Args:  cobra.NoArgs,
		RunE:  Version,
	}
}

// Version prints the full version to the command output.
func Version(cmd *cobra.Command, args []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), info.FullVersion())
	return err
}
