package commands

import (
	"github.com/Guardsquare/proguard-sub005/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newFingerprintCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fingerprint",
		Short: "Print a stable digest of the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			contents, _ := cmd.Flags().GetBool("contents")
			return c.app.Fingerprint(cmd.Context(), c.source(), app.FingerprintOptions{Contents: contents})
		},
	}
	cmd.Flags().Bool("contents", false, "Also hash the contents of every input file")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the fingerprint whenever a task document changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			contents, _ := cmd.Flags().GetBool("contents")
			return c.app.Watch(cmd.Context(), c.source(), app.FingerprintOptions{Contents: contents})
		},
	}
	cmd.Flags().Bool("contents", false, "Also hash the contents of every input file")
	return cmd
}
