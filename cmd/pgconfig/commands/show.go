package commands

import "github.com/spf13/cobra"

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the resolved configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Show(cmd.Context(), c.source())
		},
	}
}
