package commands

import (
	"github.com/Guardsquare/proguard-sub005/internal/app"
	"github.com/spf13/cobra"
)

func (c *CLI) newInputsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputs",
		Short: "List every file the configuration reads",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			check, _ := cmd.Flags().GetBool("check")
			return c.app.Inputs(cmd.Context(), c.source(), app.InputsOptions{Check: check})
		},
	}
	cmd.Flags().Bool("check", false, "Fail when an input file does not exist")
	return cmd
}

func (c *CLI) newOutputsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "outputs",
		Short: "List every file the configuration writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Outputs(cmd.Context(), c.source())
		},
	}
}
