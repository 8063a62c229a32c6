package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"whisperctl/internal/models"
)

func newModelsCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List the models the server accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderModelTable(models.All(), cfg.UI.DefaultModel))
			fmt.Fprintf(out, "* default model (ui.default_model)\n")
			return nil
		},
	}
}
