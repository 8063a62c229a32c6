package main

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"whisperctl/internal/controller"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Fetch and display the server status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(cmd, ctx, func(runCtx context.Context, ctrl *controller.Controller) error {
				ctrl.CheckStatus(runCtx)
				return nil
			}, func(view controller.View, colorize bool) []string {
				return renderPanel(view.Panel, colorize)
			})
		},
	}
}

func newHealthCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Run a server health check",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(cmd, ctx, func(runCtx context.Context, ctrl *controller.Controller) error {
				ctrl.PerformHealthCheck(runCtx)
				return nil
			}, nil)
		},
	}
}

func newResetCommand(ctx *commandContext) *cobra.Command {
	var assumeYes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset server state (unloads the model and cancels in-flight work)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(cmd, ctx, func(runCtx context.Context, ctrl *controller.Controller) error {
				ctrl.ShowResetDialog()
				if !assumeYes && !confirm(cmd, "Reset the server? This unloads the model and cancels any running transcription. [y/N]: ") {
					ctrl.CancelResetDialog()
					fmt.Fprintln(cmd.OutOrStdout(), "Reset cancelled")
					return nil
				}
				ctrl.ResetServer(runCtx)
				return nil
			}, nil)
		},
	}
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	answer, _ := reader.ReadString('\n')
	fmt.Fprintln(cmd.OutOrStdout())
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
