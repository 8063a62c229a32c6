package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var noMonitor bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Interactive console with background status monitoring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			ctrl, err := ctx.newController()
			if err != nil {
				return err
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			con := newConsole(ctrl, out, shouldColorize(out))
			if cfg.Monitor.Enabled && !noMonitor {
				ctrl.Start(runCtx)
			}
			defer ctrl.Stop()

			err = con.run(runCtx, cmd.InOrStdin())
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().BoolVar(&noMonitor, "no-monitor", false, "Do not poll server status in the background")
	return cmd
}
