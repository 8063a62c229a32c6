package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"whisperctl/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check server reachability and local directories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client, err := ctx.serverClient()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			colorize := shouldColorize(out)
			results := preflight.RunAll(cmd.Context(), cfg, client)

			printLines(out, renderSectionHeader("Preflight", colorize))
			for _, result := range results {
				kind := statusOK
				if !result.Passed {
					kind = statusError
				}
				fmt.Fprintln(out, renderStatusLine(result.Name, kind, result.Detail, colorize))
			}
			fmt.Fprintln(out, renderField("Server URL", cfg.Server.BaseURL))
			fmt.Fprintln(out, renderField("Push", pushSummary(cfg.Notifications.NtfyTopic)))

			if preflight.Failed(results) {
				return errors.New("preflight checks failed")
			}
			return nil
		},
	}
}

func pushSummary(topic string) string {
	if topic == "" {
		return "disabled"
	}
	return "ntfy " + topic
}
