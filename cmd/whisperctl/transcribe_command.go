package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"whisperctl/internal/controller"
)

func newTranscribeCommand(ctx *commandContext) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "transcribe <audio-file>",
		Short: "Upload an audio file and save the transcript",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOneShot(cmd, ctx, func(runCtx context.Context, ctrl *controller.Controller) error {
				ctrl.SelectFile(args[0])
				if ctrl.SelectedFile() == nil {
					return errActionFailed
				}
				if model = strings.TrimSpace(model); model != "" {
					ctrl.ShowModelDialog()
					if !ctrl.SelectModelCard(model) {
						ctrl.CancelModelDialog()
						return fmt.Errorf("unknown model %q (see `whisperctl models`)", model)
					}
					ctrl.ConfirmModel()
				}
				result := ctrl.StartTranscription(runCtx)
				if result.Outcome != controller.OutcomeCompleted {
					return fmt.Errorf("transcription %s", result.Outcome)
				}
				return nil
			}, nil)
		},
	}
	cmd.Flags().StringVarP(&model, "model", "m", "", "Model to request (defaults to ui.default_model)")
	return cmd
}
