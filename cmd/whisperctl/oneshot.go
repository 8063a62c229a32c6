package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"whisperctl/internal/activity"
	"whisperctl/internal/controller"
)

var errActionFailed = errors.New("action failed")

type oneShotAction func(ctx context.Context, ctrl *controller.Controller) error

type viewRenderer func(view controller.View, colorize bool) []string

// runOneShot builds a controller, runs action once and prints the resulting
// activity log and banner. Any error entry in the log fails the command.
func runOneShot(cmd *cobra.Command, ctx *commandContext, action oneShotAction, render viewRenderer) error {
	ctrl, err := ctx.newController()
	if err != nil {
		return err
	}
	defer ctrl.Stop()

	actionErr := action(cmd.Context(), ctrl)

	view := ctrl.Snapshot()
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	if render != nil {
		printLines(out, render(view, colorize))
	}
	for _, entry := range view.Log {
		fmt.Fprintln(out, renderEntry(entry, colorize))
	}
	if view.Notice.Visible {
		fmt.Fprintln(out, renderNotice(view.Notice, colorize))
	}

	if actionErr != nil {
		return actionErr
	}
	if hasErrors(view.Log) {
		return errActionFailed
	}
	return nil
}

func hasErrors(entries []activity.Entry) bool {
	for _, entry := range entries {
		if entry.Severity == activity.SeverityError {
			return true
		}
	}
	return false
}
