package controller

import (
	"context"
	"fmt"
	"strings"

	"whisperctl/internal/activity"
	"whisperctl/internal/services/whisper"
)

// ShowResetDialog opens the reset confirmation.
func (c *Controller) ShowResetDialog() {
	c.mu.Lock()
	c.resetDialog = true
	c.mu.Unlock()
}

// CancelResetDialog closes the reset confirmation without resetting.
func (c *Controller) CancelResetDialog() {
	c.mu.Lock()
	c.resetDialog = false
	c.mu.Unlock()
}

// ResetDialogOpen reports whether the reset confirmation is showing.
func (c *Controller) ResetDialogOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.resetDialog
}

// ResetServer closes the confirmation and posts /reset.
func (c *Controller) ResetServer(ctx context.Context) {
	c.CancelResetDialog()
	c.log.Warning("Resetting server state...")

	result, err := c.server.Reset(ctx)
	if err != nil {
		if code := whisper.StatusCode(err); code != 0 {
			c.log.Error(fmt.Sprintf("Reset error: HTTP %d", code))
			c.banner.Show("Reset failed", activity.SeverityError, 0)
		} else {
			c.log.Error("Connection error during reset: " + err.Error())
			c.banner.Show("Connection error during reset", activity.SeverityError, 0)
		}
		return
	}

	if !result.Success {
		reason := strings.TrimSpace(result.Error)
		if reason == "" {
			reason = "unknown error"
		}
		message := "Reset error: " + reason
		c.log.Error(message)
		c.banner.Show(message, activity.SeverityError, 0)
		return
	}

	c.log.Success("Server successfully reset")
	c.banner.Show("Server reset successfully", activity.SeveritySuccess, 0)
}
