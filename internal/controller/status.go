package controller

import (
	"context"
	"fmt"

	"whisperctl/internal/activity"
	"whisperctl/internal/dashboard"
	"whisperctl/internal/logging"
	"whisperctl/internal/services/whisper"
)

// CheckStatus fetches /status once and applies it to the panel.
func (c *Controller) CheckStatus(ctx context.Context) {
	c.log.Info("Checking server status...")

	snapshot, err := c.server.Status(ctx)
	if err != nil {
		if code := whisper.StatusCode(err); code != 0 {
			c.log.Error(fmt.Sprintf("Status check failed: HTTP %d", code))
		} else {
			c.log.Error("Connection error: " + err.Error())
		}
		c.logger.Debug("status check failed", logging.Error(err))
		return
	}

	c.UpdateStatusDisplay(snapshot)
	c.log.Success("Status: " + snapshot.Status)
}

// UpdateStatusDisplay projects snapshot onto the status panel.
func (c *Controller) UpdateStatusDisplay(snapshot whisper.StatusSnapshot) {
	c.mu.Lock()
	c.panel = dashboard.Apply(c.panel, snapshot)
	c.mu.Unlock()
}

// pollStatus is the monitor tick. Failures stay out of the activity log.
func (c *Controller) pollStatus(ctx context.Context) {
	snapshot, err := c.server.Status(ctx)
	if err != nil {
		c.logger.Debug("status poll failed", logging.Error(err))
		return
	}
	c.UpdateStatusDisplay(snapshot)
}

// PerformHealthCheck fetches /health and reports the outcome.
func (c *Controller) PerformHealthCheck(ctx context.Context) {
	c.log.Info("Performing health check...")

	report, err := c.server.Health(ctx)
	if err != nil {
		if code := whisper.StatusCode(err); code != 0 {
			c.log.Error(fmt.Sprintf("Health check failed: HTTP %d", code))
			c.banner.Show("Health check failed", activity.SeverityError, 0)
		} else {
			c.log.Error("Health check error: " + err.Error())
			c.banner.Show("Health check error", activity.SeverityError, 0)
		}
		return
	}

	c.log.Success("Health: " + report.Status)
	c.banner.Show(
		fmt.Sprintf("Server is healthy\nStatus: %s\nMemory: %s", report.ServerStatus, dashboard.FormatMemory(report.MemoryUsageMB)),
		activity.SeveritySuccess,
		0,
	)
}
