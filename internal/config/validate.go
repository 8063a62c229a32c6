package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"whisperctl/internal/models"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateMonitor(); err != nil {
		return err
	}
	if err := c.validateUI(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateServer() error {
	if c.Server.BaseURL == "" {
		return fmt.Errorf("server.base_url is required. Set %s or edit the config file (create with 'whisperctl config init')", ServerURLEnv)
	}
	parsed, err := url.Parse(c.Server.BaseURL)
	if err != nil {
		return fmt.Errorf("server.base_url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("server.base_url must use http or https, got %q", c.Server.BaseURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("server.base_url must include a host, got %q", c.Server.BaseURL)
	}
	if c.Server.RequestTimeoutSeconds < 0 {
		return errors.New("server.request_timeout must be zero or positive")
	}
	if c.Server.TranscribeTimeoutSeconds < 0 {
		return errors.New("server.transcribe_timeout must be zero or positive")
	}
	return nil
}

func (c *Config) validateMonitor() error {
	if c.Monitor.PollIntervalMS < 100 {
		return errors.New("monitor.poll_interval_ms must be at least 100")
	}
	return nil
}

func (c *Config) validateUI() error {
	if c.UI.LogCapacity < 1 {
		return errors.New("ui.log_capacity must be positive")
	}
	if c.UI.NotificationMS < 0 {
		return errors.New("ui.notification_ms must be zero or positive")
	}
	if !models.Valid(c.UI.DefaultModel) {
		return fmt.Errorf("ui.default_model must be one of %s, got %q", strings.Join(models.IDs(), ", "), c.UI.DefaultModel)
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
