package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeServer()
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeUI()
	c.normalizeLogging()
	c.Notifications.NtfyTopic = strings.TrimSpace(c.Notifications.NtfyTopic)
	if c.Notifications.RequestTimeout <= 0 {
		c.Notifications.RequestTimeout = defaultNtfyRequestTimeout
	}
	return nil
}

func (c *Config) normalizeServer() {
	if value, ok := os.LookupEnv(ServerURLEnv); ok && strings.TrimSpace(value) != "" {
		c.Server.BaseURL = value
	}
	c.Server.BaseURL = strings.TrimRight(strings.TrimSpace(c.Server.BaseURL), "/")
	c.Server.UserAgent = strings.TrimSpace(c.Server.UserAgent)
	if c.Server.UserAgent == "" {
		c.Server.UserAgent = defaultUserAgent
	}
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.DownloadDir) == "" {
		c.Paths.DownloadDir = defaultDownloadDir
	}
	if c.Paths.DownloadDir, err = expandPath(c.Paths.DownloadDir); err != nil {
		return fmt.Errorf("paths.download_dir: %w", err)
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeUI() {
	c.UI.DefaultModel = strings.TrimSpace(c.UI.DefaultModel)
	if c.UI.DefaultModel == "" {
		c.UI.DefaultModel = defaultModel
	}
	if c.UI.LogCapacity == 0 {
		c.UI.LogCapacity = defaultLogCapacity
	}
	if c.UI.NotificationMS == 0 {
		c.UI.NotificationMS = defaultNotificationMS
	}
	if c.Monitor.PollIntervalMS == 0 {
		c.Monitor.PollIntervalMS = defaultPollIntervalMS
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
