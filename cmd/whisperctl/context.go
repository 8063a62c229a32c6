package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"whisperctl/internal/activity"
	"whisperctl/internal/config"
	"whisperctl/internal/controller"
	"whisperctl/internal/download"
	"whisperctl/internal/logging"
	"whisperctl/internal/notifications"
	"whisperctl/internal/services/whisper"
)

type commandContext struct {
	serverFlag *string
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(serverFlag, configFlag *string) *commandContext {
	return &commandContext{
		serverFlag: serverFlag,
		configFlag: configFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if c.serverFlag != nil {
			if server := strings.TrimRight(strings.TrimSpace(*c.serverFlag), "/"); server != "" {
				cfg.Server.BaseURL = server
				if err := cfg.Validate(); err != nil {
					c.configErr = fmt.Errorf("--server: %w", err)
					return
				}
			}
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// sessionLogger returns the diagnostic logger, tagged with a per-invocation
// session id.
func (c *commandContext) sessionLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.loggerErr = fmt.Errorf("init logger: %w", err)
			return
		}
		c.logger = logging.WithSession(logger, uuid.NewString())
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) serverClient() (*whisper.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return whisper.NewClient(whisper.Config{
		BaseURL:           cfg.Server.BaseURL,
		UserAgent:         cfg.Server.UserAgent,
		RequestTimeout:    cfg.RequestTimeout(),
		TranscribeTimeout: cfg.TranscribeTimeout(),
	}, &http.Client{})
}

func (c *commandContext) newController() (*controller.Controller, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.sessionLogger()
	if err != nil {
		return nil, err
	}
	client, err := c.serverClient()
	if err != nil {
		return nil, err
	}
	return controller.New(controller.Options{
		Server:       client,
		Downloader:   download.NewSaver(cfg.Paths.DownloadDir),
		Notifier:     notifications.NewService(cfg),
		Log:          activity.NewLog(cfg.UI.LogCapacity),
		Banner:       notifications.NewBanner(cfg.NotificationDuration()),
		PollInterval: cfg.PollInterval(),
		DefaultModel: cfg.UI.DefaultModel,
		Logger:       logger,
	})
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
