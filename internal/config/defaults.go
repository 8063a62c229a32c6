package config

const (
	defaultConfigPath               = "~/.config/whisperctl/config.toml"
	defaultServerURL                = "http://127.0.0.1:5000"
	defaultUserAgent                = "whisperctl/0.1.0"
	defaultRequestTimeoutSeconds    = 10
	defaultTranscribeTimeoutSeconds = 0
	defaultPollIntervalMS           = 2000
	defaultNotificationMS           = 5000
	defaultLogCapacity              = 100
	defaultModel                    = "large-v3"
	defaultDownloadDir              = "~/Downloads/transcripts"
	defaultLogDir                   = "~/.local/share/whisperctl/logs"
	defaultNtfyRequestTimeout       = 10
	defaultLogFormat                = "console"
	defaultLogLevel                 = "info"

	// ServerURLEnv overrides server.base_url when set.
	ServerURLEnv = "WHISPERCTL_SERVER_URL"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			BaseURL:                  defaultServerURL,
			UserAgent:                defaultUserAgent,
			RequestTimeoutSeconds:    defaultRequestTimeoutSeconds,
			TranscribeTimeoutSeconds: defaultTranscribeTimeoutSeconds,
		},
		Monitor: Monitor{
			Enabled:        true,
			PollIntervalMS: defaultPollIntervalMS,
		},
		UI: UI{
			NotificationMS: defaultNotificationMS,
			LogCapacity:    defaultLogCapacity,
			DefaultModel:   defaultModel,
		},
		Paths: Paths{
			DownloadDir: defaultDownloadDir,
			LogDir:      defaultLogDir,
		},
		Notifications: Notifications{
			RequestTimeout: defaultNtfyRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
