package preflight

import (
	"context"

	"whisperctl/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes every check applicable to cfg. Directory checks are skipped
// for paths that are not configured.
func RunAll(ctx context.Context, cfg *config.Config, server HealthChecker) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	if server != nil {
		results = append(results, CheckServer(ctx, server))
	}
	if cfg.Paths.DownloadDir != "" {
		results = append(results, CheckDirectoryAccess("Download directory", cfg.Paths.DownloadDir))
	}
	if cfg.Paths.LogDir != "" {
		results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, r := range results {
		if !r.Passed {
			return true
		}
	}
	return false
}
