package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"whisperctl/internal/services/whisper"
)

const serverCheckTimeout = 5 * time.Second

// HealthChecker is the subset of the whisper client used by CheckServer.
type HealthChecker interface {
	Health(ctx context.Context) (whisper.HealthReport, error)
}

// CheckServer verifies the transcription server answers /health.
// It uses a five-second timeout and a single attempt.
func CheckServer(ctx context.Context, server HealthChecker) Result {
	const name = "Whisper server"
	if server == nil {
		return Result{Name: name, Detail: "no client configured"}
	}

	checkCtx, cancel := context.WithTimeout(ctx, serverCheckTimeout)
	defer cancel()

	report, err := server.Health(checkCtx)
	if err != nil {
		return Result{Name: name, Detail: summarizeServerError(err)}
	}
	return Result{
		Name:   name,
		Passed: true,
		Detail: fmt.Sprintf("%s (server %s, %.1f MB)", report.Status, report.ServerStatus, report.MemoryUsageMB),
	}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func summarizeServerError(err error) string {
	if code := whisper.StatusCode(err); code != 0 {
		return fmt.Sprintf("health check failed (HTTP %d)", code)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "health check timed out (server unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "health check timed out (server unreachable)"
	}
	return err.Error()
}
