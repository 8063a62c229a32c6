package download

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"whisperctl/internal/textutil"
)

const (
	lockFileName   = ".whisperctl.lock"
	tempPattern    = ".whisperctl-download-*"
	lockRetryDelay = 50 * time.Millisecond
	fallbackName   = "transcript.txt"
)

// Saver writes payloads into a directory.
type Saver struct {
	Dir string
}

// NewSaver constructs a saver rooted at dir.
func NewSaver(dir string) *Saver {
	return &Saver{Dir: dir}
}

// Save streams payload to a file named after name inside the saver
// directory and returns the final path.
func (s *Saver) Save(ctx context.Context, name string, payload io.Reader) (string, error) {
	if s == nil || strings.TrimSpace(s.Dir) == "" {
		return "", errors.New("download directory not configured")
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create download directory: %w", err)
	}

	tempPath, err := writeTemp(s.Dir, payload)
	if err != nil {
		return "", err
	}
	defer os.Remove(tempPath)

	lock := flock.New(filepath.Join(s.Dir, lockFileName))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return "", fmt.Errorf("lock download directory: %w", err)
	}
	if !locked {
		return "", errors.New("lock download directory: not acquired")
	}
	defer lock.Unlock()

	finalPath, err := availablePath(s.Dir, SanitizeName(name))
	if err != nil {
		return "", err
	}
	if err := os.Rename(tempPath, finalPath); err != nil {
		return "", fmt.Errorf("move transcript into place: %w", err)
	}
	return finalPath, nil
}

func writeTemp(dir string, payload io.Reader) (string, error) {
	dest, err := os.CreateTemp(dir, tempPattern)
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := dest.Name()

	if _, err := io.Copy(dest, payload); err != nil {
		dest.Close()
		os.Remove(path)
		return "", fmt.Errorf("write transcript: %w", err)
	}
	if err := dest.Sync(); err != nil {
		dest.Close()
		os.Remove(path)
		return "", fmt.Errorf("sync transcript: %w", err)
	}
	if err := dest.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("close transcript: %w", err)
	}
	if err := os.Chmod(path, 0o644); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("chmod transcript: %w", err)
	}
	return path, nil
}

// availablePath returns dir/name, or the first free "base (n).ext" variant.
func availablePath(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	candidate := filepath.Join(dir, name)
	for counter := 1; ; counter++ {
		info, err := os.Stat(candidate)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return candidate, nil
			}
			return "", fmt.Errorf("stat candidate path: %w", err)
		}
		if info.IsDir() {
			return "", fmt.Errorf("download target %q already exists as directory", candidate)
		}
		candidate = filepath.Join(dir, fmt.Sprintf("%s (%d)%s", base, counter, ext))
	}
}

// SanitizeName reduces name to a single path element safe to create inside
// the download directory.
func SanitizeName(name string) string {
	name = strings.TrimSpace(strings.ReplaceAll(name, "\\", "/"))
	name = textutil.SanitizeFileName(filepath.Base(name))
	if name == "." || name == ".." || name == "/" || name == "" || strings.HasPrefix(name, ".whisperctl") {
		return fallbackName
	}
	return name
}
