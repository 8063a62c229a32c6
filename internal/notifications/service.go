package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"whisperctl/internal/config"
)

const userAgent = "whisperctl/0.1.0"

// Service defines the push notification surface used by the controller.
type Service interface {
	NotifyTranscriptionCompleted(ctx context.Context, audioName, transcriptPath string, elapsed time.Duration) error
	NotifyTranscriptionFailed(ctx context.Context, audioName string, err error) error
	TestNotification(ctx context.Context) error
}

// NewService builds a notification service backed by ntfy when configured.
// When no ntfy topic is configured, a noop implementation is returned.
func NewService(cfg *config.Config) Service {
	if cfg == nil {
		return noopService{}
	}
	topic := strings.TrimSpace(cfg.Notifications.NtfyTopic)
	if topic == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Notifications.RequestTimeout) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &ntfyService{
		endpoint: topic,
		client:   &http.Client{Timeout: timeout},
	}
}

type payload struct {
	title    string
	message  string
	tags     []string
	priority string
}

type ntfyService struct {
	endpoint string
	client   *http.Client
}

func (n *ntfyService) NotifyTranscriptionCompleted(ctx context.Context, audioName, transcriptPath string, elapsed time.Duration) error {
	audioName = strings.TrimSpace(audioName)
	elapsed = elapsed.Round(time.Second)
	if elapsed < 0 {
		elapsed = 0
	}
	message := fmt.Sprintf("Transcribed %s in %s", audioName, elapsed)
	if transcriptPath = strings.TrimSpace(transcriptPath); transcriptPath != "" {
		message = fmt.Sprintf("%s\nSaved: %s", message, transcriptPath)
	}
	return n.send(ctx, payload{
		title:   "whisperctl - Transcript Ready",
		message: message,
		tags:    []string{"whisperctl", "transcribe", "completed"},
	})
}

func (n *ntfyService) NotifyTranscriptionFailed(ctx context.Context, audioName string, err error) error {
	var builder strings.Builder
	builder.WriteString("Transcription failed")
	if audioName = strings.TrimSpace(audioName); audioName != "" {
		builder.WriteString(" for ")
		builder.WriteString(audioName)
	}
	builder.WriteString(": ")
	if err != nil {
		builder.WriteString(strings.TrimSpace(err.Error()))
	} else {
		builder.WriteString("unknown")
	}
	return n.send(ctx, payload{
		title:    "whisperctl - Error",
		message:  builder.String(),
		tags:     []string{"whisperctl", "error", "alert"},
		priority: "high",
	})
}

func (n *ntfyService) TestNotification(ctx context.Context) error {
	return n.send(ctx, payload{
		title:    "whisperctl - Test",
		message:  "Notification system test",
		tags:     []string{"whisperctl", "test"},
		priority: "low",
	})
}

func (n *ntfyService) send(ctx context.Context, data payload) error {
	if n == nil || n.client == nil {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, strings.NewReader(data.message))
	if err != nil {
		return fmt.Errorf("build ntfy request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")
	if data.title != "" {
		req.Header.Set("Title", data.title)
	}
	if len(data.tags) > 0 {
		req.Header.Set("Tags", strings.Join(data.tags, ","))
	}
	if data.priority != "" && data.priority != "default" {
		req.Header.Set("Priority", data.priority)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send ntfy notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("ntfy returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

type noopService struct{}

func (noopService) NotifyTranscriptionCompleted(context.Context, string, string, time.Duration) error {
	return nil
}
func (noopService) NotifyTranscriptionFailed(context.Context, string, error) error { return nil }
func (noopService) TestNotification(context.Context) error                         { return nil }
