package whisper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"whisperctl/internal/services"
)

const (
	defaultUserAgent = "whisperctl/0.1.0"
	maxErrorBody     = 4096

	// DefaultTranscriptName is used when /transcribe omits a usable filename.
	DefaultTranscriptName = "transcript.txt"
)

// HTTPDoer describes the HTTP client used by the whisper client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config configures a Client.
type Config struct {
	BaseURL           string
	UserAgent         string
	RequestTimeout    time.Duration
	TranscribeTimeout time.Duration
}

// Client issues single-attempt calls against the transcription server.
type Client struct {
	baseURL           string
	userAgent         string
	requestTimeout    time.Duration
	transcribeTimeout time.Duration
	http              HTTPDoer
}

// NewClient constructs a client. A nil doer falls back to http.DefaultClient.
func NewClient(cfg Config, doer HTTPDoer) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("whisper client: base url is required")
	}
	if doer == nil {
		doer = http.DefaultClient
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		baseURL:           baseURL,
		userAgent:         userAgent,
		requestTimeout:    cfg.RequestTimeout,
		transcribeTimeout: cfg.TranscribeTimeout,
		http:              doer,
	}, nil
}

// BaseURL returns the normalized server address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Status fetches the current server snapshot.
func (c *Client) Status(ctx context.Context) (StatusSnapshot, error) {
	var snapshot StatusSnapshot
	err := c.doJSON(ctx, http.MethodGet, "/status", &snapshot)
	return snapshot, err
}

// Health fetches the health report.
func (c *Client) Health(ctx context.Context) (HealthReport, error) {
	var report HealthReport
	err := c.doJSON(ctx, http.MethodGet, "/health", &report)
	return report, err
}

// Reset asks the server to drop its model and cancel in-flight work. A
// 2xx response with success=false is returned as a ResetResult, not an error.
func (c *Client) Reset(ctx context.Context) (ResetResult, error) {
	var result ResetResult
	err := c.doJSON(ctx, http.MethodPost, "/reset", &result)
	return result, err
}

// Transcribe uploads audio and returns the transcript stream. The upload is
// streamed through a pipe so large files are never buffered in memory.
func (c *Client) Transcribe(ctx context.Context, req TranscribeRequest) (*Transcript, error) {
	if req.Audio == nil {
		return nil, fmt.Errorf("transcribe: audio is required")
	}
	fileName := filepath.Base(strings.TrimSpace(req.FileName))
	if fileName == "." || fileName == string(filepath.Separator) {
		return nil, fmt.Errorf("transcribe: file name is required")
	}

	callCtx, cancel := withOptionalTimeout(ctx, c.transcribeTimeout)

	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)
	go func() {
		pw.CloseWithError(writeTranscribeForm(writer, fileName, req))
	}()

	httpReq, err := c.newRequest(callCtx, http.MethodPost, "/transcribe", pr)
	if err != nil {
		cancel()
		pr.Close()
		return nil, err
	}
	httpReq.Header.Set("Content-Type", writer.FormDataContentType())
	httpReq.Header.Set("Accept", "application/octet-stream, text/plain, application/json")

	resp, err := c.http.Do(httpReq)
	if err != nil {
		cancel()
		pr.Close()
		return nil, fmt.Errorf("transcribe: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer cancel()
		defer pr.Close()
		defer resp.Body.Close()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, newHTTPError("/transcribe", resp.StatusCode, body)
	}

	return &Transcript{
		FileName:      ParseContentDisposition(resp.Header.Get("Content-Disposition")),
		ContentType:   resp.Header.Get("Content-Type"),
		ContentLength: resp.ContentLength,
		Body:          &cancelOnClose{ReadCloser: resp.Body, cancel: cancel},
	}, nil
}

func writeTranscribeForm(writer *multipart.Writer, fileName string, req TranscribeRequest) error {
	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, req.Audio); err != nil {
		return fmt.Errorf("write audio data: %w", err)
	}
	if model := strings.TrimSpace(req.Model); model != "" {
		if err := writer.WriteField("model", model); err != nil {
			return fmt.Errorf("write model field: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, endpoint string, out any) error {
	callCtx, cancel := withOptionalTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := c.newRequest(callCtx, method, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", strings.ToLower(method), endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return newHTTPError(endpoint, resp.StatusCode, body)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", endpoint, err)
	}
	return nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	requestID, ok := services.RequestIDFromContext(ctx)
	if !ok {
		requestID = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", requestID)
	return req, nil
}

func withOptionalTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}

var dispositionFilename = regexp.MustCompile(`filename="?([^";]+)"?`)

// ParseContentDisposition extracts the attachment filename from a
// Content-Disposition header, accepting both quoted and bare values. It falls
// back to DefaultTranscriptName when the header is absent or unusable, and
// strips any directory components the server may have sent.
func ParseContentDisposition(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return DefaultTranscriptName
	}

	var name string
	if _, params, err := mime.ParseMediaType(header); err == nil {
		name = params["filename"]
	}
	if name == "" {
		if match := dispositionFilename.FindStringSubmatch(header); match != nil {
			name = match[1]
		}
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return DefaultTranscriptName
	}
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return DefaultTranscriptName
	}
	return name
}
