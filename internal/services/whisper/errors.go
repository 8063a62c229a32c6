package whisper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrServerBusy matches an HTTP 429 from /transcribe.
	ErrServerBusy = errors.New("server busy")
	// ErrCancelled matches an HTTP 409 from /transcribe.
	ErrCancelled = errors.New("processing cancelled")
)

// HTTPError reports a non-2xx response.
type HTTPError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s returned HTTP %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s returned HTTP %d", e.Endpoint, e.StatusCode)
}

// Is lets errors.Is match the busy and cancelled sentinels.
func (e *HTTPError) Is(target error) bool {
	switch target {
	case ErrServerBusy:
		return e.StatusCode == http.StatusTooManyRequests
	case ErrCancelled:
		return e.StatusCode == http.StatusConflict
	}
	return false
}

// StatusCode extracts the HTTP status from err, or 0 when err is not an
// *HTTPError.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

func newHTTPError(endpoint string, statusCode int, body []byte) *HTTPError {
	message := strings.TrimSpace(string(body))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(body, &payload) == nil && payload.Error != "" {
		message = payload.Error
	}
	return &HTTPError{Endpoint: endpoint, StatusCode: statusCode, Message: message}
}
