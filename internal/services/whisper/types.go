package whisper

import "io"

// Server status values reported by /status and /health.
const (
	StatusReady      = "Ready"
	StatusProcessing = "Processing"
	StatusNotReady   = "Not Ready"
)

// StatusSnapshot is the full /status payload at one point in time.
type StatusSnapshot struct {
	Status           string   `json:"status"`
	MemoryUsageMB    float64  `json:"memory_usage_mb"`
	CurrentModel     *string  `json:"current_model,omitempty"`
	ProcessingTime   *float64 `json:"processing_time,omitempty"`
	Progress         *int     `json:"progress,omitempty"`
	CurrentTaskID    *string  `json:"current_task_id,omitempty"`
	ModelLoaded      bool     `json:"model_loaded"`
	TimeSinceLastUse *float64 `json:"time_since_last_use,omitempty"`
	Timestamp        float64  `json:"timestamp"`
}

// HealthReport is the /health payload.
type HealthReport struct {
	Status        string  `json:"status"`
	ServerStatus  string  `json:"server_status"`
	MemoryUsageMB float64 `json:"memory_usage_mb"`
	Timestamp     float64 `json:"timestamp"`
}

// ResetResult is the /reset payload.
type ResetResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// TranscribeRequest describes one upload. Audio is streamed into the
// multipart body as the "file" part.
type TranscribeRequest struct {
	FileName string
	Audio    io.Reader
	Model    string
}

// Transcript is a successful /transcribe response. Body must be closed by the
// caller.
type Transcript struct {
	FileName      string
	ContentType   string
	ContentLength int64
	Body          io.ReadCloser
}
