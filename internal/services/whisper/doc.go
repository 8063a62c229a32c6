// Package whisper is the HTTP client for the remote Whisper transcription
// server.
//
// It covers the four endpoints the controller uses: GET /status, GET
// /health, POST /reset, and the multipart POST /transcribe upload. Every call
// is a single attempt; non-2xx responses surface as *HTTPError so callers can
// branch on the status code, with ErrServerBusy and ErrCancelled matching the
// server's 429 and 409 responses.
package whisper
