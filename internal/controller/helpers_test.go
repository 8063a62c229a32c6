package controller_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"whisperctl/internal/activity"
	"whisperctl/internal/controller"
	"whisperctl/internal/notifications"
	"whisperctl/internal/services/whisper"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type fakeServer struct {
	mu          sync.Mutex
	statusCalls int
	healthCalls int
	resetCalls  int
	uploads     []whisper.TranscribeRequest
	uploadData  []string

	status     func() (whisper.StatusSnapshot, error)
	health     func() (whisper.HealthReport, error)
	reset      func() (whisper.ResetResult, error)
	transcribe func() (*whisper.Transcript, error)
}

func (f *fakeServer) Status(context.Context) (whisper.StatusSnapshot, error) {
	f.mu.Lock()
	f.statusCalls++
	fn := f.status
	f.mu.Unlock()
	if fn == nil {
		return whisper.StatusSnapshot{Status: whisper.StatusReady}, nil
	}
	return fn()
}

func (f *fakeServer) Health(context.Context) (whisper.HealthReport, error) {
	f.mu.Lock()
	f.healthCalls++
	fn := f.health
	f.mu.Unlock()
	if fn == nil {
		return whisper.HealthReport{Status: "healthy", ServerStatus: whisper.StatusReady}, nil
	}
	return fn()
}

func (f *fakeServer) Reset(context.Context) (whisper.ResetResult, error) {
	f.mu.Lock()
	f.resetCalls++
	fn := f.reset
	f.mu.Unlock()
	if fn == nil {
		return whisper.ResetResult{Success: true}, nil
	}
	return fn()
}

func (f *fakeServer) Transcribe(_ context.Context, req whisper.TranscribeRequest) (*whisper.Transcript, error) {
	data, _ := io.ReadAll(req.Audio)
	f.mu.Lock()
	f.uploads = append(f.uploads, req)
	f.uploadData = append(f.uploadData, string(data))
	fn := f.transcribe
	f.mu.Unlock()
	if fn == nil {
		return &whisper.Transcript{
			FileName: whisper.DefaultTranscriptName,
			Body:     io.NopCloser(strings.NewReader("hello world")),
		}, nil
	}
	return fn()
}

func (f *fakeServer) uploadCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.uploads)
}

func (f *fakeServer) statusCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.statusCalls
}

type savedFile struct {
	name    string
	payload string
}

type fakeDownloader struct {
	mu    sync.Mutex
	saves []savedFile
	err   error
}

func (d *fakeDownloader) Save(_ context.Context, name string, payload io.Reader) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	data, err := io.ReadAll(payload)
	if err != nil {
		return "", err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.saves = append(d.saves, savedFile{name: name, payload: string(data)})
	return "/downloads/" + name, nil
}

func (d *fakeDownloader) count() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.saves)
}

type fakeTimer struct{}

func (fakeTimer) Stop() bool { return true }

type recordingNotifier struct {
	mu        sync.Mutex
	completed []string
	failed    []string
}

func (r *recordingNotifier) NotifyTranscriptionCompleted(_ context.Context, audioName, _ string, _ time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = append(r.completed, audioName)
	return nil
}

func (r *recordingNotifier) NotifyTranscriptionFailed(_ context.Context, audioName string, _ error) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failed = append(r.failed, audioName)
	return nil
}

func (r *recordingNotifier) TestNotification(context.Context) error { return nil }

type harness struct {
	ctrl       *controller.Controller
	server     *fakeServer
	downloader *fakeDownloader
	notifier   *recordingNotifier
	banner     *notifications.Banner
	log        *activity.Log
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	server := &fakeServer{}
	downloader := &fakeDownloader{}
	notifier := &recordingNotifier{}

	banner := notifications.NewBanner(notifications.DefaultBannerDuration)
	banner.SetScheduler(func(time.Duration, func()) notifications.Timer { return fakeTimer{} }, func() time.Time { return testNow })
	log := activity.NewLog(activity.DefaultCapacity)
	log.SetClock(func() time.Time { return testNow })

	ctrl, err := controller.New(controller.Options{
		Server:       server,
		Downloader:   downloader,
		Notifier:     notifier,
		Log:          log,
		Banner:       banner,
		PollInterval: 10 * time.Millisecond,
		Clock:        func() time.Time { return testNow },
	})
	if err != nil {
		t.Fatalf("controller.New: %v", err)
	}
	t.Cleanup(ctrl.Stop)
	return &harness{ctrl: ctrl, server: server, downloader: downloader, notifier: notifier, banner: banner, log: log}
}

func (h *harness) lastEntry(t *testing.T) activity.Entry {
	t.Helper()
	entries := h.log.Entries()
	if len(entries) == 0 {
		t.Fatal("expected at least one log entry")
	}
	return entries[len(entries)-1]
}

func (h *harness) requireEntry(t *testing.T, severity activity.Severity, message string) {
	t.Helper()
	for _, entry := range h.log.Entries() {
		if entry.Message == message && entry.Severity == severity {
			return
		}
	}
	t.Fatalf("missing %s log entry %q in %v", severity, message, h.log.Entries())
}

func (h *harness) requireNotice(t *testing.T, severity activity.Severity, message string) {
	t.Helper()
	notice := h.banner.Current()
	if !notice.Visible || notice.Severity != severity || notice.Message != message {
		t.Fatalf("unexpected notice %+v, want %s %q", notice, severity, message)
	}
}

func httpError(endpoint string, code int) error {
	return &whisper.HTTPError{Endpoint: endpoint, StatusCode: code}
}

var errRefused = errors.New("dial tcp 127.0.0.1:5000: connect: connection refused")

func ptr[T any](v T) *T { return &v }
