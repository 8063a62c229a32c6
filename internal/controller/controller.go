package controller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"whisperctl/internal/activity"
	"whisperctl/internal/dashboard"
	"whisperctl/internal/logging"
	"whisperctl/internal/models"
	"whisperctl/internal/monitor"
	"whisperctl/internal/notifications"
	"whisperctl/internal/services/whisper"
)

// Transcribe control labels.
const (
	LabelIdle       = "Start Transcription"
	LabelProcessing = "Processing..."
)

// ModelNoticeDuration is how long the model-selected banner stays visible.
const ModelNoticeDuration = 4 * time.Second

// ServerAPI is the transcription server surface the controller drives.
type ServerAPI interface {
	Status(ctx context.Context) (whisper.StatusSnapshot, error)
	Health(ctx context.Context) (whisper.HealthReport, error)
	Reset(ctx context.Context) (whisper.ResetResult, error)
	Transcribe(ctx context.Context, req whisper.TranscribeRequest) (*whisper.Transcript, error)
}

// Downloader stores a transcript payload and returns where it landed.
type Downloader interface {
	Save(ctx context.Context, name string, payload io.Reader) (string, error)
}

// SelectedFile is the audio file chosen for the next transcription.
type SelectedFile struct {
	Path string
	Name string
	Size int64
}

// TranscribeControl is the state of the transcribe action.
type TranscribeControl struct {
	Enabled bool
	Label   string
}

// ModelDialog is the model picker state.
type ModelDialog struct {
	Open     bool
	Cards    []models.Card
	Selected string
}

// View is a point-in-time copy of everything a renderer shows.
type View struct {
	Panel           dashboard.Panel
	SelectedFile    *SelectedFile
	Control         TranscribeControl
	ResetDialogOpen bool
	ModelDialog     ModelDialog
	Notice          notifications.Notice
	Log             []activity.Entry
	Monitoring      bool
	Transcribing    bool
	UploadModel     string
}

// Options configures a Controller. Server and Downloader are required.
type Options struct {
	Server       ServerAPI
	Downloader   Downloader
	Notifier     notifications.Service
	Log          *activity.Log
	Banner       *notifications.Banner
	PollInterval time.Duration
	DefaultModel string
	Logger       *slog.Logger
	Clock        func() time.Time
}

// Controller is the single owner of view state.
type Controller struct {
	server     ServerAPI
	downloader Downloader
	notifier   notifications.Service
	log        *activity.Log
	banner     *notifications.Banner
	monitor    *monitor.Monitor
	logger     *slog.Logger
	now        func() time.Time
	actions    map[string]Handler

	mu           sync.Mutex
	panel        dashboard.Panel
	selected     *SelectedFile
	control      TranscribeControl
	resetDialog  bool
	modelDialog  ModelDialog
	transcribing bool
	// chosenModel is the confirmed picker choice. Status polls rewrite the
	// panel label, so the choice is kept here until an upload carries it.
	chosenModel  string
}

// New constructs a controller. The status monitor is created stopped.
func New(opts Options) (*Controller, error) {
	if opts.Server == nil {
		return nil, errors.New("controller: server client is required")
	}
	if opts.Downloader == nil {
		return nil, errors.New("controller: downloader is required")
	}
	if opts.Log == nil {
		opts.Log = activity.NewLog(activity.DefaultCapacity)
	}
	if opts.Banner == nil {
		opts.Banner = notifications.NewBanner(notifications.DefaultBannerDuration)
	}
	if opts.Notifier == nil {
		opts.Notifier = notifications.NewService(nil)
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.DefaultModel == "" {
		opts.DefaultModel = models.DefaultID
	}

	c := &Controller{
		server:     opts.Server,
		downloader: opts.Downloader,
		notifier:   opts.Notifier,
		log:        opts.Log,
		banner:     opts.Banner,
		logger:     logging.NewComponentLogger(opts.Logger, "controller"),
		now:        opts.Clock,
		panel:      dashboard.NewPanel(opts.DefaultModel),
		control:    TranscribeControl{Label: LabelIdle},
	}
	c.monitor = monitor.New(opts.PollInterval, c.pollStatus, opts.Logger)
	c.actions = c.buildActions()
	return c, nil
}

// Start begins status monitoring and records the session start.
func (c *Controller) Start(ctx context.Context) {
	c.StartMonitoring(ctx)
	c.log.Info("Interface initialized")
}

// Stop halts monitoring and cancels any pending banner dismissal.
func (c *Controller) Stop() {
	c.StopMonitoring()
	c.banner.Close()
}

// Log exposes the activity log for renderers that follow it incrementally.
func (c *Controller) Log() *activity.Log {
	return c.log
}

// Banner exposes the notification banner for change subscriptions.
func (c *Controller) Banner() *notifications.Banner {
	return c.banner
}

// Snapshot returns a copy of the current view state.
func (c *Controller) Snapshot() View {
	c.mu.Lock()
	view := View{
		Panel:           c.panel,
		Control:         c.control,
		ResetDialogOpen: c.resetDialog,
		ModelDialog:     c.modelDialog,
		Transcribing:    c.transcribing,
		UploadModel:     c.uploadModelLocked(),
	}
	if c.selected != nil {
		selected := *c.selected
		view.SelectedFile = &selected
	}
	view.ModelDialog.Cards = append([]models.Card(nil), c.modelDialog.Cards...)
	c.mu.Unlock()

	view.Notice = c.banner.Current()
	view.Log = c.log.Entries()
	view.Monitoring = c.monitor.Running()
	return view
}

// Notify shows a banner message. A zero duration uses the banner default.
func (c *Controller) Notify(message string, severity activity.Severity, duration time.Duration) {
	c.banner.Show(message, severity, duration)
}

// ClearLog empties the activity log and records that it was cleared.
func (c *Controller) ClearLog() {
	c.log.Clear()
	c.log.Info("Activity log cleared")
}

// StartMonitoring launches the background status poll. It returns false when
// monitoring was already active.
func (c *Controller) StartMonitoring(ctx context.Context) bool {
	if !c.monitor.Start(ctx) {
		return false
	}
	c.log.Info("Automatic status monitoring started")
	return true
}

// StopMonitoring halts the background status poll. It returns false when
// monitoring was not active.
func (c *Controller) StopMonitoring() bool {
	if !c.monitor.Stop() {
		return false
	}
	c.log.Info("Automatic status monitoring stopped")
	return true
}

// Monitoring reports whether the background poll is active.
func (c *Controller) Monitoring() bool {
	return c.monitor.Running()
}

func (c *Controller) warn(message string) {
	c.banner.Show(message, activity.SeverityWarning, 0)
}
