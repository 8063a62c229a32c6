package notifications

import (
	"sync"
	"time"

	"whisperctl/internal/activity"
)

// DefaultBannerDuration is how long a banner stays visible when the caller
// does not pick a duration.
const DefaultBannerDuration = 5 * time.Second

// Notice is the banner content at one point in time.
type Notice struct {
	Message   string
	Severity  activity.Severity
	Visible   bool
	ExpiresAt time.Time
}

// Timer is the subset of *time.Timer the banner needs.
type Timer interface {
	Stop() bool
}

// AfterFunc schedules fn after d; it matches time.AfterFunc.
type AfterFunc func(d time.Duration, fn func()) Timer

// Banner is a single transient notification slot.
type Banner struct {
	mu         sync.Mutex
	notice     Notice
	generation uint64
	timer      Timer
	duration   time.Duration
	afterFunc  AfterFunc
	now        func() time.Time
	onChange   func(Notice)
}

// NewBanner constructs a banner with the given default duration.
func NewBanner(defaultDuration time.Duration) *Banner {
	if defaultDuration <= 0 {
		defaultDuration = DefaultBannerDuration
	}
	return &Banner{
		duration: defaultDuration,
		afterFunc: func(d time.Duration, fn func()) Timer {
			return time.AfterFunc(d, fn)
		},
		now: time.Now,
	}
}

// SetScheduler overrides timer scheduling and the clock.
func (b *Banner) SetScheduler(after AfterFunc, now func() time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if after != nil {
		b.afterFunc = after
	}
	if now != nil {
		b.now = now
	}
}

// OnChange registers a callback invoked after every show and dismissal.
func (b *Banner) OnChange(fn func(Notice)) {
	b.mu.Lock()
	b.onChange = fn
	b.mu.Unlock()
}

// Show displays message, replacing any visible notice and restarting the
// dismissal timer. A zero duration uses the banner default.
func (b *Banner) Show(message string, severity activity.Severity, duration time.Duration) {
	if severity == "" {
		severity = activity.SeverityInfo
	}
	if duration <= 0 {
		duration = b.duration
	}

	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.generation++
	gen := b.generation
	b.notice = Notice{
		Message:   message,
		Severity:  severity,
		Visible:   true,
		ExpiresAt: b.now().Add(duration),
	}
	b.timer = b.afterFunc(duration, func() { b.expire(gen) })
	notice := b.notice
	onChange := b.onChange
	b.mu.Unlock()

	if onChange != nil {
		onChange(notice)
	}
}

// expire hides the banner only if no newer Show happened since gen was
// scheduled.
func (b *Banner) expire(gen uint64) {
	b.mu.Lock()
	if gen != b.generation || !b.notice.Visible {
		b.mu.Unlock()
		return
	}
	b.notice.Visible = false
	b.timer = nil
	notice := b.notice
	onChange := b.onChange
	b.mu.Unlock()

	if onChange != nil {
		onChange(notice)
	}
}

// Current returns the banner state.
func (b *Banner) Current() Notice {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.notice
}

// Close stops any pending dismissal timer.
func (b *Banner) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
}
