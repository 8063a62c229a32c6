package notifications_test

import (
	"sync"
	"testing"
	"time"

	"whisperctl/internal/activity"
	"whisperctl/internal/notifications"
)

type fakeTimer struct {
	fn      func()
	d       time.Duration
	stopped bool
}

func (f *fakeTimer) Stop() bool {
	wasActive := !f.stopped
	f.stopped = true
	return wasActive
}

type fakeScheduler struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

func (s *fakeScheduler) after(d time.Duration, fn func()) notifications.Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	timer := &fakeTimer{fn: fn, d: d}
	s.timers = append(s.timers, timer)
	return timer
}

func newTestBanner() (*notifications.Banner, *fakeScheduler) {
	sched := &fakeScheduler{}
	banner := notifications.NewBanner(0)
	banner.SetScheduler(sched.after, func() time.Time { return time.Unix(1000, 0) })
	return banner, sched
}

func TestBannerShowUsesDefaultDuration(t *testing.T) {
	banner, sched := newTestBanner()

	banner.Show("Server reset successfully", activity.SeveritySuccess, 0)

	notice := banner.Current()
	if !notice.Visible || notice.Message != "Server reset successfully" || notice.Severity != activity.SeveritySuccess {
		t.Fatalf("unexpected notice %+v", notice)
	}
	if sched.timers[0].d != notifications.DefaultBannerDuration {
		t.Fatalf("expected default duration, got %s", sched.timers[0].d)
	}
	if !notice.ExpiresAt.Equal(time.Unix(1005, 0)) {
		t.Fatalf("unexpected expiry %v", notice.ExpiresAt)
	}

	sched.timers[0].fn()
	if banner.Current().Visible {
		t.Fatal("expected banner hidden after timer fired")
	}
}

func TestBannerNewestWins(t *testing.T) {
	banner, sched := newTestBanner()

	banner.Show("first", activity.SeverityWarning, 0)
	banner.Show("second", activity.SeverityError, 4*time.Second)

	if !sched.timers[0].stopped {
		t.Fatal("expected first timer to be stopped")
	}
	notice := banner.Current()
	if notice.Message != "second" || notice.Severity != activity.SeverityError {
		t.Fatalf("expected second notice to replace first, got %+v", notice)
	}

	// A stale timer firing must not hide the newer message.
	sched.timers[0].fn()
	if !banner.Current().Visible {
		t.Fatal("stale timer hid the newer notice")
	}

	sched.timers[1].fn()
	if banner.Current().Visible {
		t.Fatal("expected current timer to hide the notice")
	}
}

func TestBannerOnChangeSeesShowAndHide(t *testing.T) {
	banner, sched := newTestBanner()
	var seen []notifications.Notice
	banner.OnChange(func(n notifications.Notice) { seen = append(seen, n) })

	banner.Show("hello", "", 0)
	sched.timers[0].fn()

	if len(seen) != 2 {
		t.Fatalf("expected two change callbacks, got %d", len(seen))
	}
	if !seen[0].Visible || seen[0].Severity != activity.SeverityInfo {
		t.Fatalf("unexpected show callback %+v", seen[0])
	}
	if seen[1].Visible {
		t.Fatalf("expected hide callback, got %+v", seen[1])
	}
}

func TestBannerRealTimerExpires(t *testing.T) {
	banner := notifications.NewBanner(10 * time.Millisecond)
	done := make(chan struct{})
	banner.OnChange(func(n notifications.Notice) {
		if !n.Visible {
			close(done)
		}
	})
	banner.Show("short", activity.SeverityInfo, 0)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("banner did not expire")
	}
}
