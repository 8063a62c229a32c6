package monitor

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"whisperctl/internal/logging"
)

// DefaultInterval is the status poll period.
const DefaultInterval = 2 * time.Second

// PollFunc is invoked on every tick. It runs on the monitor goroutine, so a
// slow poll delays the next tick rather than overlapping with it.
type PollFunc func(ctx context.Context)

// Monitor is a start/stop handle around a periodic poll.
type Monitor struct {
	interval time.Duration
	poll     PollFunc
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New constructs a stopped monitor.
func New(interval time.Duration, poll PollFunc, logger *slog.Logger) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Monitor{
		interval: interval,
		poll:     poll,
		logger:   logging.NewComponentLogger(logger, "monitor"),
	}
}

// Start launches the poll loop. It returns false when the monitor was
// already running.
func (m *Monitor) Start(ctx context.Context) bool {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		return false
	}
	runCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.running = true
	m.wg.Add(1)
	m.mu.Unlock()

	go m.run(runCtx)
	m.logger.Debug("status monitor started", logging.Duration("interval", m.interval))
	return true
}

// Stop cancels the poll loop and waits for it to exit. It returns false when
// the monitor was not running.
func (m *Monitor) Stop() bool {
	m.mu.Lock()
	if !m.running {
		m.mu.Unlock()
		return false
	}
	cancel := m.cancel
	m.running = false
	m.cancel = nil
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
	m.logger.Debug("status monitor stopped")
	return true
}

// Running reports whether the poll loop is active.
func (m *Monitor) Running() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

// Interval returns the poll period.
func (m *Monitor) Interval() time.Duration {
	return m.interval
}

func (m *Monitor) run(ctx context.Context) {
	defer m.wg.Done()
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if m.poll != nil {
				m.poll(ctx)
			}
		}
	}
}
