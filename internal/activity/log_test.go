package activity_test

import (
	"fmt"
	"testing"
	"time"

	"whisperctl/internal/activity"
)

func TestLogEvictsOldestFirst(t *testing.T) {
	log := activity.NewLog(100)
	for i := 1; i <= 100; i++ {
		log.Info(fmt.Sprintf("entry %d", i))
	}
	if log.Len() != 100 {
		t.Fatalf("expected 100 entries, got %d", log.Len())
	}

	log.Info("entry 101")

	entries := log.Entries()
	if len(entries) != 100 {
		t.Fatalf("expected log capped at 100, got %d", len(entries))
	}
	if entries[0].Message != "entry 2" {
		t.Fatalf("expected oldest entry evicted, first is %q", entries[0].Message)
	}
	if entries[99].Message != "entry 101" {
		t.Fatalf("expected newest entry last, got %q", entries[99].Message)
	}
}

func TestLogNeverExceedsCapacity(t *testing.T) {
	log := activity.NewLog(3)
	for i := 0; i < 50; i++ {
		log.Warning("w")
		if log.Len() > 3 {
			t.Fatalf("log grew to %d entries", log.Len())
		}
	}
}

func TestLogTimestampsAtAppend(t *testing.T) {
	fixed := time.Date(2025, 3, 4, 13, 14, 15, 0, time.Local)
	log := activity.NewLog(0)
	log.SetClock(func() time.Time { return fixed })

	entry := log.Success("Status: Ready")
	if !entry.Timestamp.Equal(fixed) {
		t.Fatalf("unexpected timestamp %v", entry.Timestamp)
	}
	if entry.String() != "[13:14:15] Status: Ready" {
		t.Fatalf("unexpected rendering %q", entry.String())
	}
	if entry.Severity != activity.SeveritySuccess {
		t.Fatalf("unexpected severity %q", entry.Severity)
	}
	if log.Capacity() != activity.DefaultCapacity {
		t.Fatalf("expected default capacity, got %d", log.Capacity())
	}
}

func TestLogSinceAndClear(t *testing.T) {
	log := activity.NewLog(10)
	first := log.Info("one")
	log.Error("two")
	log.Info("three")

	newer := log.Since(first.Seq)
	if len(newer) != 2 || newer[0].Message != "two" {
		t.Fatalf("unexpected Since result %+v", newer)
	}

	log.Clear()
	if log.Len() != 0 {
		t.Fatalf("expected empty log after Clear, got %d", log.Len())
	}
	next := log.Info("Activity log cleared")
	if next.Seq <= first.Seq+2 {
		t.Fatalf("expected sequence to keep increasing, got %d", next.Seq)
	}
}

func TestLogSinkReceivesEntries(t *testing.T) {
	log := activity.NewLog(10)
	var seen []string
	log.AddSink(activity.SinkFunc(func(e activity.Entry) {
		seen = append(seen, string(e.Severity)+":"+e.Message)
	}))

	log.Info("a")
	log.Error("b")

	if len(seen) != 2 || seen[0] != "info:a" || seen[1] != "error:b" {
		t.Fatalf("unexpected sink output %v", seen)
	}
}
