package dashboard_test

import (
	"fmt"
	"testing"

	"whisperctl/internal/dashboard"
	"whisperctl/internal/services/whisper"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }
func stringPtr(v string) *string  { return &v }

func TestApplyProcessingShowsProgress(t *testing.T) {
	for p := 0; p <= 100; p++ {
		panel := dashboard.Apply(dashboard.NewPanel("large-v3"), whisper.StatusSnapshot{
			Status:   whisper.StatusProcessing,
			Progress: intPtr(p),
		})
		if panel.Progress != p {
			t.Fatalf("progress %d: got width %d", p, panel.Progress)
		}
		want := fmt.Sprintf("Processing: %d%%", p)
		if panel.Caption != want {
			t.Fatalf("progress %d: got caption %q want %q", p, panel.Caption, want)
		}
		if panel.State != dashboard.StateProcessing {
			t.Fatalf("unexpected state %q", panel.State)
		}
	}
}

func TestApplyReadyResetsProgress(t *testing.T) {
	start := dashboard.NewPanel("tiny")
	start.Progress = 70
	start.Caption = "Processing: 70%"

	panel := dashboard.Apply(start, whisper.StatusSnapshot{
		Status:   whisper.StatusReady,
		Progress: intPtr(55),
	})
	if panel.Progress != 0 || panel.Caption != dashboard.CaptionReady {
		t.Fatalf("expected reset progress, got %d %q", panel.Progress, panel.Caption)
	}
	if panel.State != dashboard.StateReady {
		t.Fatalf("unexpected state %q", panel.State)
	}
}

func TestApplyNotReadyResetsProgress(t *testing.T) {
	start := dashboard.NewPanel("tiny")
	start.Progress = 40

	panel := dashboard.Apply(start, whisper.StatusSnapshot{Status: whisper.StatusNotReady})
	if panel.Progress != 0 || panel.Caption != dashboard.CaptionNotReady {
		t.Fatalf("expected not-ready reset, got %d %q", panel.Progress, panel.Caption)
	}
}

func TestApplyUnknownStatusLeavesProgress(t *testing.T) {
	start := dashboard.NewPanel("tiny")
	start.Progress = 40
	start.Caption = "Processing: 40%"

	panel := dashboard.Apply(start, whisper.StatusSnapshot{Status: "Loading", Progress: intPtr(90)})
	if panel.Progress != 40 || panel.Caption != "Processing: 40%" {
		t.Fatalf("expected progress untouched, got %d %q", panel.Progress, panel.Caption)
	}
	if panel.State != dashboard.StateNotReady {
		t.Fatalf("expected unknown status to render not-ready, got %q", panel.State)
	}
	if panel.StatusText != "Loading" {
		t.Fatalf("unexpected status text %q", panel.StatusText)
	}
}

func TestApplyProcessingWithoutProgressKeepsBar(t *testing.T) {
	start := dashboard.NewPanel("tiny")
	start.Progress = 20
	start.Caption = "Processing: 20%"

	panel := dashboard.Apply(start, whisper.StatusSnapshot{Status: whisper.StatusProcessing})
	if panel.Progress != 20 || panel.Caption != "Processing: 20%" {
		t.Fatalf("expected bar untouched without progress, got %d %q", panel.Progress, panel.Caption)
	}
}

func TestApplyFormatsFieldsAndKeepsModel(t *testing.T) {
	panel := dashboard.Apply(dashboard.NewPanel("large-v3"), whisper.StatusSnapshot{
		Status:         whisper.StatusReady,
		MemoryUsageMB:  1536.04,
		ProcessingTime: floatPtr(12.345),
		CurrentModel:   stringPtr("turbo"),
	})
	if panel.Memory != "1536.0 MB" {
		t.Fatalf("unexpected memory %q", panel.Memory)
	}
	if panel.ProcessingTime != "12.3 sec" {
		t.Fatalf("unexpected processing time %q", panel.ProcessingTime)
	}
	if panel.Model != "turbo" {
		t.Fatalf("unexpected model %q", panel.Model)
	}

	next := dashboard.Apply(panel, whisper.StatusSnapshot{Status: whisper.StatusReady})
	if next.Model != "turbo" {
		t.Fatalf("model label must not be cleared, got %q", next.Model)
	}
	if next.ProcessingTime != dashboard.PlaceholderTime {
		t.Fatalf("expected placeholder, got %q", next.ProcessingTime)
	}
}

func TestApplyEmptyStatusRendersUnknown(t *testing.T) {
	panel := dashboard.Apply(dashboard.NewPanel(""), whisper.StatusSnapshot{})
	if panel.StatusText != "Unknown" || panel.State != dashboard.StateNotReady {
		t.Fatalf("unexpected panel %+v", panel)
	}
}

func TestClampPercent(t *testing.T) {
	if dashboard.ClampPercent(-5) != 0 || dashboard.ClampPercent(150) != 100 || dashboard.ClampPercent(42) != 42 {
		t.Fatal("unexpected clamp results")
	}
}

func TestApplyStripsControlCharacters(t *testing.T) {
	panel := dashboard.Apply(dashboard.NewPanel("tiny"), whisper.StatusSnapshot{
		Status:       "Warming\x1b[2J up",
		CurrentModel: stringPtr("base\n"),
	})
	if panel.StatusText != "Warming[2J up" || panel.Model != "base" {
		t.Fatalf("unexpected panel text %q / %q", panel.StatusText, panel.Model)
	}
	if panel.State != dashboard.StateNotReady {
		t.Fatalf("unexpected state %q", panel.State)
	}
}
