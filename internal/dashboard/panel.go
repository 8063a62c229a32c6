package dashboard

import (
	"fmt"

	"whisperctl/internal/services/whisper"
	"whisperctl/internal/textutil"
)

// State is the visual class of the server status field.
type State string

const (
	StateReady      State = "ready"
	StateProcessing State = "processing"
	StateNotReady   State = "not-ready"
)

// Captions shown under the progress bar.
const (
	CaptionReady    = "Ready to process"
	CaptionNotReady = "Server not ready"
	PlaceholderTime = "-"
)

// Panel is the rendered status region plus the progress bar.
type Panel struct {
	StatusText     string
	State          State
	Memory         string
	ProcessingTime string
	Model          string
	Progress       int
	Caption        string

	// Supplementary fields shown in the detail view.
	TaskID       string
	ModelLoaded  bool
	IdleDuration string
}

// NewPanel returns the panel shown before the first snapshot arrives.
func NewPanel(initialModel string) Panel {
	return Panel{
		StatusText:     "Unknown",
		State:          StateNotReady,
		Memory:         "-",
		ProcessingTime: PlaceholderTime,
		Model:          initialModel,
		Caption:        CaptionNotReady,
	}
}

// ClassifyStatus maps a server status string to its visual state. Unknown
// values render as not-ready.
func ClassifyStatus(status string) State {
	switch status {
	case whisper.StatusReady:
		return StateReady
	case whisper.StatusProcessing:
		return StateProcessing
	default:
		return StateNotReady
	}
}

// Apply returns panel updated from snapshot.
//
// The model label only changes when the snapshot names a model. Progress is
// driven by status: Processing shows the reported percentage, Ready and Not
// Ready reset it to zero, and any other status leaves it untouched.
func Apply(panel Panel, snapshot whisper.StatusSnapshot) Panel {
	panel.StatusText = textutil.StripControl(snapshot.Status)
	if panel.StatusText == "" {
		panel.StatusText = "Unknown"
	}
	panel.State = ClassifyStatus(snapshot.Status)
	panel.Memory = FormatMemory(snapshot.MemoryUsageMB)
	panel.ProcessingTime = FormatProcessingTime(snapshot.ProcessingTime)

	if snapshot.CurrentModel != nil && *snapshot.CurrentModel != "" {
		panel.Model = textutil.StripControl(*snapshot.CurrentModel)
	}

	switch snapshot.Status {
	case whisper.StatusProcessing:
		if snapshot.Progress != nil {
			panel.Progress = ClampPercent(*snapshot.Progress)
			panel.Caption = fmt.Sprintf("Processing: %d%%", *snapshot.Progress)
		}
	case whisper.StatusReady:
		panel.Progress = 0
		panel.Caption = CaptionReady
	case whisper.StatusNotReady:
		panel.Progress = 0
		panel.Caption = CaptionNotReady
	}

	panel.TaskID = ""
	if snapshot.CurrentTaskID != nil {
		panel.TaskID = *snapshot.CurrentTaskID
	}
	panel.ModelLoaded = snapshot.ModelLoaded
	panel.IdleDuration = FormatProcessingTime(snapshot.TimeSinceLastUse)
	return panel
}

// FormatMemory renders megabytes with one decimal place.
func FormatMemory(mb float64) string {
	return fmt.Sprintf("%.1f MB", mb)
}

// FormatProcessingTime renders seconds with one decimal place, or the
// placeholder when the server did not report a value.
func FormatProcessingTime(seconds *float64) string {
	if seconds == nil || *seconds == 0 {
		return PlaceholderTime
	}
	return fmt.Sprintf("%.1f sec", *seconds)
}

// ClampPercent bounds a percentage to 0..100 for bar rendering.
func ClampPercent(p int) int {
	switch {
	case p < 0:
		return 0
	case p > 100:
		return 100
	default:
		return p
	}
}
