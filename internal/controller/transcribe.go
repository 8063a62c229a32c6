package controller

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"whisperctl/internal/activity"
	"whisperctl/internal/logging"
	"whisperctl/internal/services"
	"whisperctl/internal/services/whisper"
)

// Outcome classifies how a transcription attempt ended.
type Outcome string

const (
	OutcomeCompleted Outcome = "completed"
	OutcomeRejected  Outcome = "rejected"
	OutcomeBusy      Outcome = "busy"
	OutcomeCancelled Outcome = "cancelled"
	OutcomeFailed    Outcome = "failed"
)

// TranscriptionResult describes a finished attempt.
type TranscriptionResult struct {
	Outcome        Outcome
	TranscriptName string
	TranscriptPath string
}

// StartTranscription uploads the selected file with the displayed model and
// saves the returned transcript. It blocks until the attempt finishes; every
// outcome is reported through the log and the banner.
func (c *Controller) StartTranscription(ctx context.Context) TranscriptionResult {
	c.mu.Lock()
	if c.selected == nil {
		c.mu.Unlock()
		c.warn("Please select an audio file first")
		return TranscriptionResult{Outcome: OutcomeRejected}
	}
	if c.transcribing {
		c.mu.Unlock()
		c.log.Warning("Transcription already in progress")
		c.warn("A transcription is already in progress")
		return TranscriptionResult{Outcome: OutcomeRejected}
	}
	c.transcribing = true
	file := *c.selected
	c.mu.Unlock()

	if !c.serverAvailable(ctx) {
		c.finishTranscription()
		return TranscriptionResult{Outcome: OutcomeRejected}
	}

	audio, err := os.Open(file.Path)
	if err != nil {
		c.finishTranscription()
		c.log.Error(fmt.Sprintf("Cannot open %s: %v", file.Name, err))
		c.banner.Show("Cannot open selected file", activity.SeverityError, 0)
		return TranscriptionResult{Outcome: OutcomeRejected}
	}
	defer audio.Close()

	c.mu.Lock()
	model := c.uploadModelLocked()
	c.control = TranscribeControl{Enabled: false, Label: LabelProcessing}
	c.mu.Unlock()
	defer c.finishTranscription()

	c.log.Info(fmt.Sprintf("Starting transcription: %s with model: %s", file.Name, model))
	started := c.now()
	ctx = services.WithRequestID(services.WithOperation(ctx, "transcribe"), uuid.NewString())
	logger := logging.WithContext(ctx, c.logger).With(
		logging.String("file", file.Name),
		logging.Int64("bytes", file.Size),
		logging.String("model", model),
	)

	transcript, err := c.server.Transcribe(ctx, whisper.TranscribeRequest{
		FileName: file.Name,
		Audio:    audio,
		Model:    model,
	})
	if err != nil {
		return c.reportTranscribeError(ctx, logger, file.Name, err)
	}
	defer transcript.Body.Close()
	c.consumeChosenModel(model)

	path, err := c.downloader.Save(ctx, transcript.FileName, transcript.Body)
	if err != nil {
		logger.Warn("transcript save failed", logging.Error(err))
		c.log.Error(fmt.Sprintf("Failed to save transcript: %v", err))
		c.banner.Show("Failed to save transcript", activity.SeverityError, 0)
		c.pushFailure(ctx, file.Name, err)
		return TranscriptionResult{Outcome: OutcomeFailed, TranscriptName: transcript.FileName}
	}

	elapsed := c.now().Sub(started)
	logger.Info("transcription completed", logging.String("path", path), logging.Duration("elapsed", elapsed))
	c.log.Success("Transcription completed: " + transcript.FileName)
	c.log.Info("Transcript saved: " + path)
	c.banner.Show("Transcription completed successfully", activity.SeveritySuccess, 0)
	if err := c.notifier.NotifyTranscriptionCompleted(ctx, file.Name, path, elapsed); err != nil {
		logging.WarnWithContext(logger, "push notification failed", "push_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check notifications.ntfy_topic"))
	}
	return TranscriptionResult{Outcome: OutcomeCompleted, TranscriptName: transcript.FileName, TranscriptPath: path}
}

// Transcribing reports whether an upload is in flight.
func (c *Controller) Transcribing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.transcribing
}

// serverAvailable runs the pre-upload status check. Only a transport failure
// or a Processing status blocks the upload; an HTTP error lets it proceed.
func (c *Controller) serverAvailable(ctx context.Context) bool {
	snapshot, err := c.server.Status(ctx)
	if err != nil {
		if whisper.StatusCode(err) != 0 {
			return true
		}
		c.logger.Debug("pre-upload status check failed", logging.Error(err))
		c.log.Error("Failed to check server status")
		return false
	}
	if snapshot.Status == whisper.StatusProcessing {
		c.warn("Server is currently processing another file. Please try again later.")
		return false
	}
	return true
}

func (c *Controller) reportTranscribeError(ctx context.Context, logger *slog.Logger, fileName string, err error) TranscriptionResult {
	switch {
	case errors.Is(err, whisper.ErrServerBusy):
		c.log.Warning("Server busy")
		c.warn("Server is currently processing another request")
		return TranscriptionResult{Outcome: OutcomeBusy}
	case errors.Is(err, whisper.ErrCancelled):
		c.log.Warning("Processing cancelled")
		c.warn("Processing was cancelled")
		c.pushFailure(ctx, fileName, err)
		return TranscriptionResult{Outcome: OutcomeCancelled}
	}

	if code := whisper.StatusCode(err); code != 0 {
		c.log.Error(fmt.Sprintf("Server error: HTTP %d", code))
		c.banner.Show(fmt.Sprintf("Server error: %d", code), activity.SeverityError, 0)
	} else {
		c.log.Error("Connection error: " + err.Error())
		c.banner.Show("Connection error occurred", activity.SeverityError, 0)
	}
	logger.Warn("transcription failed", logging.Error(err), logging.Int("status_code", whisper.StatusCode(err)))
	c.pushFailure(ctx, fileName, err)
	return TranscriptionResult{Outcome: OutcomeFailed}
}

func (c *Controller) pushFailure(ctx context.Context, fileName string, cause error) {
	if err := c.notifier.NotifyTranscriptionFailed(ctx, filepath.Base(fileName), cause); err != nil {
		c.logger.Warn("push notification failed", logging.Error(err))
	}
}

// consumeChosenModel drops the picker choice once the server accepted an
// upload with it. A newer choice made during the upload is kept.
func (c *Controller) consumeChosenModel(model string) {
	c.mu.Lock()
	if c.chosenModel == model {
		c.chosenModel = ""
	}
	c.mu.Unlock()
}

func (c *Controller) finishTranscription() {
	c.mu.Lock()
	c.transcribing = false
	c.control = TranscribeControl{Enabled: c.selected != nil, Label: LabelIdle}
	c.mu.Unlock()
}
