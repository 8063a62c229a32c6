package controller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const bytesPerMB = 1024 * 1024

// SelectFile chooses the audio file for the next transcription. An empty
// path clears the selection and disables the transcribe action.
func (c *Controller) SelectFile(path string) {
	path = strings.TrimSpace(path)
	if path == "" {
		c.clearSelection()
		return
	}

	info, err := os.Stat(path)
	if err != nil {
		c.clearSelection()
		c.log.Error(fmt.Sprintf("Cannot select %s: %v", path, err))
		return
	}
	if info.IsDir() {
		c.clearSelection()
		c.log.Error(fmt.Sprintf("Cannot select %s: is a directory", path))
		return
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	file := &SelectedFile{Path: path, Name: filepath.Base(path), Size: info.Size()}
	c.mu.Lock()
	c.selected = file
	c.control.Enabled = !c.transcribing
	c.mu.Unlock()

	c.log.Info(fmt.Sprintf("File selected: %s (%.2f MB)", file.Name, float64(file.Size)/bytesPerMB))
}

// SelectedFile returns the current selection, or nil.
func (c *Controller) SelectedFile() *SelectedFile {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == nil {
		return nil
	}
	file := *c.selected
	return &file
}

func (c *Controller) clearSelection() {
	c.mu.Lock()
	c.selected = nil
	c.control.Enabled = false
	c.mu.Unlock()
}
