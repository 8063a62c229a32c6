package controller

import (
	"fmt"

	"whisperctl/internal/activity"
	"whisperctl/internal/models"
)

// ShowModelDialog opens the model picker with the card matching the model
// the next upload will use pre-selected.
func (c *Controller) ShowModelDialog() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.modelDialog.Open = true
	c.modelDialog.Cards = models.All()
	c.modelDialog.Selected = ""
	if current := c.uploadModelLocked(); models.Valid(current) {
		c.modelDialog.Selected = current
	}
}

// SelectModelCard marks id as the only selected card. It returns false when
// the picker is closed or id is not in the catalog.
func (c *Controller) SelectModelCard(id string) bool {
	card, ok := models.Lookup(id)

	c.mu.Lock()
	open := c.modelDialog.Open
	if open && ok {
		c.modelDialog.Selected = card.ID
	}
	c.mu.Unlock()

	switch {
	case !open:
		c.warn("Open the model picker first")
		return false
	case !ok:
		c.warn("Unknown model: " + id)
		return false
	}
	return true
}

// ConfirmModel applies the selected card to the displayed model label and
// remembers it for the next transcription. No request is sent.
func (c *Controller) ConfirmModel() {
	c.mu.Lock()
	if !c.modelDialog.Open {
		c.mu.Unlock()
		return
	}
	selected := c.modelDialog.Selected
	if selected == "" {
		c.mu.Unlock()
		c.warn("Please select a model")
		return
	}
	card, _ := models.Lookup(selected)
	c.modelDialog.Open = false
	c.panel.Model = card.ID
	c.chosenModel = card.ID
	c.mu.Unlock()

	c.log.Info("Model changed to: " + card.ID)
	c.banner.Show(fmt.Sprintf("Model selected: %s (%s)", card.Name, card.Specs), activity.SeveritySuccess, ModelNoticeDuration)
}

// CancelModelDialog closes the picker without changing the model.
func (c *Controller) CancelModelDialog() {
	c.mu.Lock()
	c.modelDialog.Open = false
	c.mu.Unlock()
}

// CloseDialogs closes both dialogs.
func (c *Controller) CloseDialogs() {
	c.mu.Lock()
	c.resetDialog = false
	c.modelDialog.Open = false
	c.mu.Unlock()
}

// CurrentModel returns the model the next upload will request: the confirmed
// picker choice, or the displayed label when nothing was picked.
func (c *Controller) CurrentModel() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.uploadModelLocked()
}

func (c *Controller) uploadModelLocked() string {
	if c.chosenModel != "" {
		return c.chosenModel
	}
	return c.panel.Model
}
