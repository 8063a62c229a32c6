// Package models lists the Whisper models the transcription server accepts.
package models

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultID is the model the server loads when none is requested.
const DefaultID = "large-v3"

// Card describes one selectable model.
type Card struct {
	ID    string
	Name  string
	Specs string
}

type preset struct {
	id     string
	params string
	vram   string
	speed  string
}

var presets = []preset{
	{id: "tiny", params: "39M", vram: "~1 GB", speed: "~32x"},
	{id: "tiny.en", params: "39M", vram: "~1 GB", speed: "~32x"},
	{id: "base", params: "74M", vram: "~1 GB", speed: "~16x"},
	{id: "base.en", params: "74M", vram: "~1 GB", speed: "~16x"},
	{id: "small", params: "244M", vram: "~2 GB", speed: "~6x"},
	{id: "small.en", params: "244M", vram: "~2 GB", speed: "~6x"},
	{id: "medium", params: "769M", vram: "~5 GB", speed: "~2x"},
	{id: "medium.en", params: "769M", vram: "~5 GB", speed: "~2x"},
	{id: "large", params: "1550M", vram: "~10 GB", speed: "1x"},
	{id: "large-v3", params: "1550M", vram: "~10 GB", speed: "1x"},
	{id: "turbo", params: "809M", vram: "~6 GB", speed: "~8x"},
}

var catalog = buildCatalog()

func buildCatalog() []Card {
	cards := make([]Card, 0, len(presets))
	for _, p := range presets {
		cards = append(cards, Card{
			ID:    p.id,
			Name:  DisplayName(p.id),
			Specs: p.params + " params, " + p.vram + " VRAM, " + p.speed + " speed",
		})
	}
	return cards
}

// All returns a copy of the catalog in display order.
func All() []Card {
	out := make([]Card, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the card for id.
func Lookup(id string) (Card, bool) {
	id = strings.TrimSpace(id)
	for _, card := range catalog {
		if card.ID == id {
			return card, true
		}
	}
	return Card{}, false
}

// Valid reports whether id names a model the server accepts.
func Valid(id string) bool {
	_, ok := Lookup(id)
	return ok
}

// IDs returns the model identifiers in display order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for _, card := range catalog {
		ids = append(ids, card.ID)
	}
	return ids
}

// DisplayName turns a model id such as "large-v3" or "small.en" into a
// human label like "Large V3" or "Small (English)".
func DisplayName(id string) string {
	id = strings.TrimSpace(id)
	if id == "" {
		return ""
	}
	english := false
	if trimmed, ok := strings.CutSuffix(id, ".en"); ok {
		id = trimmed
		english = true
	}
	name := cases.Title(language.Und).String(strings.ReplaceAll(id, "-", " "))
	if english {
		name += " (English)"
	}
	return name
}
