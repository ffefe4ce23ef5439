package service

import (
	_ "embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dtroode/mermory-server/internal/model"
)

// SampleDeckID is the id of the demonstration deck seeded into an empty slot.
const SampleDeckID = "sample-deck"

//go:embed seed.yaml
var seedYAML []byte

type seedDeck struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Cards       []struct {
		ID    string `yaml:"id"`
		Front string `yaml:"front"`
		Back  string `yaml:"back"`
	} `yaml:"cards"`
}

// sampleDeck builds the demonstration deck stamped with createdAt.
func sampleDeck(createdAt time.Time) (model.Deck, error) {
	var sd seedDeck
	if err := yaml.Unmarshal(seedYAML, &sd); err != nil {
		return model.Deck{}, fmt.Errorf("failed to parse seed deck: %w", err)
	}

	deck := model.Deck{
		ID:          sd.ID,
		Title:       sd.Title,
		Description: sd.Description,
		Cards:       make([]model.Card, 0, len(sd.Cards)),
		CreatedAt:   createdAt,
	}
	for _, c := range sd.Cards {
		deck.Cards = append(deck.Cards, model.Card{ID: c.ID, Front: c.Front, Back: c.Back})
	}

	return deck, nil
}
