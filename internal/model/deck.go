package model

import (
	"context"
	"time"
)

// Card is a single front/back pair owned by a deck.
type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Deck is a named, ordered collection of cards.
type Deck struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Cards       []Card     `json:"cards"`
	LastStudied *time.Time `json:"lastStudied,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Clone returns a deep copy of the deck so callers can't mutate store state.
func (d Deck) Clone() Deck {
	out := d
	out.Cards = make([]Card, len(d.Cards))
	copy(out.Cards, d.Cards)
	if d.LastStudied != nil {
		ts := *d.LastStudied
		out.LastStudied = &ts
	}
	return out
}

// CardIndex returns the position of the card with the given id, or -1.
func (d Deck) CardIndex(cardID string) int {
	for i, c := range d.Cards {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// BlobStore is the key/value slot the deck collection is mirrored to.
// Load returns ErrNotFound when nothing was ever saved under key.
type BlobStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
