package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/mermory-server/internal/logger"
	"github.com/dtroode/mermory-server/internal/model"
)

// Deck is the deck store: the in-memory deck collection mirrored wholesale to
// one key of a BlobStore after every mutation.
//
// Operations on a missing deck or card leave the collection untouched, skip the
// write, and return model.ErrNotFound.
type Deck struct {
	mu     sync.Mutex
	decks  []model.Deck
	blobs  model.BlobStore
	key    string
	logger *logger.Logger
	now    func() time.Time
	newID  func(prefix string) string
}

// DeckOption configures a Deck store.
type DeckOption func(*Deck)

// WithDeckClock overrides the time source for createdAt/lastStudied.
func WithDeckClock(now func() time.Time) DeckOption {
	return func(s *Deck) {
		s.now = now
	}
}

// WithIDGenerator overrides deck and card id generation.
func WithIDGenerator(newID func(prefix string) string) DeckOption {
	return func(s *Deck) {
		s.newID = newID
	}
}

func uuidID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// NewDeck hydrates a deck store from key. When nothing is stored yet the
// collection is seeded with the demonstration deck and written back. A blob
// that can't be decoded is logged and replaced by an empty collection.
func NewDeck(ctx context.Context, blobs model.BlobStore, key string, logger *logger.Logger, opts ...DeckOption) (*Deck, error) {
	s := &Deck{
		blobs:  blobs,
		key:    key,
		logger: logger,
		now:    time.Now,
		newID:  uuidID,
	}
	for _, opt := range opts {
		opt(s)
	}

	data, err := blobs.Load(ctx, key)
	switch {
	case errors.Is(err, model.ErrNotFound):
		sample, err := sampleDeck(s.now().UTC())
		if err != nil {
			return nil, err
		}
		if err := s.commit(ctx, []model.Deck{sample}); err != nil {
			return nil, fmt.Errorf("failed to seed deck collection: %w", err)
		}
		s.logger.Info("seeded empty deck collection", "key", key, "deck_id", sample.ID)
	case err != nil:
		return nil, fmt.Errorf("failed to load deck collection: %w", err)
	default:
		decks, err := decodeDecks(data)
		if err != nil {
			s.logger.Error("persisted deck collection is malformed, starting empty", "key", key, "error", err)
			decks = []model.Deck{}
		}
		s.decks = decks
		s.logger.Info("loaded deck collection", "key", key, "decks", len(decks))
	}

	return s, nil
}

func decodeDecks(data []byte) ([]model.Deck, error) {
	var decks []model.Deck
	if err := json.Unmarshal(data, &decks); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrMalformedState, err)
	}
	if decks == nil {
		decks = []model.Deck{}
	}
	for i := range decks {
		if decks[i].Cards == nil {
			decks[i].Cards = []model.Card{}
		}
	}
	return decks, nil
}

// commit persists next and, only once the write succeeded, makes it current.
// Callers hold s.mu (or own s exclusively during construction).
func (s *Deck) commit(ctx context.Context, next []model.Deck) error {
	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("failed to encode decks: %w", err)
	}
	if err := s.blobs.Save(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to persist decks: %w", err)
	}
	s.decks = next
	return nil
}

func (s *Deck) indexOf(id string) int {
	for i, d := range s.decks {
		if d.ID == id {
			return i
		}
	}
	return -1
}

func (s *Deck) freshDeckID() string {
	for {
		id := s.newID("deck")
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

func freshCardID(d model.Deck, newID func(string) string) string {
	for {
		id := newID("card")
		if d.CardIndex(id) < 0 {
			return id
		}
	}
}

// updateDeck applies fn to a copy of the deck with the given id and commits
// the result.
func (s *Deck) updateDeck(ctx context.Context, id string, fn func(d *model.Deck) error) (model.Deck, error) {
	i := s.indexOf(id)
	if i < 0 {
		return model.Deck{}, model.ErrNotFound
	}

	updated := s.decks[i].Clone()
	if err := fn(&updated); err != nil {
		return model.Deck{}, err
	}

	next := slices.Clone(s.decks)
	next[i] = updated
	if err := s.commit(ctx, next); err != nil {
		return model.Deck{}, err
	}

	return updated.Clone(), nil
}

// ListDecks returns all decks in creation order. A non-empty query keeps only
// decks whose title or description contains it, ignoring case.
func (s *Deck) ListDecks(_ context.Context, query string) []model.Deck {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]model.Deck, 0, len(s.decks))
	for _, d := range s.decks {
		if q != "" &&
			!strings.Contains(strings.ToLower(d.Title), q) &&
			!strings.Contains(strings.ToLower(d.Description), q) {
			continue
		}
		out = append(out, d.Clone())
	}
	return out
}

// GetDeck returns a copy of the deck.
func (s *Deck) GetDeck(_ context.Context, id string) (model.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.Deck{}, model.ErrNotFound
	}
	return s.decks[i].Clone(), nil
}

// CreateDeck appends a new deck without cards.
func (s *Deck) CreateDeck(ctx context.Context, title, description string) (model.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deck := model.Deck{
		ID:          s.freshDeckID(),
		Title:       title,
		Description: description,
		Cards:       []model.Card{},
		CreatedAt:   s.now().UTC(),
	}

	next := append(slices.Clone(s.decks), deck)
	if err := s.commit(ctx, next); err != nil {
		return model.Deck{}, err
	}

	s.logger.Debug("deck created", "deck_id", deck.ID)
	return deck.Clone(), nil
}

// UpdateDeck replaces the title and description of a deck. Cards are kept.
func (s *Deck) UpdateDeck(ctx context.Context, id, title, description string) (model.Deck, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateDeck(ctx, id, func(d *model.Deck) error {
		d.Title = title
		d.Description = description
		return nil
	})
}

// DeleteDeck removes a deck together with its cards.
func (s *Deck) DeleteDeck(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return model.ErrNotFound
	}

	next := slices.Delete(slices.Clone(s.decks), i, i+1)
	if err := s.commit(ctx, next); err != nil {
		return err
	}

	s.logger.Debug("deck deleted", "deck_id", id)
	return nil
}

// AddCard appends a card to a deck.
func (s *Deck) AddCard(ctx context.Context, deckID, front, back string) (model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var card model.Card
	_, err := s.updateDeck(ctx, deckID, func(d *model.Deck) error {
		card = model.Card{ID: freshCardID(*d, s.newID), Front: front, Back: back}
		d.Cards = append(d.Cards, card)
		return nil
	})
	if err != nil {
		return model.Card{}, err
	}

	return card, nil
}

// UpdateCard replaces the front and back of a card.
func (s *Deck) UpdateCard(ctx context.Context, deckID, cardID, front, back string) (model.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var card model.Card
	_, err := s.updateDeck(ctx, deckID, func(d *model.Deck) error {
		i := d.CardIndex(cardID)
		if i < 0 {
			return model.ErrNotFound
		}
		d.Cards[i].Front = front
		d.Cards[i].Back = back
		card = d.Cards[i]
		return nil
	})
	if err != nil {
		return model.Card{}, err
	}

	return card, nil
}

// DeleteCard removes a card from a deck.
func (s *Deck) DeleteCard(ctx context.Context, deckID, cardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.updateDeck(ctx, deckID, func(d *model.Deck) error {
		i := d.CardIndex(cardID)
		if i < 0 {
			return model.ErrNotFound
		}
		d.Cards = slices.Delete(d.Cards, i, i+1)
		return nil
	})
	return err
}

// UpdateLastStudied stamps the deck as studied now.
func (s *Deck) UpdateLastStudied(ctx context.Context, deckID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.updateDeck(ctx, deckID, func(d *model.Deck) error {
		ts := s.now().UTC()
		d.LastStudied = &ts
		return nil
	})
	return err
}
