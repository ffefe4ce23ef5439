package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dtroode/mermory-server/internal/logger"
	"github.com/dtroode/mermory-server/internal/model"
	"github.com/dtroode/mermory-server/internal/study"
)

// StudyDecks is the part of the deck store the study registry depends on.
type StudyDecks interface {
	GetDeck(ctx context.Context, id string) (model.Deck, error)
	UpdateLastStudied(ctx context.Context, deckID string) error
}

// SessionView is a study session snapshot together with its identity.
type SessionView struct {
	ID        uuid.UUID
	DeckID    string
	DeckTitle string
	study.Snapshot
}

type studyEntry struct {
	deckID    string
	deckTitle string
	session   *study.Session
	touched   time.Time
}

// Study keeps live study sessions addressable by id.
type Study struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*studyEntry
	decks    StudyDecks
	logger   *logger.Logger
	now      func() time.Time
}

// StudyOption configures a Study registry.
type StudyOption func(*Study)

// WithStudyClock overrides the time source for sessions and idle tracking.
func WithStudyClock(now func() time.Time) StudyOption {
	return func(s *Study) {
		s.now = now
	}
}

// NewStudy creates a session registry backed by the given deck store.
func NewStudy(decks StudyDecks, logger *logger.Logger, opts ...StudyOption) *Study {
	s := &Study{
		sessions: make(map[uuid.UUID]*studyEntry),
		decks:    decks,
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start opens a session over the deck's current cards and stamps the deck as
// studied. The stamp is best effort; a failure to persist it is only logged.
func (s *Study) Start(ctx context.Context, deckID string) (SessionView, error) {
	deck, err := s.decks.GetDeck(ctx, deckID)
	if err != nil {
		return SessionView{}, fmt.Errorf("failed to get deck: %w", err)
	}

	sess, err := study.New(deck.Cards, study.WithClock(s.now))
	if err != nil {
		return SessionView{}, err
	}

	if err := s.decks.UpdateLastStudied(ctx, deckID); err != nil {
		s.logger.Warn("failed to stamp last studied", "deck_id", deckID, "error", err)
	}

	entry := &studyEntry{
		deckID:    deck.ID,
		deckTitle: deck.Title,
		session:   sess,
		touched:   s.now(),
	}
	id := uuid.New()

	s.mu.Lock()
	s.sessions[id] = entry
	view := entry.view(id)
	s.mu.Unlock()

	s.logger.Debug("study session started", "session_id", id, "deck_id", deckID, "cards", sess.CardCount())
	return view, nil
}

func (e *studyEntry) view(id uuid.UUID) SessionView {
	return SessionView{
		ID:        id,
		DeckID:    e.deckID,
		DeckTitle: e.deckTitle,
		Snapshot:  e.session.Snapshot(),
	}
}

// apply runs fn against the session under the registry lock and returns the
// resulting snapshot. A transition error is returned alongside the unchanged
// snapshot.
func (s *Study) apply(id uuid.UUID, fn func(*study.Session) error) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return SessionView{}, model.ErrSessionNotFound
	}
	entry.touched = s.now()

	err := fn(entry.session)
	return entry.view(id), err
}

// Get returns the current snapshot of a session.
func (s *Study) Get(_ context.Context, id uuid.UUID) (SessionView, error) {
	return s.apply(id, func(*study.Session) error { return nil })
}

// Flip turns the current card over.
func (s *Study) Flip(_ context.Context, id uuid.UUID) (SessionView, error) {
	return s.apply(id, (*study.Session).Flip)
}

// Next advances to the following card or completes the session.
func (s *Study) Next(_ context.Context, id uuid.UUID) (SessionView, error) {
	return s.apply(id, (*study.Session).Next)
}

// Previous goes back one card.
func (s *Study) Previous(_ context.Context, id uuid.UUID) (SessionView, error) {
	return s.apply(id, (*study.Session).Previous)
}

// MarkKnown classifies the current card as known and advances.
func (s *Study) MarkKnown(_ context.Context, id uuid.UUID) (SessionView, error) {
	return s.apply(id, (*study.Session).MarkKnown)
}

// MarkReviewLater classifies the current card for later review and advances.
func (s *Study) MarkReviewLater(_ context.Context, id uuid.UUID) (SessionView, error) {
	return s.apply(id, (*study.Session).MarkReviewLater)
}

// Restart rewinds a session, including a completed one.
func (s *Study) Restart(_ context.Context, id uuid.UUID) (SessionView, error) {
	return s.apply(id, func(sess *study.Session) error {
		sess.Restart()
		return nil
	})
}

// End discards a session.
func (s *Study) End(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return model.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// Active returns the number of live sessions.
func (s *Study) Active() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// PruneIdle drops sessions that were not touched within ttl and reports how
// many were removed.
func (s *Study) PruneIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	var pruned int
	for id, e := range s.sessions {
		if e.touched.Before(cutoff) {
			delete(s.sessions, id)
			pruned++
		}
	}
	if pruned > 0 {
		s.logger.Info("pruned idle study sessions", "pruned", pruned, "remaining", len(s.sessions))
	}
	return pruned
}

// IsClientError reports whether err is caused by the request rather than the server.
func IsClientError(err error) bool {
	return errors.Is(err, model.ErrNotFound) ||
		errors.Is(err, model.ErrEmptyDeck) ||
		errors.Is(err, model.ErrSessionNotFound) ||
		errors.Is(err, model.ErrSessionComplete)
}
