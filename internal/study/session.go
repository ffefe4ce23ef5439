// Package study implements the linear study-session state machine.
//
// A Session walks a fixed snapshot of a deck's cards from first to last. While
// Active the caller can flip the current card, move back and forth, and classify
// the current card as known or to review later; classifying also advances.
// Advancing past the last card moves the session to Complete, after which only
// Restart is accepted.
package study

import (
	"fmt"
	"time"

	"github.com/dtroode/mermory-server/internal/model"
)

// State is the lifecycle state of a Session.
type State int

const (
	// StateActive means a card is being shown.
	StateActive State = iota
	// StateComplete is terminal until Restart.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is the state of one pass over a deck. It is not safe for concurrent use.
type Session struct {
	cards       []model.Card
	index       int
	flipped     bool
	known       map[string]struct{}
	reviewLater map[string]struct{}
	startedAt   time.Time
	endedAt     *time.Time
	state       State
	now         func() time.Time
}

// Option configures a Session.
type Option func(*Session)

// WithClock overrides the time source used for startedAt/endedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// New starts a session over a copy of cards. A deck without cards can't be
// studied and yields model.ErrEmptyDeck.
func New(cards []model.Card, opts ...Option) (*Session, error) {
	if len(cards) == 0 {
		return nil, model.ErrEmptyDeck
	}

	s := &Session{
		cards: make([]model.Card, len(cards)),
		now:   time.Now,
	}
	copy(s.cards, cards)
	for _, opt := range opts {
		opt(s)
	}
	s.Restart()

	return s, nil
}

// Flip toggles between the front and back of the current card.
func (s *Session) Flip() error {
	if s.state == StateComplete {
		return model.ErrSessionComplete
	}
	s.flipped = !s.flipped
	return nil
}

// Next moves to the following card, or completes the session on the last one.
func (s *Session) Next() error {
	if s.state == StateComplete {
		return model.ErrSessionComplete
	}
	s.advance()
	return nil
}

// Previous moves back one card. It does nothing on the first card.
func (s *Session) Previous() error {
	if s.state == StateComplete {
		return model.ErrSessionComplete
	}
	if s.index > 0 {
		s.index--
		s.flipped = false
	}
	return nil
}

// MarkKnown classifies the current card as known and advances.
func (s *Session) MarkKnown() error {
	if s.state == StateComplete {
		return model.ErrSessionComplete
	}
	id := s.cards[s.index].ID
	s.known[id] = struct{}{}
	delete(s.reviewLater, id)
	s.advance()
	return nil
}

// MarkReviewLater classifies the current card for later review and advances.
func (s *Session) MarkReviewLater() error {
	if s.state == StateComplete {
		return model.ErrSessionComplete
	}
	id := s.cards[s.index].ID
	s.reviewLater[id] = struct{}{}
	delete(s.known, id)
	s.advance()
	return nil
}

// Restart rewinds to the first card with empty classifications and a fresh start time.
func (s *Session) Restart() {
	s.index = 0
	s.flipped = false
	s.known = make(map[string]struct{})
	s.reviewLater = make(map[string]struct{})
	s.startedAt = s.now()
	s.endedAt = nil
	s.state = StateActive
}

func (s *Session) advance() {
	if s.index < len(s.cards)-1 {
		s.index++
		s.flipped = false
		return
	}
	ended := s.now()
	s.endedAt = &ended
	s.state = StateComplete
}

func (s *Session) State() State { return s.state }
func (s *Session) CurrentIndex() int { return s.index }
func (s *Session) IsFlipped() bool { return s.flipped }
func (s *Session) CardCount() int { return len(s.cards) }
func (s *Session) StartedAt() time.Time { return s.startedAt }

// CurrentCard returns the card at the current index. After completion this is
// the last card.
func (s *Session) CurrentCard() model.Card {
	return s.cards[s.index]
}

// EndedAt reports when the session completed.
func (s *Session) EndedAt() (time.Time, bool) {
	if s.endedAt == nil {
		return time.Time{}, false
	}
	return *s.endedAt, true
}

// IsKnown reports whether the card is in the known set.
func (s *Session) IsKnown(cardID string) bool {
	_, ok := s.known[cardID]
	return ok
}

// IsReviewLater reports whether the card is in the review-later set.
func (s *Session) IsReviewLater(cardID string) bool {
	_, ok := s.reviewLater[cardID]
	return ok
}

// Known returns the known card ids in deck order.
func (s *Session) Known() []string {
	return s.collect(s.known)
}

// ReviewLater returns the review-later card ids in deck order.
func (s *Session) ReviewLater() []string {
	return s.collect(s.reviewLater)
}

func (s *Session) collect(set map[string]struct{}) []string {
	ids := make([]string, 0, len(set))
	for _, c := range s.cards {
		if _, ok := set[c.ID]; ok {
			ids = append(ids, c.ID)
		}
	}
	return ids
}

// ProgressPercent is the 1-based position of the current card relative to the deck size.
func (s *Session) ProgressPercent() float64 {
	return float64(s.index+1) / float64(len(s.cards)) * 100
}

// CompletionRate is the share of cards classified as known, in [0, 1].
func (s *Session) CompletionRate() float64 {
	return float64(len(s.known)) / float64(len(s.cards))
}

// Elapsed is the time between start and completion. It is undefined (false)
// until the session completes.
func (s *Session) Elapsed() (time.Duration, bool) {
	if s.endedAt == nil {
		return 0, false
	}
	return s.endedAt.Sub(s.startedAt), true
}
