// Package apiv1 defines the mermory.v1 gRPC API: message types, service
// descriptors and clients. Messages travel as JSON (see package codec).
package apiv1

import "time"

// Card is a flashcard.
type Card struct {
	ID    string `json:"id"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// Deck is a deck with its cards.
type Deck struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Cards       []*Card    `json:"cards"`
	CardCount   int        `json:"cardCount"`
	LastStudied *time.Time `json:"lastStudied,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Empty is returned by calls without a payload.
type Empty struct{}

type ListDecksRequest struct {
	Query string `json:"query,omitempty"`
}

type ListDecksResponse struct {
	Decks []*Deck `json:"decks"`
}

type GetDeckRequest struct {
	DeckID string `json:"deckId" validate:"required"`
}

type CreateDeckRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type UpdateDeckRequest struct {
	DeckID      string `json:"deckId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type DeleteDeckRequest struct {
	DeckID string `json:"deckId" validate:"required"`
}

type DeckResponse struct {
	Deck *Deck `json:"deck"`
}

type AddCardRequest struct {
	DeckID string `json:"deckId" validate:"required"`
	Front  string `json:"front" validate:"required"`
	Back   string `json:"back" validate:"required"`
}

type UpdateCardRequest struct {
	DeckID string `json:"deckId" validate:"required"`
	CardID string `json:"cardId" validate:"required"`
	Front  string `json:"front" validate:"required"`
	Back   string `json:"back" validate:"required"`
}

type DeleteCardRequest struct {
	DeckID string `json:"deckId" validate:"required"`
	CardID string `json:"cardId" validate:"required"`
}

type CardResponse struct {
	Card *Card `json:"card"`
}

type UpdateLastStudiedRequest struct {
	DeckID string `json:"deckId" validate:"required"`
}

type StartSessionRequest struct {
	DeckID string `json:"deckId" validate:"required"`
}

// SessionRequest addresses a live study session.
type SessionRequest struct {
	SessionID string `json:"sessionId" validate:"required,uuid"`
}

// Summary reports the classification results of a session. Elapsed fields are
// set only once the session completed.
type Summary struct {
	Known          int      `json:"known"`
	ReviewLater    int      `json:"reviewLater"`
	Skipped        int      `json:"skipped"`
	CompletionRate float64  `json:"completionRate"`
	ElapsedSeconds *float64 `json:"elapsedSeconds,omitempty"`
	Elapsed        string   `json:"elapsed,omitempty"`
}

// Session is a study session snapshot.
type Session struct {
	ID              string     `json:"id"`
	DeckID          string     `json:"deckId"`
	DeckTitle       string     `json:"deckTitle"`
	State           string     `json:"state"`
	CurrentIndex    int        `json:"currentIndex"`
	CardCount       int        `json:"cardCount"`
	IsFlipped       bool       `json:"isFlipped"`
	Card            *Card      `json:"card"`
	Known           []string   `json:"known"`
	ReviewLater     []string   `json:"reviewLater"`
	ProgressPercent float64    `json:"progressPercent"`
	StartedAt       time.Time  `json:"startedAt"`
	EndedAt         *time.Time `json:"endedAt,omitempty"`
	Summary         *Summary   `json:"summary"`
}

type SessionResponse struct {
	Session *Session `json:"session"`
}
