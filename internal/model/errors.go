package model

import "errors"

var (
	// ErrNotFound is returned when a deck, card or stored blob does not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyDeck is returned when a study session is requested for a deck without cards.
	ErrEmptyDeck = errors.New("deck has no cards")
	// ErrSessionNotFound is returned for unknown study session ids.
	ErrSessionNotFound = errors.New("study session not found")
	// ErrSessionComplete is returned by transitions attempted after a session finished.
	ErrSessionComplete = errors.New("study session is complete")
	// ErrMalformedState marks a persisted blob that could not be decoded.
	ErrMalformedState = errors.New("malformed persisted state")
)
