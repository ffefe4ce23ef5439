package study

import (
	"fmt"
	"time"

	"github.com/dtroode/mermory-server/internal/model"
)

// Summary is the end-of-session report.
type Summary struct {
	Known          int
	ReviewLater    int
	Skipped        int
	CompletionRate float64
	Elapsed        time.Duration
	HasElapsed     bool
}

// Snapshot is a read-only view of a session at one point in time.
type Snapshot struct {
	State           State
	CurrentIndex    int
	CardCount       int
	IsFlipped       bool
	Current         model.Card
	Known           []string
	ReviewLater     []string
	ProgressPercent float64
	StartedAt       time.Time
	EndedAt         *time.Time
	Summary         Summary
}

// Summary counts the classifications made so far.
func (s *Session) Summary() Summary {
	elapsed, ok := s.Elapsed()
	return Summary{
		Known:          len(s.known),
		ReviewLater:    len(s.reviewLater),
		Skipped:        len(s.cards) - len(s.known) - len(s.reviewLater),
		CompletionRate: s.CompletionRate(),
		Elapsed:        elapsed,
		HasElapsed:     ok,
	}
}

// Snapshot copies the current state out of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:           s.state,
		CurrentIndex:    s.index,
		CardCount:       len(s.cards),
		IsFlipped:       s.flipped,
		Current:         s.CurrentCard(),
		Known:           s.Known(),
		ReviewLater:     s.ReviewLater(),
		ProgressPercent: s.ProgressPercent(),
		StartedAt:       s.startedAt,
		Summary:         s.Summary(),
	}
	if s.endedAt != nil {
		ended := *s.endedAt
		snap.EndedAt = &ended
	}
	return snap
}

// FormatElapsed renders a study duration as "<minutes>m <seconds>s".
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	mins := int(d / time.Minute)
	secs := int((d % time.Minute) / time.Second)
	return fmt.Sprintf("%dm %ds", mins, secs)
}
