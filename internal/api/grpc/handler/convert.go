package handler

import (
	"github.com/dtroode/mermory-server/internal/api/grpc/apiv1"
	"github.com/dtroode/mermory-server/internal/model"
	"github.com/dtroode/mermory-server/internal/service"
	"github.com/dtroode/mermory-server/internal/study"
)

func convertCard(c model.Card) *apiv1.Card {
	return &apiv1.Card{ID: c.ID, Front: c.Front, Back: c.Back}
}

func convertDeck(d model.Deck) *apiv1.Deck {
	cards := make([]*apiv1.Card, 0, len(d.Cards))
	for _, c := range d.Cards {
		cards = append(cards, convertCard(c))
	}
	return &apiv1.Deck{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Cards:       cards,
		CardCount:   len(d.Cards),
		LastStudied: d.LastStudied,
		CreatedAt:   d.CreatedAt,
	}
}

func convertSession(v service.SessionView) *apiv1.Session {
	sum := &apiv1.Summary{
		Known:          v.Summary.Known,
		ReviewLater:    v.Summary.ReviewLater,
		Skipped:        v.Summary.Skipped,
		CompletionRate: v.Summary.CompletionRate,
	}
	if v.Summary.HasElapsed {
		secs := v.Summary.Elapsed.Seconds()
		sum.ElapsedSeconds = &secs
		sum.Elapsed = study.FormatElapsed(v.Summary.Elapsed)
	}

	return &apiv1.Session{
		ID:              v.ID.String(),
		DeckID:          v.DeckID,
		DeckTitle:       v.DeckTitle,
		State:           v.State.String(),
		CurrentIndex:    v.CurrentIndex,
		CardCount:       v.CardCount,
		IsFlipped:       v.IsFlipped,
		Card:            convertCard(v.Current),
		Known:           v.Known,
		ReviewLater:     v.ReviewLater,
		ProgressPercent: v.ProgressPercent,
		StartedAt:       v.StartedAt,
		EndedAt:         v.EndedAt,
		Summary:         sum,
	}
}
