package handler

import (
	"context"

	"github.com/dtroode/mermory-server/internal/api/grpc/apiv1"
	"github.com/dtroode/mermory-server/internal/logger"
	"github.com/dtroode/mermory-server/internal/model"
	"github.com/dtroode/mermory-server/internal/service"
)

// DeckService defines the deck store operations exposed over gRPC.
type DeckService interface {
	ListDecks(ctx context.Context, query string) []model.Deck
	GetDeck(ctx context.Context, id string) (model.Deck, error)
	CreateDeck(ctx context.Context, title, description string) (model.Deck, error)
	UpdateDeck(ctx context.Context, id, title, description string) (model.Deck, error)
	DeleteDeck(ctx context.Context, id string) error
	AddCard(ctx context.Context, deckID, front, back string) (model.Card, error)
	UpdateCard(ctx context.Context, deckID, cardID, front, back string) (model.Card, error)
	DeleteCard(ctx context.Context, deckID, cardID string) error
	UpdateLastStudied(ctx context.Context, deckID string) error
}

var _ apiv1.DecksServer = (*Deck)(nil)

// Deck handles gRPC endpoints for decks and cards. Input is trimmed and
// validated here; the store itself trusts its callers.
type Deck struct {
	deckService DeckService
	logger      *logger.Logger
}

// NewDeck creates a new Deck handler.
func NewDeck(deckService DeckService, logger *logger.Logger) *Deck {
	return &Deck{
		deckService: deckService,
		logger:      logger,
	}
}

func (h *Deck) fail(op string, err error, args ...any) error {
	args = append(args, "error", err)
	if service.IsClientError(err) {
		h.logger.Debug("Deck handler: "+op+" rejected", args...)
	} else {
		h.logger.Error("Deck handler: "+op+" failed", args...)
	}
	return handleError(err)
}

// ListDecks returns all decks, optionally filtered by a search query.
func (h *Deck) ListDecks(ctx context.Context, req *apiv1.ListDecksRequest) (*apiv1.ListDecksResponse, error) {
	decks := h.deckService.ListDecks(ctx, req.Query)

	resp := &apiv1.ListDecksResponse{Decks: make([]*apiv1.Deck, 0, len(decks))}
	for _, d := range decks {
		resp.Decks = append(resp.Decks, convertDeck(d))
	}
	return resp, nil
}

// GetDeck returns one deck with its cards.
func (h *Deck) GetDeck(ctx context.Context, req *apiv1.GetDeckRequest) (*apiv1.DeckResponse, error) {
	trimSpace(&req.DeckID)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	deck, err := h.deckService.GetDeck(ctx, req.DeckID)
	if err != nil {
		return nil, h.fail("get deck", err, "deck_id", req.DeckID)
	}
	return &apiv1.DeckResponse{Deck: convertDeck(deck)}, nil
}

// CreateDeck creates an empty deck.
func (h *Deck) CreateDeck(ctx context.Context, req *apiv1.CreateDeckRequest) (*apiv1.DeckResponse, error) {
	trimSpace(&req.Title, &req.Description)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	deck, err := h.deckService.CreateDeck(ctx, req.Title, req.Description)
	if err != nil {
		return nil, h.fail("create deck", err)
	}

	h.logger.Info("Deck handler: deck created", "deck_id", deck.ID, "title", deck.Title)
	return &apiv1.DeckResponse{Deck: convertDeck(deck)}, nil
}

// UpdateDeck changes the title and description of a deck.
func (h *Deck) UpdateDeck(ctx context.Context, req *apiv1.UpdateDeckRequest) (*apiv1.DeckResponse, error) {
	trimSpace(&req.DeckID, &req.Title, &req.Description)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	deck, err := h.deckService.UpdateDeck(ctx, req.DeckID, req.Title, req.Description)
	if err != nil {
		return nil, h.fail("update deck", err, "deck_id", req.DeckID)
	}
	return &apiv1.DeckResponse{Deck: convertDeck(deck)}, nil
}

// DeleteDeck removes a deck and its cards.
func (h *Deck) DeleteDeck(ctx context.Context, req *apiv1.DeleteDeckRequest) (*apiv1.Empty, error) {
	trimSpace(&req.DeckID)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	if err := h.deckService.DeleteDeck(ctx, req.DeckID); err != nil {
		return nil, h.fail("delete deck", err, "deck_id", req.DeckID)
	}

	h.logger.Info("Deck handler: deck deleted", "deck_id", req.DeckID)
	return &apiv1.Empty{}, nil
}

// AddCard appends a card to a deck.
func (h *Deck) AddCard(ctx context.Context, req *apiv1.AddCardRequest) (*apiv1.CardResponse, error) {
	trimSpace(&req.DeckID, &req.Front, &req.Back)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	card, err := h.deckService.AddCard(ctx, req.DeckID, req.Front, req.Back)
	if err != nil {
		return nil, h.fail("add card", err, "deck_id", req.DeckID)
	}
	return &apiv1.CardResponse{Card: convertCard(card)}, nil
}

// UpdateCard replaces the text of a card.
func (h *Deck) UpdateCard(ctx context.Context, req *apiv1.UpdateCardRequest) (*apiv1.CardResponse, error) {
	trimSpace(&req.DeckID, &req.CardID, &req.Front, &req.Back)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	card, err := h.deckService.UpdateCard(ctx, req.DeckID, req.CardID, req.Front, req.Back)
	if err != nil {
		return nil, h.fail("update card", err, "deck_id", req.DeckID, "card_id", req.CardID)
	}
	return &apiv1.CardResponse{Card: convertCard(card)}, nil
}

// DeleteCard removes a card from a deck.
func (h *Deck) DeleteCard(ctx context.Context, req *apiv1.DeleteCardRequest) (*apiv1.Empty, error) {
	trimSpace(&req.DeckID, &req.CardID)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	if err := h.deckService.DeleteCard(ctx, req.DeckID, req.CardID); err != nil {
		return nil, h.fail("delete card", err, "deck_id", req.DeckID, "card_id", req.CardID)
	}
	return &apiv1.Empty{}, nil
}

// UpdateLastStudied stamps a deck as studied now.
func (h *Deck) UpdateLastStudied(ctx context.Context, req *apiv1.UpdateLastStudiedRequest) (*apiv1.Empty, error) {
	trimSpace(&req.DeckID)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	if err := h.deckService.UpdateLastStudied(ctx, req.DeckID); err != nil {
		return nil, h.fail("update last studied", err, "deck_id", req.DeckID)
	}
	return &apiv1.Empty{}, nil
}
