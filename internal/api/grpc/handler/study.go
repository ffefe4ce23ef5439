package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/dtroode/mermory-server/internal/api/grpc/apiv1"
	"github.com/dtroode/mermory-server/internal/logger"
	"github.com/dtroode/mermory-server/internal/service"
)

// StudyService defines study session operations exposed over gRPC.
type StudyService interface {
	Start(ctx context.Context, deckID string) (service.SessionView, error)
	Get(ctx context.Context, id uuid.UUID) (service.SessionView, error)
	Flip(ctx context.Context, id uuid.UUID) (service.SessionView, error)
	Next(ctx context.Context, id uuid.UUID) (service.SessionView, error)
	Previous(ctx context.Context, id uuid.UUID) (service.SessionView, error)
	MarkKnown(ctx context.Context, id uuid.UUID) (service.SessionView, error)
	MarkReviewLater(ctx context.Context, id uuid.UUID) (service.SessionView, error)
	Restart(ctx context.Context, id uuid.UUID) (service.SessionView, error)
	End(ctx context.Context, id uuid.UUID) error
}

var _ apiv1.StudyServer = (*Study)(nil)

// Study handles gRPC endpoints for study sessions.
type Study struct {
	studyService StudyService
	logger       *logger.Logger
}

// NewStudy creates a new Study handler.
func NewStudy(studyService StudyService, logger *logger.Logger) *Study {
	return &Study{
		studyService: studyService,
		logger:       logger,
	}
}

func (h *Study) sessionID(req *apiv1.SessionRequest) (uuid.UUID, error) {
	trimSpace(&req.SessionID)
	if err := validate.Struct(req); err != nil {
		return uuid.Nil, handleError(err)
	}
	// validated above
	return uuid.MustParse(req.SessionID), nil
}

type transition func(ctx context.Context, id uuid.UUID) (service.SessionView, error)

func (h *Study) run(ctx context.Context, op string, req *apiv1.SessionRequest, fn transition) (*apiv1.SessionResponse, error) {
	id, err := h.sessionID(req)
	if err != nil {
		return nil, err
	}

	view, err := fn(ctx, id)
	if err != nil {
		if !service.IsClientError(err) {
			h.logger.Error("Study handler: "+op+" failed", "session_id", id, "error", err)
		}
		return nil, handleError(err)
	}
	return &apiv1.SessionResponse{Session: convertSession(view)}, nil
}

// StartSession begins studying a deck.
func (h *Study) StartSession(ctx context.Context, req *apiv1.StartSessionRequest) (*apiv1.SessionResponse, error) {
	trimSpace(&req.DeckID)
	if err := validate.Struct(req); err != nil {
		return nil, handleError(err)
	}

	view, err := h.studyService.Start(ctx, req.DeckID)
	if err != nil {
		if !service.IsClientError(err) {
			h.logger.Error("Study handler: start session failed", "deck_id", req.DeckID, "error", err)
		}
		return nil, handleError(err)
	}

	h.logger.Info("Study handler: session started", "session_id", view.ID, "deck_id", view.DeckID)
	return &apiv1.SessionResponse{Session: convertSession(view)}, nil
}

func (h *Study) GetSession(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.SessionResponse, error) {
	return h.run(ctx, "get session", req, h.studyService.Get)
}

func (h *Study) Flip(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.SessionResponse, error) {
	return h.run(ctx, "flip", req, h.studyService.Flip)
}

func (h *Study) Next(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.SessionResponse, error) {
	return h.run(ctx, "next", req, h.studyService.Next)
}

func (h *Study) Previous(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.SessionResponse, error) {
	return h.run(ctx, "previous", req, h.studyService.Previous)
}

func (h *Study) MarkKnown(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.SessionResponse, error) {
	return h.run(ctx, "mark known", req, h.studyService.MarkKnown)
}

func (h *Study) MarkReviewLater(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.SessionResponse, error) {
	return h.run(ctx, "mark review later", req, h.studyService.MarkReviewLater)
}

func (h *Study) Restart(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.SessionResponse, error) {
	return h.run(ctx, "restart", req, h.studyService.Restart)
}

// EndSession discards a session.
func (h *Study) EndSession(ctx context.Context, req *apiv1.SessionRequest) (*apiv1.Empty, error) {
	id, err := h.sessionID(req)
	if err != nil {
		return nil, err
	}

	if err := h.studyService.End(ctx, id); err != nil {
		return nil, handleError(err)
	}
	return &apiv1.Empty{}, nil
}
