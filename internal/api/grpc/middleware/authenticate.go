package middleware

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mermory-server/internal/logger"
	"github.com/dtroode/mermory-server/internal/model"
)

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// TokenParser resolves the subject of a bearer token.
type TokenParser interface {
	ParseAccessToken(token string) (string, error)
}

// Authenticate validates bearer tokens and injects the subject into context.
type Authenticate struct {
	tokens         TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenParser, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// AuthFunc parses the authorization header, validates the token and returns a
// context carrying the token subject.
func (m *Authenticate) AuthFunc(ctx context.Context) (context.Context, error) {
	var tokenString string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if authHeaders := md.Get("authorization"); len(authHeaders) > 0 {
			tokenString = strings.TrimPrefix(authHeaders[0], "Bearer ")
		}
	}

	subject, err := m.authenticate(tokenString)
	if err != nil {
		m.logger.Debug("request rejected", "error", err)
		return nil, status.Error(codes.Unauthenticated, err.Error())
	}

	return m.contextManager.SetSubjectToContext(ctx, subject), nil
}

func (m *Authenticate) authenticate(tokenString string) (string, error) {
	if tokenString == "" {
		return "", errMissingToken
	}

	subject, err := m.tokens.ParseAccessToken(tokenString)
	if err != nil || subject == "" {
		return "", errInvalidToken
	}

	return subject, nil
}
