package model

import "context"

// ContextManager carries the authenticated caller through request contexts.
type ContextManager interface {
	SetSubjectToContext(ctx context.Context, subject string) context.Context
	GetSubjectFromContext(ctx context.Context) (string, bool)
}

// TokenManager issues and validates bearer tokens for API callers.
type TokenManager interface {
	GenerateAccessToken(subject string) (string, error)
	ParseAccessToken(token string) (string, error)
}
