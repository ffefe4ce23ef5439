package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dtroode/mermory-server/internal/model"
)

const (
	issuer          = "mermory"
	defaultTokenTTL = 24 * time.Hour
)

var _ model.TokenManager = (*JWT)(nil)

// JWT issues and validates HS256 access tokens for API callers.
type JWT struct {
	secretKey []byte
	ttl       time.Duration
	now       func() time.Time
}

// Option configures a JWT manager.
type Option func(*JWT)

// WithTTL sets the lifetime of issued tokens.
func WithTTL(ttl time.Duration) Option {
	return func(j *JWT) {
		j.ttl = ttl
	}
}

// WithClock overrides the time source used for issued-at and expiry.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// NewJWT creates a token manager signing with secretKey.
func NewJWT(secretKey string, opts ...Option) *JWT {
	j := &JWT{
		secretKey: []byte(secretKey),
		ttl:       defaultTokenTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// GenerateAccessToken creates a token for subject.
func (j *JWT) GenerateAccessToken(subject string) (string, error) {
	if subject == "" {
		return "", errors.New("subject must not be empty")
	}

	now := j.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
	})

	tokenString, err := token.SignedString(j.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}

	return tokenString, nil
}

// ParseAccessToken validates a token and returns its subject.
func (j *JWT) ParseAccessToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return j.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return "", fmt.Errorf("failed to parse access token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("access token is invalid")
	}
	if claims.Subject == "" {
		return "", errors.New("access token has no subject")
	}
	return claims.Subject, nil
}
