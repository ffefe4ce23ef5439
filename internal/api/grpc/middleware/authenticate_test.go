package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mermory-server/internal/mocks"
	"github.com/dtroode/mermory-server/internal/testutil"
)

func TestAuthenticate_AuthFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		mdAuthHeader string
		token        string
		subject      string
		parseErr     error
		wantMsg      string
		wantErr      bool
	}{
		{
			name:    "missing authorization header",
			wantMsg: "missing authorization token",
			wantErr: true,
		},
		{
			name:         "invalid token",
			mdAuthHeader: "Bearer invalid",
			token:        "invalid",
			parseErr:     errors.New("signature is invalid"),
			wantMsg:      "invalid authorization token",
			wantErr:      true,
		},
		{
			name:         "empty subject",
			mdAuthHeader: "Bearer token",
			token:        "token",
			wantMsg:      "invalid authorization token",
			wantErr:      true,
		},
		{
			name:         "valid token",
			mdAuthHeader: "Bearer token",
			token:        "token",
			subject:      "cli",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cm := mocks.NewContextManager(t)
			if !tt.wantErr {
				cm.On("SetSubjectToContext", mock.Anything, tt.subject).Return(context.Background())
			}

			tokens := mocks.NewTokenManager(t)
			if tt.mdAuthHeader != "" {
				tokens.On("ParseAccessToken", tt.token).Return(tt.subject, tt.parseErr)
			}
			m := NewAuthenticate(tokens, cm, testutil.MakeNoopLogger())

			ctx := context.Background()
			if tt.mdAuthHeader != "" {
				ctx = metadata.NewIncomingContext(ctx, metadata.Pairs("authorization", tt.mdAuthHeader))
			}

			newCtx, err := m.AuthFunc(ctx)

			if tt.wantErr {
				st, ok := status.FromError(err)
				assert.True(t, ok)
				assert.Equal(t, codes.Unauthenticated, st.Code())
				assert.Equal(t, tt.wantMsg, st.Message())
				assert.Nil(t, newCtx)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, newCtx)
		})
	}
}
