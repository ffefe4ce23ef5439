package main

import (
	"bytes"
	"context"
	"io"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	grpcctx "github.com/dtroode/mermory-server/internal/api/grpc/context"
	"github.com/dtroode/mermory-server/internal/api/grpc/router"
	"github.com/dtroode/mermory-server/internal/model"
	"github.com/dtroode/mermory-server/internal/service"
	"github.com/dtroode/mermory-server/internal/testutil"
	"github.com/dtroode/mermory-server/internal/token"
)

type memBlobs struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (m *memBlobs) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, model.ErrNotFound
	}
	return v, nil
}

func (m *memBlobs) Save(_ context.Context, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), data...)
	return nil
}

// startServer serves a fresh deck store over an in-memory listener and returns
// a dialer for run.
func startServer(t *testing.T) dialFunc {
	t.Helper()

	lg := testutil.MakeNoopLogger()
	decks, err := service.NewDeck(context.Background(), &memBlobs{data: map[string][]byte{}}, "cli-decks", lg)
	require.NoError(t, err)

	s := router.New(decks, service.NewStudy(decks, lg), nil, grpcctx.NewManager(), lg).Register()
	lis := bufconn.Listen(1 << 20)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	return func(options) (grpc.ClientConnInterface, io.Closer, error) {
		conn, err := grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, err
		}
		return conn, conn, nil
	}
}

func runCLI(t *testing.T, dial dialFunc, stdin string, args ...string) (string, error) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var out bytes.Buffer
	err := run(ctx, args, strings.NewReader(stdin), &out, dial)
	return out.String(), err
}

func TestRun_DeckCommands(t *testing.T) {
	dial := startServer(t)

	out, err := runCLI(t, dial, "", "decks")
	require.NoError(t, err)
	assert.Contains(t, out, "sample-deck")
	assert.Contains(t, out, "Biology 101")
	assert.Contains(t, out, "never")

	out, err = runCLI(t, dial, "", "create-deck", "Spanish", "Basic words")
	require.NoError(t, err)
	deckID := strings.TrimSpace(out)
	assert.True(t, strings.HasPrefix(deckID, "deck-"), deckID)

	out, err = runCLI(t, dial, "", "add-card", deckID, "hola", "hello")
	require.NoError(t, err)
	cardID := strings.TrimSpace(out)

	out, err = runCLI(t, dial, "", "update-card", deckID, cardID, "adiós", "goodbye")
	require.NoError(t, err)
	assert.Equal(t, cardID, strings.TrimSpace(out))

	out, err = runCLI(t, dial, "", "deck", deckID)
	require.NoError(t, err)
	assert.Contains(t, out, "Spanish ("+deckID+")")
	assert.Contains(t, out, "Basic words")
	assert.Contains(t, out, "adiós")
	assert.NotContains(t, out, "hola")

	out, err = runCLI(t, dial, "", "decks", "spanish")
	require.NoError(t, err)
	assert.Contains(t, out, deckID)
	assert.NotContains(t, out, "sample-deck")

	_, err = runCLI(t, dial, "", "delete-card", deckID, cardID)
	require.NoError(t, err)
	_, err = runCLI(t, dial, "", "delete-deck", deckID)
	require.NoError(t, err)

	_, err = runCLI(t, dial, "", "deck", deckID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotFound")
}

func TestRun_JSONOutput(t *testing.T) {
	dial := startServer(t)

	out, err := runCLI(t, dial, "", "--json", "deck", "sample-deck")
	require.NoError(t, err)
	assert.Contains(t, out, `"id": "sample-deck"`)
	assert.Contains(t, out, `"cardCount": 3`)
}

func TestRun_Study(t *testing.T) {
	dial := startServer(t)

	out, err := runCLI(t, dial, "f\nk\nr\nn\nn\nq\n", "study", "sample-deck")
	require.NoError(t, err)

	assert.Contains(t, out, "studying Biology 101, 3 cards")
	assert.Contains(t, out, "[1/3 33%] Q: What is the function of mitochondria?")
	assert.Contains(t, out, "[1/3 33%] A: Mitochondria are the powerhouse")
	assert.Contains(t, out, "[2/3 67%] Q: What is photosynthesis?")
	assert.Contains(t, out, "done: 1 known, 1 to review, 1 skipped (33%) in 0m 0s")
	assert.Contains(t, out, "session complete: [s] to restart, [q] to quit")
}

func TestRun_StudyEmptyDeck(t *testing.T) {
	dial := startServer(t)

	out, err := runCLI(t, dial, "", "create-deck", "Empty")
	require.NoError(t, err)

	_, err = runCLI(t, dial, "", "study", strings.TrimSpace(out))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FailedPrecondition")
}

func TestRun_Errors(t *testing.T) {
	dial := startServer(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "no command", args: nil, want: "missing command"},
		{name: "unknown command", args: []string{"frobnicate"}, want: `unknown command "frobnicate"`},
		{name: "too few arguments", args: []string{"add-card", "sample-deck"}, want: "wrong number of arguments"},
		{name: "too many arguments", args: []string{"deck", "a", "b"}, want: "wrong number of arguments"},
		{name: "unknown flag", args: []string{"--nope", "decks"}, want: "unknown flag"},
		{name: "validation", args: []string{"create-deck", "  "}, want: "InvalidArgument"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, dial, "", tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestRun_Help(t *testing.T) {
	out, err := runCLI(t, nil, "", "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "usage: mermoryctl")
	assert.Contains(t, out, "--addr")
}

func TestRun_Token(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	out, err := runCLI(t, nil, "", "--secret", "s3cr3t", "--ttl", "1h", "token", "alice")
	require.NoError(t, err)

	subject, err := token.NewJWT("s3cr3t").ParseAccessToken(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	_, err = runCLI(t, nil, "", "token", "alice")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--secret")

	_, err = runCLI(t, nil, "", "--secret", "s3cr3t", "token")
	require.Error(t, err)
}
