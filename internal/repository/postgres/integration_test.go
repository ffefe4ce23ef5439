//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/dtroode/mermory-server/internal/model"
	repo "github.com/dtroode/mermory-server/internal/repository/postgres"
	"github.com/dtroode/mermory-server/internal/service"
	"github.com/dtroode/mermory-server/internal/testutil"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "mermory_test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/mermory_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestBlobRepository_Postgres(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	require.NoError(t, conn.Ping(ctx))

	blobs := repo.NewBlobRepository(conn)

	_, err = blobs.Load(ctx, "missing")
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, blobs.Save(ctx, "k", []byte(`[1]`)))
	require.NoError(t, blobs.Save(ctx, "k", []byte(`[2]`)))

	got, err := blobs.Load(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[2]`), got)
}

func TestDeckStore_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	blobs := repo.NewBlobRepository(conn)
	lg := testutil.MakeNoopLogger()

	first, err := service.NewDeck(ctx, blobs, "restart-decks", lg)
	require.NoError(t, err)
	deck, err := first.CreateDeck(ctx, "Chemistry", "")
	require.NoError(t, err)
	_, err = first.AddCard(ctx, deck.ID, "H2O", "water")
	require.NoError(t, err)

	second, err := service.NewDeck(ctx, blobs, "restart-decks", lg)
	require.NoError(t, err)

	got, err := second.GetDeck(ctx, deck.ID)
	require.NoError(t, err)
	require.Len(t, got.Cards, 1)
	assert.Equal(t, "water", got.Cards[0].Back)
	assert.Len(t, second.ListDecks(ctx, ""), 2)
}
