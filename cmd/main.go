package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/dtroode/mermory-server/internal/api/grpc/context"
	"github.com/dtroode/mermory-server/internal/api/grpc/middleware"
	"github.com/dtroode/mermory-server/internal/api/grpc/router"
	grpcServer "github.com/dtroode/mermory-server/internal/api/grpc/server"
	"github.com/dtroode/mermory-server/internal/config"
	"github.com/dtroode/mermory-server/internal/logger"
	"github.com/dtroode/mermory-server/internal/model"
	"github.com/dtroode/mermory-server/internal/repository/postgres"
	"github.com/dtroode/mermory-server/internal/repository/sqlite"
	"github.com/dtroode/mermory-server/internal/scheduler"
	"github.com/dtroode/mermory-server/internal/server"
	"github.com/dtroode/mermory-server/internal/service"
	storage "github.com/dtroode/mermory-server/internal/storage/minio"
	"github.com/dtroode/mermory-server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFormat)

	blobs, closeBlobs, err := openBlobStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "backend", cfg.StorageBackend, "error", err)
	}
	defer closeBlobs()

	deckService, err := service.NewDeck(ctx, blobs, cfg.StateKey, logger.With("component", "decks"))
	if err != nil {
		logger.Fatal("failed to initialize deck store", "error", err)
	}
	studyService := service.NewStudy(deckService, logger.With("component", "study"))

	sched, err := scheduler.New(studyService, cfg.Session.PruneInterval, cfg.Session.IdleTTL, logger)
	if err != nil {
		logger.Fatal("failed to initialize scheduler", "error", err)
	}
	sched.Start()
	defer sched.Stop()

	var tokens middleware.TokenParser
	if cfg.JWT.Enabled {
		tokens = token.NewJWT(cfg.JWT.Secret)
	}

	r := router.New(deckService, studyService, tokens, grpcctx.NewManager(), logger)
	grpcSrv := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC)

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("starting server", "address", s.Address(), "tls", cfg.GRPC.EnableHTTPS, "auth", cfg.JWT.Enabled)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	r.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// openBlobStore connects to the configured backend. The returned func
// releases its resources.
func openBlobStore(ctx context.Context, cfg *config.Config) (model.BlobStore, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendPostgres:
		conn, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewBlobRepository(conn), func() { _ = conn.Close() }, nil
	case config.BackendMinio:
		client, err := storage.New(ctx, cfg.Storage)
		if err != nil {
			return nil, nil, err
		}
		return client, func() {}, nil
	default:
		db, err := sqlite.Open(ctx, cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewBlobRepository(db), func() { _ = db.Close() }, nil
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
