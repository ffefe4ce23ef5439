package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/auth"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"

	"github.com/dtroode/mermory-server/internal/api/grpc/apiv1"
	"github.com/dtroode/mermory-server/internal/api/grpc/handler"
	"github.com/dtroode/mermory-server/internal/api/grpc/middleware"
	"github.com/dtroode/mermory-server/internal/logger"
	"github.com/dtroode/mermory-server/internal/model"
)

// Router builds the gRPC server for the deck and study APIs.
type Router struct {
	deckService    handler.DeckService
	studyService   handler.StudyService
	tokens         middleware.TokenParser
	contextManager model.ContextManager
	logger         *logger.Logger
	health         *health.Server
}

// New creates new gRPC Router instance. A nil tokens disables authentication.
func New(
	deckService handler.DeckService,
	studyService handler.StudyService,
	tokens middleware.TokenParser,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		deckService:    deckService,
		studyService:   studyService,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
		health:         health.NewServer(),
	}
}

// requiresAuth matches every method except the health service.
func requiresAuth(_ context.Context, c interceptors.CallMeta) bool {
	return !strings.HasPrefix(c.FullMethod(), "/"+healthpb.Health_ServiceDesc.ServiceName+"/")
}

// Register registers all gRPC services and middleware and returns the
// configured server.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recoveryOpt := recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		r.logger.Error("recovered from panic in gRPC handler", "panic", p)
		return status.Error(codes.Internal, "internal server error")
	})

	unary := []grpc.UnaryServerInterceptor{
		recovery.UnaryServerInterceptor(recoveryOpt),
		logging.HandleGRPC,
	}
	stream := []grpc.StreamServerInterceptor{
		recovery.StreamServerInterceptor(recoveryOpt),
	}

	if r.tokens != nil {
		authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)
		unary = append(unary, selector.UnaryServerInterceptor(
			auth.UnaryServerInterceptor(authenticate.AuthFunc),
			selector.MatchFunc(requiresAuth),
		))
		stream = append(stream, selector.StreamServerInterceptor(
			auth.StreamServerInterceptor(authenticate.AuthFunc),
			selector.MatchFunc(requiresAuth),
		))
	}

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(unary...),
		grpc.ChainStreamInterceptor(stream...),
	)
	r.registerDeckRoutes(s)
	r.registerStudyRoutes(s)
	r.registerHealth(s)

	return s
}

// Shutdown marks every service as not serving so health probes fail during drain.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) registerDeckRoutes(server *grpc.Server) {
	deckHandler := handler.NewDeck(r.deckService, r.logger)
	apiv1.RegisterDecksServer(server, deckHandler)
}

func (r *Router) registerStudyRoutes(server *grpc.Server) {
	studyHandler := handler.NewStudy(r.studyService, r.logger)
	apiv1.RegisterStudyServer(server, studyHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	r.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	r.health.SetServingStatus(apiv1.DecksServiceName, healthpb.HealthCheckResponse_SERVING)
	r.health.SetServingStatus(apiv1.StudyServiceName, healthpb.HealthCheckResponse_SERVING)
}
