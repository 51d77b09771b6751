package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/handler"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/middleware"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/api/grpc/personpb"
	"github.com/SamandarAsiydinov/FirestoreFull/internal/logger"
)

// Router wires the person form service and its interceptors into a gRPC server.
type Router struct {
	personService handler.PersonService
	logger        *logger.Logger
	health        *health.Server
}

// New creates new gRPC Router instance.
func New(personService handler.PersonService, logger *logger.Logger) *Router {
	return &Router{
		personService: personService,
		logger:        logger,
		health:        health.NewServer(),
	}
}

// Register builds the gRPC server with request logging and panic recovery.
func (r *Router) Register(opts ...grpc.ServerOption) *grpc.Server {
	logging := middleware.NewLogging(r.logger)
	recovery := middleware.NewRecovery(r.logger)

	opts = append(opts, grpc.ChainUnaryInterceptor(
		logging.HandleGRPC,
		recovery.UnaryServerInterceptor(),
	))
	s := grpc.NewServer(opts...)

	r.registerPersonRoutes(s)
	healthpb.RegisterHealthServer(s, r.health)
	r.health.SetServingStatus(personpb.ServiceName, healthpb.HealthCheckResponse_SERVING)

	return s
}

// Shutdown marks every service as not serving.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) registerPersonRoutes(server *grpc.Server) {
	personHandler := handler.NewPerson(r.personService, r.logger)
	personpb.RegisterPersonFormServer(server, personHandler)
}
