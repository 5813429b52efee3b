package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	grpc_logging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"

	fabulav1alpha1 "github.com/KirkDiggler/fabula-api/api/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/catalog"
	"github.com/KirkDiggler/fabula-api/internal/config"
	"github.com/KirkDiggler/fabula-api/internal/engine/rpgtoolkit"
	"github.com/KirkDiggler/fabula-api/internal/errors"
	"github.com/KirkDiggler/fabula-api/internal/handlers/fabula/v1alpha1"
	"github.com/KirkDiggler/fabula-api/internal/handlers/web"
	"github.com/KirkDiggler/fabula-api/internal/i18n"
	playerorchestrator "github.com/KirkDiggler/fabula-api/internal/orchestrators/player"
	"github.com/KirkDiggler/fabula-api/internal/orchestrators/sessionsync"
	"github.com/KirkDiggler/fabula-api/internal/pkg/clock"
	"github.com/KirkDiggler/fabula-api/internal/pkg/idgen"
	"github.com/KirkDiggler/fabula-api/internal/pkg/tracing"
	redisclient "github.com/KirkDiggler/fabula-api/internal/redis"
	editsessionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/edit_session"
	playerrepo "github.com/KirkDiggler/fabula-api/internal/repositories/player"
	revisionrepo "github.com/KirkDiggler/fabula-api/internal/repositories/revision"
	"github.com/KirkDiggler/fabula-api/internal/schema"
)

const (
	serviceName     = "fabula-api"
	shutdownTimeout = 30 * time.Second
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the gRPC and HTTP servers",
	Long:  `Start the fabula-api gRPC server and its HTTP side channel. Settings come from the environment.`,
	RunE:  runServer,
}

var (
	grpcPort int
	httpPort int
)

func init() {
	serverCmd.Flags().IntVar(&grpcPort, "port", 0, "gRPC server port, overrides FABULA_GRPC_PORT")
	serverCmd.Flags().IntVar(&httpPort, "http-port", 0, "HTTP server port, overrides FABULA_HTTP_PORT")
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.GRPCPort = grpcPort
	}
	if cmd.Flags().Changed("http-port") {
		cfg.HTTPPort = httpPort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracing, err := tracing.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			slog.Warn("failed to flush traces", "error", err.Error())
		}
	}()

	deps, err := buildDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.close()

	orchestrator, err := playerorchestrator.New(&playerorchestrator.Config{
		PlayerRepo:   deps.playerRepo,
		SessionRepo:  deps.sessionRepo,
		RevisionRepo: deps.revisionRepo,
		Engine:       deps.engine,
		Catalog:      deps.catalog,
		Translator:   deps.translator,
		Schema:       deps.schema,
		PlayerIDGen:  idgen.NewUUID("player"),
		SessionIDGen: idgen.NewUUID("session"),
		SessionTTL:   cfg.SessionTTL,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create player orchestrator")
	}

	syncer, err := sessionsync.New(&sessionsync.Config{
		PlayerRepo: deps.playerRepo,
		Service:    orchestrator,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create session syncer")
	}

	playerHandler, err := v1alpha1.NewHandler(&v1alpha1.HandlerConfig{
		PlayerService: orchestrator,
	})
	if err != nil {
		return errors.Wrap(err, "failed to create player handler")
	}

	webHandler, err := web.New(&web.Config{PlayerService: orchestrator})
	if err != nil {
		return errors.Wrap(err, "failed to create web handler")
	}

	grpcServer := newGRPCServer(logger)
	fabulav1alpha1.RegisterPlayerServiceServer(grpcServer, playerHandler)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(fabulav1alpha1.PlayerServiceName, grpc_health_v1.HealthCheckResponse_SERVING)

	// PlayerService has no file descriptor: reflection lists it but cannot describe its methods.
	reflection.Register(grpcServer)

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.GRPCPort))
	if err != nil {
		return errors.Wrapf(err, "failed to listen on %d", cfg.GRPCPort)
	}

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           webHandler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 2)
	go func() {
		slog.Info("gRPC server starting", "port", cfg.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			errChan <- errors.Wrap(err, "failed to serve gRPC")
		}
	}()
	go func() {
		slog.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- errors.Wrap(err, "failed to serve HTTP")
		}
	}()
	go func() {
		if err := syncer.Run(ctx); err != nil {
			slog.Error("session sync stopped", "error", err.Error())
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("received shutdown signal, gracefully stopping")
	case err := <-errChan:
		cancel()
		shutdown(grpcServer, httpServer, healthServer)
		return err
	}

	shutdown(grpcServer, httpServer, healthServer)
	return nil
}

type dependencies struct {
	redis        redisclient.Client
	playerRepo   playerrepo.Repository
	sessionRepo  editsessionrepo.Repository
	revisionRepo revisionrepo.Repository
	engine       *rpgtoolkit.Adapter
	catalog      catalog.Catalog
	translator   *i18n.Translator
	schema       *schema.Validator
}

func buildDependencies(cfg *config.Config) (*dependencies, error) {
	deps := &dependencies{}
	var err error

	deps.redis, err = redisclient.NewClient(cfg.RedisURL, &redisclient.Options{
		PoolSize:        20,
		MinIdleConns:    2,
		ConnMaxIdleTime: 5 * time.Minute,
		MaxRetries:      3,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create redis client")
	}

	clk := clock.New()

	deps.playerRepo, err = playerrepo.NewRedis(&playerrepo.RedisConfig{
		Client: deps.redis,
		Clock:  clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create player repository")
	}

	deps.sessionRepo, err = editsessionrepo.NewRedisRepository(&editsessionrepo.Config{
		Client: deps.redis,
		Clock:  clk,
		TTL:    cfg.SessionTTL,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create edit session repository")
	}

	deps.revisionRepo, err = revisionrepo.NewSQLite(&revisionrepo.Config{
		Path:  cfg.RevisionsDB,
		Clock: clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open revision store")
	}

	deps.engine, err = rpgtoolkit.NewAdapter(&rpgtoolkit.AdapterConfig{
		DiceRoller: dice.DefaultRoller,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create rules engine")
	}

	if deps.catalog, err = catalog.New(); err != nil {
		return nil, errors.Wrap(err, "failed to load class catalog")
	}
	if deps.translator, err = i18n.New(cfg.DefaultLanguage); err != nil {
		return nil, errors.Wrap(err, "failed to load translations")
	}
	if deps.schema, err = schema.New(); err != nil {
		return nil, errors.Wrap(err, "failed to compile schemas")
	}

	return deps, nil
}

func (d *dependencies) close() {
	if d.revisionRepo != nil {
		if err := d.revisionRepo.Close(); err != nil {
			slog.Warn("failed to close revision store", "error", err.Error())
		}
	}
	if d.redis != nil {
		if err := d.redis.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err.Error())
		}
	}
}

func newGRPCServer(logger *slog.Logger) *grpc.Server {
	recoveryOpt := grpc_recovery.WithRecoveryHandlerContext(func(ctx context.Context, p any) error {
		slog.ErrorContext(ctx, "recovered from panic", "panic", fmt.Sprint(p))
		return errors.ToGRPCError(errors.Internal("internal error"))
	})

	return grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler()),
		grpc.ChainUnaryInterceptor(
			grpc_logging.UnaryServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.UnaryServerInterceptor(recoveryOpt),
		),
		grpc.ChainStreamInterceptor(
			grpc_logging.StreamServerInterceptor(interceptorLogger(logger)),
			grpc_recovery.StreamServerInterceptor(recoveryOpt),
		),
	)
}

// interceptorLogger adapts slog to the middleware logging interface
func interceptorLogger(l *slog.Logger) grpc_logging.Logger {
	return grpc_logging.LoggerFunc(func(ctx context.Context, lvl grpc_logging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

func shutdown(grpcServer *grpc.Server, httpServer *http.Server, healthServer *health.Server) {
	healthServer.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Warn("HTTP shutdown incomplete", "error", err.Error())
	}

	stopped := make(chan struct{})
	go func() {
		grpcServer.GracefulStop()
		close(stopped)
	}()

	select {
	case <-shutdownCtx.Done():
		slog.Warn("graceful shutdown timeout exceeded, forcing stop")
		grpcServer.Stop()
	case <-stopped:
		slog.Info("server stopped gracefully")
	}
}
