package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"gonotation/internal/adapters"
	"gonotation/internal/bootstrap"
	recordDelivery "gonotation/internal/delivery/record"
	"gonotation/internal/metrics"
	ownMiddleware "gonotation/internal/middleware"
	repo "gonotation/internal/repository"
	recordUsecase "gonotation/internal/usecase/record"
)

type mainDeliveryHandler struct {
	record   *recordDelivery.RecordHandler
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

func main() {
	logger := NewLogger()
	defer logger.Sync()

	cfg, err := bootstrap.Setup(".env")
	if err != nil {
		logger.Error("Failed to setup configuration", zap.Error(err))
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go handleShutdown(cancel, logger)

	redisAdapter := initRedisAdapter(ctx, logger, cfg)
	if redisAdapter != nil {
		defer func() {
			if err := redisAdapter.Close(context.Background()); err != nil {
				logger.Warnw("Failed to close redis", "error", err)
			}
		}()
	}

	handlers, err := initializeDeliveryHandlers(*cfg, logger, redisAdapter)
	if err != nil {
		logger.Error("Failed to register metrics", zap.Error(err))
		return
	}

	r := chi.NewRouter()
	handlers.Router(r, cfg.IsLocalCors)

	server := &http.Server{
		Addr:              ":" + cfg.ServerPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Infof("Server is running on port %s", cfg.ServerPort)
	if err := serve(ctx, server); err != nil {
		logger.Error("Server stopped", zap.Error(err))
		return
	}
	logger.Info("Server stopped")
}

// serve runs server until it fails or ctx is done, then shuts it down.
func serve(ctx context.Context, server *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
	defer stop()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func NewLogger() *zap.SugaredLogger {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	return logger.Sugar()
}

func (h *mainDeliveryHandler) Router(r *chi.Mux, isLocalCors bool) {
	if isLocalCors {
		r.Use(ownMiddleware.CORS)
	}
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(h.metrics.Middleware)

	h.record.Routes(r)
	r.Handle("/metrics", promhttp.HandlerFor(h.registry, promhttp.HandlerOpts{}))
}

// initRedisAdapter returns nil when no REDIS_URL is configured or Redis is
// unreachable; the service then runs without a branch cache.
func initRedisAdapter(ctx context.Context, log *zap.SugaredLogger, cfg *bootstrap.Config) *adapters.AdapterRedis {
	if cfg.RedisUrl == "" {
		log.Info("REDIS_URL is empty, branch cache disabled")
		return nil
	}
	redisAdapter := adapters.NewAdapterRedis(cfg, log)
	if err := redisAdapter.Init(ctx); err != nil {
		log.Warnw("Redis unavailable, branch cache disabled", "error", err)
		return nil
	}
	return redisAdapter
}

func initializeDeliveryHandlers(
	cfg bootstrap.Config,
	log *zap.SugaredLogger,
	redisAdapter *adapters.AdapterRedis,
) (*mainDeliveryHandler, error) {
	registry := prometheus.NewRegistry()
	m := metrics.New()
	if err := m.Register(registry); err != nil {
		return nil, err
	}

	var store recordUsecase.BranchStore
	if redisAdapter != nil {
		store = repo.NewBranchRepository(log, redisAdapter.GetClient(), cfg.CacheTTL)
	}
	recordUC := recordUsecase.NewRecordUseCase(store, log, m)

	return &mainDeliveryHandler{
		record:   recordDelivery.NewRecordHandler(cfg, log, recordUC),
		registry: registry,
		metrics:  m,
	}, nil
}

func handleShutdown(cancelFunc context.CancelFunc, log *zap.SugaredLogger) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Info("Received shutdown signal")
	cancelFunc()
}
