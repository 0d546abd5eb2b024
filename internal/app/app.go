// Package app wires configuration, storage, cache, events and HTTP handlers into a
// runnable server.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SAP-F-2025/employability-assessment/internal/cache"
	"github.com/SAP-F-2025/employability-assessment/internal/config"
	"github.com/SAP-F-2025/employability-assessment/internal/content"
	"github.com/SAP-F-2025/employability-assessment/internal/events"
	"github.com/SAP-F-2025/employability-assessment/internal/handlers"
	"github.com/SAP-F-2025/employability-assessment/internal/monitoring"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories"
	"github.com/SAP-F-2025/employability-assessment/internal/repositories/postgres"
	"github.com/SAP-F-2025/employability-assessment/internal/services"
	"github.com/SAP-F-2025/employability-assessment/internal/utils"
	"github.com/SAP-F-2025/employability-assessment/internal/validator"
	"github.com/SAP-F-2025/employability-assessment/pkg"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const shutdownTimeout = 10 * time.Second

var migrate = pkg.Migrate

type App struct {
	Config *config.Config
	Logger utils.Logger
	Router *gin.Engine

	repo      repositories.Repository
	publisher events.EventPublisher
	redis     *redis.Client
	stop      context.CancelFunc
}

// New connects every dependency described by cfg. Redis and the event broker are
// optional: when they cannot be reached the app falls back to no caching and the
// in-memory publisher.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := utils.NewLogger(cfg.Environment)
	slogger := utils.ToSlogLogger(logger)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	c, err := content.Load(cfg.QuestionBankPath, cfg.SuggestionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	logger.Info("Content loaded", "questions", len(c.Bank))

	db, err := pkg.InitDatabase(cfg)
	if err != nil {
		return nil, err
	}
	repo := postgres.NewRepository(db)
	a := &App{Config: cfg, Logger: logger, repo: repo}

	if err := migrate(db); err != nil {
		a.Close()
		return nil, err
	}

	cacheService := cache.NewNoopCache()
	if cfg.CacheEnabled {
		client, err := pkg.NewRedisClient(ctx, cfg)
		if err != nil {
			logger.Warn("Redis unavailable, caching disabled", "error", err)
		} else {
			a.redis = client
			cacheService = cache.NewRedisCache(client, logger)
		}
	}

	publisher, err := cfg.Events.CreateEventPublisher(slogger)
	if err != nil {
		logger.Error("Failed to create event publisher, falling back to mock", "error", err)
		publisher = events.NewMockEventPublisher(slogger)
	}
	a.publisher = publisher

	consumerCtx, stop := context.WithCancel(context.Background())
	a.stop = stop
	if channel, ok := publisher.(*events.ChannelEventPublisher); ok {
		messages, err := channel.Subscribe(consumerCtx)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to subscribe to events: %w", err)
		}
		go events.LogEvents(consumerCtx, messages, slogger)
	}

	metrics := monitoring.NewMetrics()
	serviceManager := services.NewServiceManager(services.Dependencies{
		Repo:      repo,
		Content:   c,
		Publisher: publisher,
		Cache:     cacheService,
		CacheTTL:  cfg.CacheTTL,
		Metrics:   metrics,
		Validator: validator.New(),
		Logger:    slogger,
	})

	a.Router = handlers.NewRouter(
		handlers.NewHandlerManager(serviceManager, repo, logger),
		logger,
		handlers.RouterOptions{
			CORSOrigins: cfg.CORSOrigins,
			StaticDir:   cfg.StaticDir,
			Metrics:     metrics,
		},
	)
	return a, nil
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully
func (a *App) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("Server listening", "port", a.Config.Port, "environment", a.Config.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.Logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Close releases the event publisher, cache connection and database
func (a *App) Close() error {
	if a.stop != nil {
		a.stop()
	}

	var errs []error
	if a.publisher != nil {
		if err := a.publisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close publisher: %w", err))
		}
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
	}
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close database: %w", err))
		}
	}
	return errors.Join(errs...)
}
