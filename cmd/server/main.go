package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/nekogravitycat/court-booking-web/internal/app"
	"github.com/nekogravitycat/court-booking-web/internal/config"
	"github.com/nekogravitycat/court-booking-web/internal/db"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/cache"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/logger"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		l := zerolog.New(os.Stderr)
		l.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.LogLevel, cfg.IsProduction())
	ctx = log.WithContext(ctx)

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
	log.Info().Msg("server exited gracefully")
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	// Optional catalog database
	var pool *pgxpool.Pool
	if cfg.DBDSN != "" {
		p, err := db.NewPool(ctx, cfg.DBDSN)
		if err != nil {
			return err
		}
		defer p.Close()
		pool = p
	}

	// Optional schedule cache. The service runs without it.
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unavailable, schedule cache disabled")
		} else {
			defer c.Close()
			rdb = c
		}
	}

	container, err := app.NewContainer(ctx, app.Config{
		IsProduction:     cfg.IsProduction(),
		ProdOrigins:      cfg.Origins(),
		Logger:           log,
		JWTSecret:        cfg.JWTSecret,
		JWTTTL:           cfg.JWTAccessTokenTTL,
		BackendBaseURL:   cfg.BackendBaseURL,
		BackendTimeout:   cfg.BackendTimeout,
		DBPool:           pool,
		Redis:            rdb,
		ScheduleCacheTTL: cfg.ScheduleCacheTTL,
		MediaDir:         cfg.MediaDir,
	})
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           container.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Str("backend", cfg.BackendBaseURL).Msg("server running")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			return err
		}
		return nil
	})

	return g.Wait()
}
