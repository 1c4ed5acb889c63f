package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/court-booking-web/internal/api"
	"github.com/nekogravitycat/court-booking-web/internal/auth"
	"github.com/nekogravitycat/court-booking-web/internal/backend"
	"github.com/nekogravitycat/court-booking-web/internal/booking"
	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	"github.com/nekogravitycat/court-booking-web/internal/match"
	"github.com/nekogravitycat/court-booking-web/internal/media"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/cache"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/flight"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/storage"
	"github.com/nekogravitycat/court-booking-web/internal/schedule"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	Logger       zerolog.Logger

	JWTSecret string
	JWTTTL    time.Duration

	// Backend overrides the HTTP client built from BackendBaseURL. Tests use it.
	Backend        backend.API
	BackendBaseURL string
	BackendTimeout time.Duration

	DBPool           *pgxpool.Pool // optional catalog source
	Redis            *redis.Client // optional schedule cache
	ScheduleCacheTTL time.Duration

	MediaDir string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager
}

// NewContainer initializes all modules and returns the container.
func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	backendAPI := cfg.Backend
	if backendAPI == nil {
		backendAPI = backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)
	}

	checks := map[string]api.HealthCheck{}

	// Catalog Module
	var catalogRepo catalog.Repository
	if cfg.DBPool != nil {
		catalogRepo = catalog.NewPgxRepository(cfg.DBPool)
		checks["postgres"] = cfg.DBPool.Ping
	}
	venues, err := catalog.Load(ctx, catalogRepo, cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue catalog: %w", err)
	}
	catalogService, err := catalog.NewService(venues)
	if err != nil {
		return nil, fmt.Errorf("invalid venue catalog: %w", err)
	}

	// Schedule Module
	var scheduleCache cache.Cache = cache.Noop{}
	if cfg.Redis != nil {
		scheduleCache = cache.NewRedis(cfg.Redis, "court-booking-web:")
		checks["redis"] = scheduleCache.Ping
	}
	scheduleService := schedule.NewService(catalogService, backendAPI, scheduleCache, cfg.ScheduleCacheTTL)

	// Booking Module
	bookingService := booking.NewService(backendAPI, scheduleService)

	// Match Module
	matchService := match.NewService(backendAPI)

	// Media Module
	store, err := storage.NewLocalStorage(cfg.MediaDir)
	if err != nil {
		return nil, fmt.Errorf("failed to init media storage: %w", err)
	}
	mediaService := media.NewService(catalogService, store, storage.NewImageProcessor(80), &http.Client{Timeout: 15 * time.Second})

	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		Logger:          cfg.Logger,
		JWTManager:      jwtManager,
		CatalogService:  catalogService,
		ScheduleService: scheduleService,
		BookingService:  bookingService,
		MatchService:    matchService,
		MediaService:    mediaService,
		Guard:           flight.NewGuard(),
		Tracker:         flight.NewTracker(),
		HealthChecks:    checks,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,
	}, nil
}
