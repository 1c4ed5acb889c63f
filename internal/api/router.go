package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/nekogravitycat/court-booking-web/internal/auth"
	"github.com/nekogravitycat/court-booking-web/internal/booking"
	bookingHttp "github.com/nekogravitycat/court-booking-web/internal/booking/http"
	"github.com/nekogravitycat/court-booking-web/internal/catalog"
	catalogHttp "github.com/nekogravitycat/court-booking-web/internal/catalog/http"
	"github.com/nekogravitycat/court-booking-web/internal/match"
	matchHttp "github.com/nekogravitycat/court-booking-web/internal/match/http"
	"github.com/nekogravitycat/court-booking-web/internal/media"
	mediaHttp "github.com/nekogravitycat/court-booking-web/internal/media/http"
	"github.com/nekogravitycat/court-booking-web/internal/pkg/flight"
	"github.com/nekogravitycat/court-booking-web/internal/schedule"
	scheduleHttp "github.com/nekogravitycat/court-booking-web/internal/schedule/http"
)

// HealthCheck reports whether an optional dependency is reachable.
type HealthCheck func(ctx context.Context) error

// Config holds the dependencies required to build the router.
type Config struct {
	IsProduction bool
	ProdOrigins  []string
	Logger       zerolog.Logger
	JWTManager   *auth.JWTManager

	CatalogService  catalog.Service
	ScheduleService schedule.Service
	BookingService  booking.Service
	MatchService    match.Service
	MediaService    media.Service

	Guard   *flight.Guard
	Tracker *flight.Tracker

	HealthChecks map[string]HealthCheck
}

// NewRouter initializes the HTTP router engine.
// It assembles middleware (request logging, recovery, CORS, session) and
// registers routes for each module.
func NewRouter(cfg Config) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(RequestLogger(cfg.Logger), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:5173", // Vite dev server
			"http://localhost:3000",
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", RequestIDHeader, scheduleHttp.ViewHeader, auth.ClientHeader}
	corsConfig.ExposeHeaders = []string{RequestIDHeader}
	if len(corsConfig.AllowOrigins) > 0 {
		r.Use(cors.New(corsConfig))
	}

	r.GET("/healthz", healthHandler(cfg.HealthChecks))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	catalogHandler := catalogHttp.NewHandler(cfg.CatalogService)
	scheduleHandler := scheduleHttp.NewHandler(cfg.ScheduleService, cfg.Tracker)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService, cfg.ScheduleService, cfg.Guard)
	matchHandler := matchHttp.NewHandler(cfg.MatchService)
	mediaHandler := mediaHttp.NewHandler(cfg.MediaService)

	// Register API routes under /v1. Every route sees the session when one is
	// presented; none require it at the routing level.
	v1 := r.Group("/v1")
	v1.Use(auth.SessionOptional(cfg.JWTManager))
	{
		catalogHttp.RegisterRoutes(v1, catalogHandler)
		scheduleHttp.RegisterRoutes(v1, scheduleHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		matchHttp.RegisterRoutes(v1, matchHandler)
		mediaHttp.RegisterRoutes(v1, mediaHandler)
	}

	return r
}

func healthHandler(checks map[string]HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		// Dependencies are optional, so a failing one degrades the service
		// without making it unhealthy.
		overall := "ok"
		results := gin.H{}
		for name, check := range checks {
			if err := check(ctx); err != nil {
				zerolog.Ctx(ctx).Warn().Err(err).Str("dependency", name).Msg("health check failed")
				results[name] = "down"
				overall = "degraded"
				continue
			}
			results[name] = "up"
		}

		c.JSON(http.StatusOK, gin.H{"status": overall, "checks": results})
	}
}
