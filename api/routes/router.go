// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"festly/internal/auth"
	"festly/internal/booking"
	"festly/internal/catalog"
	"festly/internal/notifications"
	"festly/internal/shared/config"
	"festly/internal/shared/database"
	"festly/internal/venues"
	"festly/pkg/cache"
	"festly/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config   *config.Config
	db       *database.DB
	cache    cache.Service
	log      *logger.Logger
	notifier booking.ConfirmationNotifier

	// built during venue/catalog setup, consumed by booking setup
	venueService   venues.Service
	catalogService catalog.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, notifier booking.ConfirmationNotifier) *Router {
	var cacheService cache.Service
	if db.GetRedis() != nil {
		cacheService = cache.NewService(db.GetRedis())
	}

	return &Router{
		config:   cfg,
		db:       db,
		cache:    cacheService,
		log:      logger.GetDefault(),
		notifier: notifier,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)
		r.setupVenueRoutes(api)
		r.setupCatalogRoutes(api)
		r.setupBookingRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "festly-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "festly-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController, r.config)

	authRouter.SetupRoutes(rg)
}

// setupVenueRoutes configures venue browsing and admin routes
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	r.venueService = venues.NewService(venueRepo, r.cache)
	venueController := venues.NewController(r.venueService)

	venues.SetupVenueRoutes(rg, venueController)
}

// setupCatalogRoutes configures catalog browsing and admin routes
func (r *Router) setupCatalogRoutes(rg *gin.RouterGroup) {
	catalogRepo := catalog.NewRepository(r.db.GetPostgreSQL())
	r.catalogService = catalog.NewService(catalogRepo, r.cache)
	catalogController := catalog.NewController(r.catalogService)

	catalog.SetupCatalogRoutes(rg, catalogController)
}

// setupBookingRoutes wires the booking workflow with its collaborators:
// venue rates, catalog items, the Redis session store, and the
// reservation submission adapter
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := booking.NewRepository(r.db.GetPostgreSQL())

	var sessions booking.SessionStore
	if r.cache != nil {
		sessions = booking.NewRedisSessionStore(r.cache, r.config.Redis.BookingSessionTTL)
	} else {
		// Redis is down; sessions fall back to process memory
		sessions = booking.NewMemorySessionStore()
	}

	adapter := booking.NewSubmissionAdapter(bookingRepo)

	bookingService := booking.NewService(
		r.venueService,
		r.catalogService,
		sessions,
		adapter,
		bookingRepo,
		r.notifier,
		r.cache,
		r.log,
	)
	bookingController := booking.NewController(bookingService)

	booking.SetupBookingRoutes(rg, bookingController)
}

// NewNotifier builds the Kafka-backed confirmation notifier, or nil
// when Kafka is disabled (confirmations then skip the email pipeline)
func NewNotifier(cfg *config.Config) (booking.ConfirmationNotifier, notifications.Producer, error) {
	if !cfg.Kafka.Enabled {
		return nil, nil, nil
	}

	producer, err := notifications.NewKafkaProducer(cfg.Kafka)
	if err != nil {
		return nil, nil, err
	}

	return notifications.NewConfirmationNotifier(producer), producer, nil
}
