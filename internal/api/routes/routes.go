package routes

import (
	"context"
	"log"
	"time"

	"workclock-backend/internal/api/handlers"
	"workclock-backend/internal/api/middleware"
	"workclock-backend/internal/auth"
	"workclock-backend/internal/config"
	"workclock-backend/internal/repository"
	"workclock-backend/internal/service"
	"workclock-backend/internal/timezones"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application. The presence
// service is returned alongside the router so the caller can drive the
// background refresher with the same wiring the handlers use.
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *service.PresenceService) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize repositories
	settingsRepo := repository.NewSettingsRepository(db)
	personRepo := repository.NewPersonRepository(db)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	notifier := service.NewNotifier(cfg)
	settingsService := service.NewSettingsService(settingsRepo, notifier, validate, cfg.SettingsKey)

	directory, err := service.NewDirectory(cfg)
	if err != nil {
		log.Printf("Warning: directory not configured, presence serves cached data only: %v", err)
		directory = cacheOnlyDirectory{err: err}
	}
	presenceService := service.NewPresenceService(directory, personRepo, settingsService)

	catalog, err := timezones.Load(cfg.TimezoneCatalogPath)
	if err != nil {
		log.Printf("Warning: could not load timezone catalog, using built-in list: %v", err)
		catalog = timezones.Default()
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	presenceHandler := handlers.NewPresenceHandler(presenceService, cfg.DefaultBoardID)
	peopleHandler := handlers.NewPeopleHandler(presenceService, cfg.DefaultBoardID)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	timezonesHandler := handlers.NewTimezonesHandler(catalog)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Mutating endpoints require a token when a secret is configured
	requireAuth := func() gin.HandlerFunc {
		if cfg.JWTSecret == "" {
			return func(c *gin.Context) { c.Next() }
		}
		return auth.RequireAuth(auth.NewService(cfg.JWTSecret, 24*time.Hour))
	}()

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Presence routes
		presence := v1.Group("/presence")
		{
			presence.GET("", presenceHandler.GetPresence)
			presence.POST("/refresh", requireAuth, presenceHandler.Refresh)
		}

		// People routes
		v1.GET("/people", peopleHandler.ListPeople)

		// Settings routes
		settingsGroup := v1.Group("/settings")
		{
			settingsGroup.GET("", settingsHandler.GetSettings)
			settingsGroup.PUT("", requireAuth, settingsHandler.UpdateSettings)
			settingsGroup.GET("/overrides", settingsHandler.ListOverrides)
			settingsGroup.PUT("/overrides/:key", requireAuth, settingsHandler.PutOverride)
			settingsGroup.DELETE("/overrides/:key", requireAuth, settingsHandler.DeleteOverride)
		}

		// Timezone catalog route
		v1.GET("/timezones", timezonesHandler.ListTimezones)
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, presenceService
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}

// cacheOnlyDirectory stands in when no directory is configured. Reads fall
// through to the cache; refreshes fail with the configuration error.
type cacheOnlyDirectory struct {
	err error
}

func (d cacheOnlyDirectory) ListAssignedPeople(ctx context.Context, boardID string) ([]service.DirectoryPerson, error) {
	return nil, d.err
}
