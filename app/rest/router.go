package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"slidealbum-service/app/port"
	"slidealbum-service/app/rest/handlers"
	custommw "slidealbum-service/app/rest/middleware"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger         *slog.Logger
	AuthUsecase    port.AuthUsecase
	AlbumUsecase   port.SlideAlbumUsecase
	Stager         port.UploadStager
	UploadRoot     string
	AllowedOrigins []string
	Checkers       map[string]handlers.DependencyChecker
	EnableDebug    bool
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Debug = config.EnableDebug
	e.HTTPErrorHandler = NewErrorMapper(config.Logger)

	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.Logger)
	albumHandler := handlers.NewSlideAlbumHandler(config.AlbumUsecase, config.Stager, config.UploadRoot, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Checkers, config.Logger)

	authMiddleware := custommw.NewAuthMiddleware(config.AuthUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter()

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(custommw.NewCORSMiddleware(config.AllowedOrigins))
	e.Use(custommw.SecurityHeaders())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "method=${method}, uri=${uri}, status=${status}, latency=${latency_human}, error=${error}\n",
	}))

	v1 := e.Group("/v1")

	// Health endpoints (no auth required)
	v1.GET("/health", healthHandler.HealthCheck)
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login)

	authProtected := auth.Group("")
	authProtected.Use(authMiddleware.RequireAuth())
	authProtected.POST("/logout", authHandler.Logout)
	authProtected.GET("/session", authHandler.Session)

	// Slide album endpoints (all protected)
	albums := v1.Group("/slidealbums")
	albums.Use(authMiddleware.RequireAuth())
	albums.GET("", albumHandler.List)
	albums.POST("", albumHandler.Create)
	albums.GET("/:customer/:title", albumHandler.Get)
	albums.DELETE("/:customer/:title", albumHandler.Delete)

	// Committed album files, scoped to the caller's customers
	files := e.Group("/files")
	files.Use(authMiddleware.RequireAuth())
	files.GET("/:customer/*", albumHandler.ServeFile)

	return e
}
