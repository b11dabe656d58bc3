package di

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"slidealbum-service/app/config"
	"slidealbum-service/app/driver/albumfs"
	"slidealbum-service/app/driver/authapi"
	"slidealbum-service/app/driver/postgres"
	"slidealbum-service/app/driver/session"
	"slidealbum-service/app/gateway"
	"slidealbum-service/app/port"
	"slidealbum-service/app/rest"
	"slidealbum-service/app/rest/handlers"
	"slidealbum-service/app/upload"
	"slidealbum-service/app/usecase"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB           *postgres.DB
	AuthClient   *authapi.Client
	SessionStore port.SessionStore

	// Gateways and repositories
	AuthGateway     port.AuthGateway
	AlbumRepository port.SlideAlbumRepository
	Stager          port.UploadStager

	// Usecases
	AuthUsecase  port.AuthUsecase
	AlbumUsecase port.SlideAlbumUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	var err error
	container.AuthClient, err = authapi.NewClient(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth API client: %w", err)
	}

	container.SessionStore = session.NewMemoryStore()
	container.AuthGateway = gateway.NewAuthGateway(container.AuthClient, logger)

	container.Stager, err = upload.NewStager(cfg.UploadDir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize upload staging: %w", err)
	}

	switch cfg.AlbumBackend {
	case config.BackendPostgres:
		container.DB, err = postgres.NewConnection(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo := postgres.NewAlbumRepository(container.DB.Pool(), cfg.UploadDir, logger)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			container.DB.Close()
			return nil, fmt.Errorf("failed to prepare album schema: %w", err)
		}
		container.AlbumRepository = repo
	default:
		container.AlbumRepository, err = albumfs.NewStore(cfg.UploadDir, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize album store: %w", err)
		}
	}

	container.AuthUsecase = usecase.NewAuthUseCase(container.AuthGateway, container.SessionStore, logger)
	container.AlbumUsecase = usecase.NewSlideAlbumUseCase(container.AlbumRepository, container.Stager, logger)

	logger.Info("container initialized",
		"album_backend", cfg.AlbumBackend,
		"upload_dir", cfg.UploadDir)
	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	checkers := map[string]handlers.DependencyChecker{
		"auth_api": c.AuthClient,
	}
	if c.DB != nil {
		checkers["database"] = c.DB
	}

	return rest.NewRouter(rest.RouterConfig{
		Logger:         c.Logger,
		AuthUsecase:    c.AuthUsecase,
		AlbumUsecase:   c.AlbumUsecase,
		Stager:         c.Stager,
		UploadRoot:     c.Config.UploadDir,
		AllowedOrigins: c.Config.AllowedOrigins,
		Checkers:       checkers,
		EnableDebug:    c.Config.LogLevel == "debug",
	})
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}
	c.Logger.Info("container closed")
	return nil
}
