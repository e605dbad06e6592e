package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deli-admin/internal/auth"
	"deli-admin/internal/config"
	"deli-admin/internal/database"
	"deli-admin/internal/handler"
	"deli-admin/internal/imaging"
	"deli-admin/internal/importer"
	"deli-admin/internal/repository"
	"deli-admin/internal/router"
	"deli-admin/internal/service"
	"deli-admin/internal/storage"

	"github.com/rs/zerolog"
)

// sessionPurgeInterval is how often expired sessions are removed.
const sessionPurgeInterval = 15 * time.Minute

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting deli-admin API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.Migrate(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize object storage
	storageOpts := storage.Options{
		Driver:          cfg.Storage.Driver,
		Region:          cfg.Storage.Region,
		Endpoint:        cfg.Storage.Endpoint,
		AccessKeyID:     cfg.Storage.AccessKeyID,
		SecretAccessKey: cfg.Storage.SecretAccessKey,
		UsePathStyle:    cfg.Storage.UsePathStyle,
		PublicBaseURL:   cfg.Storage.PublicBaseURL,
		LocalDir:        cfg.Storage.LocalDir,
	}
	productBucket, err := storage.Open(ctx, storageOpts, cfg.Storage.ProductBucket, logger)
	if err != nil {
		return fmt.Errorf("failed to open product bucket: %w", err)
	}
	galleryBucket, err := storage.Open(ctx, storageOpts, cfg.Storage.GalleryBucket, logger)
	if err != nil {
		return fmt.Errorf("failed to open gallery bucket: %w", err)
	}

	compressor := imaging.NewCompressor(cfg.Images.MaxWidth, cfg.Images.Quality, cfg.Images.MaxPixels)
	pipeline := imaging.NewPipeline(compressor, productBucket, galleryBucket, logger)

	// Initialize repositories
	itemRepo := repository.NewMenuItemRepository(pool, logger)
	pageRepo := repository.NewPageRepository(pool, logger)
	settingsRepo := repository.NewSettingsRepository(pool, logger)
	adminRepo := repository.NewAdminRepository(pool, logger)
	sessionRepo := repository.NewSessionRepository(pool, logger)

	// Initialize services
	csvImporter := importer.New(itemRepo, cfg.Import.ResetDelay, logger)
	menuService := service.NewMenuService(itemRepo, pipeline, logger)
	pageService := service.NewPageService(pageRepo, pipeline, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)
	authService := service.NewAuthService(adminRepo, sessionRepo, auth.NewTokenIssuer(cfg.Auth.JWTSecret), cfg.Auth.SessionTTL, logger)

	go purgeSessions(ctx, authService, logger)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Menu:     handler.NewMenuHandler(menuService, cfg.Images.MaxUploadBytes, logger),
		Import:   handler.NewImportHandler(csvImporter, cfg.Import.MaxFileBytes, logger),
		Page:     handler.NewPageHandler(pageService, cfg.Images.MaxUploadBytes, logger),
		Settings: handler.NewSettingsHandler(settingsService, logger),
		Auth:     handler.NewAuthHandler(authService, logger),
	}

	routerOpts := router.Options{AllowedOrigins: cfg.CORS.AllowedOrigins}
	if cfg.Storage.Driver == storage.DriverLocal {
		routerOpts.MediaDir = cfg.Storage.LocalDir
	}

	// Initialize router
	mux := router.New(handlers, authService, routerOpts, logger)

	// Create HTTP server. Uploads are compressed and stored inside the
	// request, so the write timeout is longer than a plain JSON API needs.
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("storage_driver", cfg.Storage.Driver).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// purgeSessions removes expired sessions until ctx is cancelled.
func purgeSessions(ctx context.Context, authService service.AuthService, logger zerolog.Logger) {
	ticker := time.NewTicker(sessionPurgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := authService.PurgeExpired(ctx); err != nil {
				logger.Warn().Err(err).Msg("session purge failed")
			}
		}
	}
}
