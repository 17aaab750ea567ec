package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/Dosada05/tournament-league/config"
	"github.com/Dosada05/tournament-league/db"
	"github.com/Dosada05/tournament-league/handlers"
	"github.com/Dosada05/tournament-league/realtime"
	"github.com/Dosada05/tournament-league/repositories"
	api "github.com/Dosada05/tournament-league/routes"
	"github.com/Dosada05/tournament-league/services"
	"github.com/Dosada05/tournament-league/storage"
)

const shutdownTimeout = 15 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("application failed", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("application exited")
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	logger.Info("configuration loaded",
		slog.Int("port", cfg.ServerPort),
		slog.String("storage", cfg.StorageBackend),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var uploader storage.FileUploader
	if cfg.R2Enabled() {
		uploader, err = storage.NewCloudflareR2Uploader(ctx, storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2AccountID,
			AccessKeyID:     cfg.R2AccessKeyID,
			SecretAccessKey: cfg.R2SecretAccessKey,
			BucketName:      cfg.R2BucketName,
			PublicBaseURL:   cfg.R2PublicBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize Cloudflare R2 uploader: %w", err)
		}
		logger.Info("Cloudflare R2 uploader initialized", slog.String("bucket", cfg.R2BucketName))
	} else {
		logger.Info("Cloudflare R2 not configured, export archiving disabled")
	}

	store, closeStore, err := openSnapshotStore(ctx, cfg, uploader, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	wsHub := realtime.NewHub(logger)

	var rng *rand.Rand
	if cfg.RandomSeed != nil {
		rng = rand.New(rand.NewPCG(*cfg.RandomSeed, *cfg.RandomSeed))
		logger.Info("Team draws are seeded", slog.Uint64("seed", *cfg.RandomSeed))
	}

	tournamentService := services.NewTournamentService(store, uploader, wsHub, rng, logger)
	if err := tournamentService.Load(ctx); err != nil {
		return err
	}
	authService := services.NewAuthService(cfg.OrganizerName, cfg.OrganizerPasswordHash)
	logger.Info("Services initialized")

	router := chi.NewRouter()
	api.SetupRoutes(router, api.Handlers{
		Auth:        handlers.NewAuthHandler(authService, cfg.JWTSecretKey, cfg.TokenTTL),
		Tournament:  handlers.NewTournamentHandler(tournamentService),
		Participant: handlers.NewParticipantHandler(tournamentService),
		Team:        handlers.NewTeamHandler(tournamentService),
		Dashboard:   handlers.NewDashboardHandler(tournamentService),
		Transfer:    handlers.NewTransferHandler(tournamentService),
		WebSocket:   handlers.NewWebSocketHandler(wsHub, cfg.CORSAllowedOrigins, logger),
	}, api.Options{
		JWTSecret:      cfg.JWTSecretKey,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})
	logger.Info("Routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		wsHub.Run(gctx)
		return nil
	})

	g.Go(func() error {
		logger.Info("starting server", slog.String("address", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server", slog.Duration("timeout", shutdownTimeout))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			return err
		}
		logger.Info("server shutdown complete")
		return nil
	})

	return g.Wait()
}

// openSnapshotStore builds the configured snapshot backend. The returned func releases
// whatever the backend holds open.
func openSnapshotStore(ctx context.Context, cfg *config.Config, uploader storage.FileUploader, logger *slog.Logger) (storage.SnapshotStore, func(), error) {
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		closeDB := func() { closeDatabase(dbConn, logger) }
		if err := db.EnsureSchema(ctx, dbConn); err != nil {
			closeDB()
			return nil, nil, err
		}
		logger.Info("database connection established")

		repo := repositories.NewPostgresSnapshotRepository(dbConn)
		if at, err := repo.UpdatedAt(ctx); err == nil {
			logger.Info("Stored snapshot found", slog.Time("updated_at", at))
		}
		return repo, closeDB, nil

	case config.StorageR2:
		if uploader == nil {
			return nil, nil, errors.New("r2 storage backend requires an uploader")
		}
		logger.Info("Snapshots stored in object storage", slog.String("key", storage.SnapshotObjectKey))
		return storage.NewObjectStore(uploader, storage.SnapshotObjectKey), func() {}, nil

	default:
		store, err := storage.NewFileStore(cfg.SnapshotPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open snapshot file: %w", err)
		}
		logger.Info("Snapshots stored on disk", slog.String("path", cfg.SnapshotPath))
		return store, func() {}, nil
	}
}

func closeDatabase(dbConn *sql.DB, logger *slog.Logger) {
	if err := dbConn.Close(); err != nil {
		logger.Error("failed to close database connection", slog.Any("error", err))
		return
	}
	logger.Info("database connection closed")
}
