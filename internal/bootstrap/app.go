package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gin-gonic/gin"

	"smartx-backend/internal/ai"
	"smartx-backend/internal/documents"
	"smartx-backend/internal/progress"
	"smartx-backend/internal/qa"
	"smartx-backend/internal/shared/config"
	"smartx-backend/internal/shared/server"
	"smartx-backend/internal/shared/storage/db"
	"smartx-backend/internal/shared/storage/object"
	localstore "smartx-backend/internal/shared/storage/object/local"
	s3store "smartx-backend/internal/shared/storage/object/s3"
	"smartx-backend/internal/shared/telemetry"
	"smartx-backend/internal/tests"
	"smartx-backend/internal/users"
)

// App holds the wired application.
type App struct {
	Config config.Config
	Router *gin.Engine
	DB     *sql.DB
	Store  object.ObjectStore
	AI     *ai.Gateway

	UsersRepo     users.Repo
	DocumentsRepo documents.Repo
	QARepo        qa.Repo
	TestsRepo     tests.Repo

	UsersService     *users.Service
	DocumentsService *documents.Service
	QAService        *qa.Service
	TestsService     *tests.Service
	ProgressService  *progress.Service
}

// Build loads configuration and wires the whole application.
func Build(ctx context.Context) (*App, error) {
	return BuildWithConfig(ctx, config.Load())
}

// BuildWithConfig wires the application around the given configuration. When
// the database is unreachable outside production the app falls back to
// in-memory repositories so local development works without Postgres.
func BuildWithConfig(ctx context.Context, cfg config.Config) (*App, error) {
	store, err := buildStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := connectDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gateway := ai.New(cfg.GeminiAPIKey, cfg.GeminiModel)

	app := &App{
		Config: cfg,
		DB:     sqlDB,
		Store:  store,
		AI:     gateway,
	}

	if sqlDB != nil {
		app.UsersRepo = &users.PGRepo{DB: sqlDB}
		app.DocumentsRepo = &documents.PGRepo{DB: sqlDB}
		app.QARepo = &qa.PGRepo{DB: sqlDB}
		app.TestsRepo = &tests.PGRepo{DB: sqlDB}
	} else {
		app.UsersRepo = users.NewMemoryRepo()
		app.DocumentsRepo = documents.NewMemoryRepo()
		app.QARepo = qa.NewMemoryRepo()
		app.TestsRepo = tests.NewMemoryRepo()
	}

	app.UsersService = users.NewService(app.UsersRepo)
	app.DocumentsService = documents.NewService(store, app.DocumentsRepo, gateway)
	app.QAService = qa.NewService(app.QARepo, app.DocumentsService, gateway)
	app.TestsService = tests.NewService(app.TestsRepo, app.DocumentsService, gateway)
	app.ProgressService = progress.NewService(app.DocumentsService, app.TestsRepo, app.QARepo)

	app.Router = server.NewRouter(cfg, server.Handlers{
		Users:     users.NewHandler(app.UsersService),
		Documents: documents.NewHandler(app.DocumentsService),
		QA:        qa.NewHandler(app.QAService),
		Tests:     tests.NewHandler(app.TestsService),
		Progress:  progress.NewHandler(app.ProgressService),
	})

	return app, nil
}

// Close releases held resources.
func (a *App) Close() {
	if a != nil && a.DB != nil {
		_ = a.DB.Close()
	}
}

func buildStore(ctx context.Context, cfg config.Config) (object.ObjectStore, error) {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("init s3 store: %w", err)
		}
		return store, nil
	}
	return localstore.New(cfg.LocalStoreDir), nil
}

func connectDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("DATABASE_URL is required in production")
		}
		telemetry.Warn("bootstrap.memory_mode", map[string]any{"reason": "DATABASE_URL not set"})
		return nil, nil
	}

	opts := db.OptionsFromEnv(db.DefaultServerOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		if cfg.Env == "production" {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		telemetry.Warn("bootstrap.memory_mode", map[string]any{"reason": err.Error()})
		return nil, nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		_ = sqlDB.Close()
		if cfg.Env == "production" {
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		telemetry.Warn("bootstrap.memory_mode", map[string]any{"reason": err.Error()})
		return nil, nil
	}
	return sqlDB, nil
}
