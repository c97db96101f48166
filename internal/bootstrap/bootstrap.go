package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/aceup/internal/app/controllers"
	appMigrations "github.com/yigit/aceup/internal/app/migrations"
	appRepos "github.com/yigit/aceup/internal/app/repositories"
	appRoutes "github.com/yigit/aceup/internal/app/routes"
	appServices "github.com/yigit/aceup/internal/app/services"
	"github.com/yigit/aceup/internal/config"
	"github.com/yigit/aceup/internal/db"
	"github.com/yigit/aceup/internal/domain"
	appMiddleware "github.com/yigit/aceup/internal/middleware"
	"github.com/yigit/aceup/internal/pkg/gradestore"
	"github.com/yigit/aceup/internal/pkg/logger"
)

// DefaultConfigPath is used when no config path is given.
var DefaultConfigPath = filepath.Join("configs", "config.yaml")

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store               domain.GradeStore
	Services            *appServices.Services
	GradeController     *appControllers.GradeController
	AnalyticsController *appControllers.AnalyticsController
	HealthController    *appControllers.HealthController
	Logger              zerolog.Logger
}

// Storage is an opened grade store and the function releasing it.
type Storage struct {
	Store  domain.GradeStore
	Driver string
	Close  func() error
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// Log lines go to out, or stdout when out is nil.
func LoadConfigAndSetupLogger(configPath string, out io.Writer) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		Output: out,
	})

	lgr := logger.Get()
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool
	lgr.Info().Msg("Database connection successfully established.")

	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	return dbPool, nil
}

// SetupGradeStore opens the grade store selected by cfg.Storage.Driver.
func SetupGradeStore(cfg *config.Config, lgr zerolog.Logger) (*Storage, error) {
	driver := cfg.Storage.Driver
	noop := func() error { return nil }

	switch driver {
	case config.StorageFile:
		store, err := gradestore.NewFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize file grade store: %w", err)
		}
		return &Storage{Store: store, Driver: driver, Close: noop}, nil

	case config.StorageSQLite:
		store, err := gradestore.NewSQLiteStore(cfg.Storage.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize sqlite grade store: %w", err)
		}
		return &Storage{Store: store, Driver: driver, Close: store.Close}, nil

	case config.StoragePostgres:
		dbPool, err := SetupDatabase(cfg, lgr)
		if err != nil {
			return nil, fmt.Errorf("failed to setup database: %w", err)
		}
		repos := appRepos.NewRepositories(dbPool)
		return &Storage{
			Store:  repos.GradeRepository,
			Driver: driver,
			Close: func() error {
				dbPool.Close()
				return nil
			},
		}, nil

	case config.StorageMemory:
		lgr.Warn().Msg("Using in-memory grade store, grades will not survive a restart")
		return &Storage{Store: gradestore.NewMemoryStore(), Driver: driver, Close: noop}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}

// BuildDependencies initializes services and controllers on top of store.
func BuildDependencies(storage *Storage, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{
		Store:  storage.Store,
		Logger: lgr,
	}

	deps.Services = appServices.NewServices(storage.Store, lgr)

	deps.GradeController = appControllers.NewGradeController(deps.Services.GradeService)
	deps.AnalyticsController = appControllers.NewAnalyticsController(deps.Services.AnalyticsService)
	deps.HealthController = appControllers.NewHealthController(storage.Driver)

	return deps
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	switch strings.ToLower(cfg.Server.Mode) {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	lgr.Debug().Str("mode", gin.Mode()).Msg("Gin mode set")

	appMiddleware.RegisterJSONFieldNames()

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestID(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router,
		deps.GradeController,
		deps.AnalyticsController,
		deps.HealthController,
	)

	return router
}
