package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/mertkaya/edumanage/docs" // Import generated swagger docs
	appControllers "github.com/mertkaya/edumanage/internal/app/controllers"
	appMigrations "github.com/mertkaya/edumanage/internal/app/migrations"
	appRoutes "github.com/mertkaya/edumanage/internal/app/routes"
	appServices "github.com/mertkaya/edumanage/internal/app/services"
	"github.com/mertkaya/edumanage/internal/app/storage"
	memoryStore "github.com/mertkaya/edumanage/internal/app/storage/memory"
	postgresStore "github.com/mertkaya/edumanage/internal/app/storage/postgres"
	"github.com/mertkaya/edumanage/internal/config"
	"github.com/mertkaya/edumanage/internal/db"
	appMiddleware "github.com/mertkaya/edumanage/internal/middleware"
	pkgAuth "github.com/mertkaya/edumanage/internal/pkg/auth"
	"github.com/mertkaya/edumanage/internal/pkg/cache"
	"github.com/mertkaya/edumanage/internal/pkg/helpers"
	"github.com/mertkaya/edumanage/internal/pkg/logger"
	"github.com/mertkaya/edumanage/internal/pkg/receipts"
	"github.com/mertkaya/edumanage/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store          storage.Storage
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Cache          *cache.Helper
	Receipts       *receipts.Generator
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupStorage builds the backing store selected by the configuration.
// The returned pool is nil for the in-memory driver.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (storage.Storage, *pgxpool.Pool, error) {
	switch cfg.Storage.Driver {
	case "memory":
		lgr.Info().Msg("Using in-memory storage")
		return memoryStore.New(memoryStore.WithHostelCapacity(cfg.Hostel.Capacity)), nil, nil

	case "postgres":
		lgr.Info().Msg("Establishing database connection...")
		database, err := db.NewPostgresDB(cfg)
		if err != nil {
			lgr.Error().Err(err).Msg("Failed to connect to database")
			return nil, nil, err
		}
		dbPool := database.Pool

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := dbPool.Ping(ctx); err != nil {
			lgr.Error().Err(err).Msg("Failed to ping database")
			dbPool.Close()
			return nil, nil, err
		}
		lgr.Info().Msg("Database connection successfully established.")

		lgr.Info().Msg("Running database migrations...")
		migrator := appMigrations.NewMigrator(dbPool)
		if err := migrator.MigrateFromDirectory("migrations"); err != nil {
			lgr.Error().Err(err).Msg("Database migration error")
			dbPool.Close()
			return nil, nil, fmt.Errorf("database migrations failed: %w", err)
		}
		lgr.Info().Msg("Database migrations successfully applied.")

		store := postgresStore.New(dbPool, postgresStore.WithHostelCapacity(cfg.Hostel.Capacity))
		return store, dbPool, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}
}

// BuildDependencies initializes services, controllers and middleware on top of
// the store, and seeds the default admin account.
func BuildDependencies(cfg *config.Config, store storage.Storage, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Store: store, Logger: lgr}

	if err := seed.CreateDefaultData(context.Background(), store, cfg, lgr); err != nil {
		// Seeding failures are logged but do not block startup.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	if cfg.Redis.URL != "" {
		redisOpts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			lgr.Error().Err(err).Msg("Invalid Redis URL, dashboard cache disabled")
		} else {
			deps.Cache = cache.NewHelper(redis.NewClient(redisOpts), "edumanage")
			lgr.Info().Msg("Dashboard cache enabled")
		}
	}

	var err error
	deps.Receipts, err = receipts.NewGenerator(cfg.Receipts.Path, cfg.Receipts.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize receipt storage")
		return nil, fmt.Errorf("failed to initialize receipt storage: %w", err)
	}

	deps.Services = &appServices.Services{
		Auth:      appServices.NewAuthService(store, deps.JWTService),
		Student:   appServices.NewStudentService(store),
		Fee:       appServices.NewFeeService(store, deps.Receipts),
		Hostel:    appServices.NewHostelService(store),
		Library:   appServices.NewLibraryService(store),
		Exam:      appServices.NewExamService(store),
		Faculty:   appServices.NewFacultyService(store),
		Dashboard: appServices.NewDashboardService(store, deps.Cache),
	}

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.Controllers = appRoutes.Controllers{
		Auth:      appControllers.NewAuthController(deps.Services.Auth),
		Student:   appControllers.NewStudentController(deps.Services.Student),
		Fee:       appControllers.NewFeeController(deps.Services.Fee),
		Hostel:    appControllers.NewHostelController(deps.Services.Hostel),
		Library:   appControllers.NewLibraryController(deps.Services.Library),
		Exam:      appControllers.NewExamController(deps.Services.Exam),
		Faculty:   appControllers.NewFacultyController(deps.Services.Faculty),
		Dashboard: appControllers.NewDashboardController(deps.Services.Dashboard),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	appMiddleware.RegisterCustomValidators()

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	// Serve generated receipt files
	router.Static("/receipts", cfg.Receipts.Path)

	return router
}
