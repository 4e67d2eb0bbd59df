package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rao756/utms-backend/internal/app/controllers"
	"github.com/rao756/utms-backend/internal/app/jobs"
	appMigrations "github.com/rao756/utms-backend/internal/app/migrations"
	appRepos "github.com/rao756/utms-backend/internal/app/repositories"
	appRoutes "github.com/rao756/utms-backend/internal/app/routes"
	appServices "github.com/rao756/utms-backend/internal/app/services"
	"github.com/rao756/utms-backend/internal/config"
	"github.com/rao756/utms-backend/internal/db"
	appMiddleware "github.com/rao756/utms-backend/internal/middleware"
	pkgAuth "github.com/rao756/utms-backend/internal/pkg/auth"
	"github.com/rao756/utms-backend/internal/pkg/filestorage"
	"github.com/rao756/utms-backend/internal/pkg/helpers"
	"github.com/rao756/utms-backend/internal/pkg/logger"
	"github.com/rao756/utms-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	ChallanService         appServices.ChallanService
	AdminChallanService    appServices.AdminChallanService
	BusService             *appServices.BusService
	DriverService          *appServices.DriverService
	RouteService           *appServices.RouteService
	ScheduleService        *appServices.ScheduleService
	NotificationService    *appServices.NotificationService
	UserService            *appServices.UserService
	UploadedChallanService *appServices.UploadedChallanService

	AuthController            *appControllers.AuthController
	BusController             *appControllers.BusController
	DriverController          *appControllers.DriverController
	RouteController           *appControllers.RouteController
	ScheduleController        *appControllers.ScheduleController
	NotificationController    *appControllers.NotificationController
	UserController            *appControllers.UserController
	ChallanController         *appControllers.ChallanController
	AdminChallanController    *appControllers.AdminChallanController
	UploadedChallanController *appControllers.UploadedChallanController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Maintenance    *jobs.Maintenance
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// The admin can still be created by hand, so boot continues
		lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	baseURL := "http://localhost:" + cfg.Server.Port
	fileStorageBaseURL := baseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.AdminRepository,
		deps.JWTService,
		deps.FileStorage,
		lgr,
	)
	deps.BusService = appServices.NewBusService(deps.Repos.BusRepository, lgr)
	deps.DriverService = appServices.NewDriverService(deps.Repos.DriverRepository, lgr)
	deps.RouteService = appServices.NewRouteService(deps.Repos.RouteRepository, lgr)
	deps.ScheduleService = appServices.NewScheduleService(deps.Repos.ScheduleRepository, lgr)
	deps.NotificationService = appServices.NewNotificationService(deps.Repos.NotificationRepository, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.Repos.AdminRepository, deps.FileStorage, lgr)
	deps.ChallanService = appServices.NewChallanService(deps.Repos.ChallanRepository, deps.Repos.AdminChallanRepository, lgr)
	deps.AdminChallanService = appServices.NewAdminChallanService(deps.Repos.AdminChallanRepository, lgr)
	deps.UploadedChallanService = appServices.NewUploadedChallanService(deps.Repos.UploadedChallanRepository, deps.FileStorage, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.BusController = appControllers.NewBusController(deps.BusService)
	deps.DriverController = appControllers.NewDriverController(deps.DriverService)
	deps.RouteController = appControllers.NewRouteController(deps.RouteService)
	deps.ScheduleController = appControllers.NewScheduleController(deps.ScheduleService)
	deps.NotificationController = appControllers.NewNotificationController(deps.NotificationService)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.ChallanController = appControllers.NewChallanController(deps.ChallanService)
	deps.AdminChallanController = appControllers.NewAdminChallanController(deps.AdminChallanService)
	deps.UploadedChallanController = appControllers.NewUploadedChallanController(deps.UploadedChallanService)

	deps.Maintenance = jobs.NewMaintenance(deps.Repos.NotificationRepository, deps.ChallanService, lgr)

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

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// The dashboard is a separate frontend, so CORS stays open
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.BusController,
		deps.DriverController,
		deps.RouteController,
		deps.ScheduleController,
		deps.NotificationController,
		deps.UserController,
		deps.ChallanController,
		deps.AdminChallanController,
		deps.UploadedChallanController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
