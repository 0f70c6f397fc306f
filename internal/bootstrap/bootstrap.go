package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	appControllers "github.com/yigit/akademik/internal/app/controllers"
	"github.com/yigit/akademik/internal/app/identifier"
	appMigrations "github.com/yigit/akademik/internal/app/migrations"
	appRepos "github.com/yigit/akademik/internal/app/repositories"
	appRoutes "github.com/yigit/akademik/internal/app/routes"
	appServices "github.com/yigit/akademik/internal/app/services"
	"github.com/yigit/akademik/internal/config"
	"github.com/yigit/akademik/internal/db"
	appMiddleware "github.com/yigit/akademik/internal/middleware"
	pkgAuth "github.com/yigit/akademik/internal/pkg/auth"
	"github.com/yigit/akademik/internal/pkg/cache"
	"github.com/yigit/akademik/internal/pkg/helpers"
	"github.com/yigit/akademik/internal/pkg/logger"
	"github.com/yigit/akademik/internal/pkg/tracing"
	"github.com/yigit/akademik/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	IdentifierService    appServices.IdentifierService
	StudentService       appServices.StudentService
	CourseService        appServices.CourseService
	EnrollmentService    appServices.EnrollmentService
	AuthService          appServices.AuthService
	HealthController     *appControllers.HealthController
	AuthController       *appControllers.AuthController
	IdentifierController *appControllers.IdentifierController
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := config.GetEnv("CONFIG_PATH", filepath.Join("configs", "config.yaml"))
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))

	lgr := log.Logger
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupTracing installs the tracer provider.
func SetupTracing(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (tracing.ShutdownFunc, error) {
	return tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     cfg.App.Version,
		Endpoint:    cfg.Tracing.Endpoint,
		Insecure:    true,
	}, lgr)
}

// SetupDatabase establishes the database connection, runs migrations and seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database, lgr).Migrate(ctx, appMigrations.Files()); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled {
		if err := seed.CreateDefaultData(ctx, appRepos.NewCourseRepository(database.Pool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// SetupCache connects to Redis when enabled. The returned client is nil when
// caching is disabled.
func SetupCache(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*cache.Cache, error) {
	if !cfg.Redis.Enabled {
		lgr.Info().Msg("Redis cache disabled")
		return nil, nil
	}

	cacheCfg := cache.DefaultConfig()
	cacheCfg.Addr = cfg.Redis.Addr
	cacheCfg.Password = cfg.Redis.Password
	cacheCfg.DB = cfg.Redis.DB

	c, err := cache.New(ctx, cacheCfg)
	if err != nil {
		lgr.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis cache connected")
	return c, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, redisCache *cache.Cache, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database)

	catalog, err := identifier.NewCatalog(cfg.Programs)
	if err != nil {
		return nil, fmt.Errorf("invalid program catalog: %w", err)
	}
	allocator := identifier.NewAllocator(catalog)

	var cacheStore cache.Store = cache.Noop{}
	var cachePinger appControllers.Pinger
	if redisCache != nil {
		cacheStore = redisCache
		cachePinger = redisCache
	}

	jwtService := pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.Auth.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.Auth.TokenExpiration, time.Hour),
		TokenIssuer:    cfg.Auth.Issuer,
	})

	deps.IdentifierService = appServices.NewIdentifierService(deps.Repos, allocator)
	deps.StudentService = appServices.NewStudentService(
		deps.Repos,
		allocator,
		identifier.NewScopeLocks(),
		cacheStore,
		appServices.StudentServiceConfig{
			MaxAttempts: cfg.Allocation.MaxAttempts,
			CacheTTL:    helpers.ParseDuration(cfg.Redis.TTL, cache.TTLStudentCache),
		},
		lgr.With().Str("service", "student").Logger(),
	)
	deps.CourseService = appServices.NewCourseService(deps.Repos)
	deps.EnrollmentService = appServices.NewEnrollmentService(deps.Repos)
	deps.AuthService = appServices.NewAuthService(
		appServices.AdminCredentials{Username: cfg.Auth.AdminUsername, PasswordHash: cfg.Auth.AdminPasswordHash},
		jwtService,
		lgr.With().Str("service", "auth").Logger(),
	)

	deps.HealthController = appControllers.NewHealthController(cfg.App.Name, cfg.App.Version, deps.Repos, cachePinger)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.IdentifierController = appControllers.NewIdentifierController(deps.IdentifierService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService, cfg.Auth.Enabled)

	lgr.Info().Int("programs", len(catalog.Programs())).Bool("auth", cfg.Auth.Enabled).Msg("Dependencies initialized")
	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	switch cfg.Server.Mode {
	case "production", gin.ReleaseMode:
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	if err := appMiddleware.RegisterValidators(); err != nil {
		return nil, fmt.Errorf("failed to register validators: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	router.Use(
		appMiddleware.RequestID(lgr),
		appMiddleware.RequestLogger(),
		appMiddleware.CORS(cfg.CORSOrigins()),
	)

	appRoutes.SetupRouter(
		router,
		deps.HealthController,
		deps.AuthController,
		deps.IdentifierController,
		deps.StudentController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.AuthMiddleware,
	)
	appRoutes.SetupSwagger(router)

	lgr.Info().Msg("Router configured")
	return router, nil
}
