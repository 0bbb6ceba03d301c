package app

import (
	"context"
	"errors"
	"fmt"
	"lingua_placement/internal/config"
	"lingua_placement/internal/controller"
	"lingua_placement/internal/repository"
	"lingua_placement/internal/service"
	"lingua_placement/internal/util"
	"lingua_placement/pkg/configwatcher"
	"lingua_placement/pkg/database"
	"lingua_placement/pkg/logger"
	"lingua_placement/pkg/monitoring"
	"lingua_placement/pkg/security"
	"lingua_placement/pkg/tracing"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	language *repository.LanguageRepository
	level    *repository.LevelRepository
	question *repository.TestQuestionRepository
	result   service.ResultStore
}

type services struct {
	storage      *service.StorageService
	placement    *service.PlacementService
	questionBank *service.QuestionBankService
}

type controllers struct {
	placement    *controller.PlacementController
	testQuestion *controller.TestQuestionController
	health       *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client) *repositories {
	repos := &repositories{
		language: repository.NewLanguageRepository(db),
		level:    repository.NewLevelRepository(db),
		question: repository.NewTestQuestionRepository(db),
	}

	results := repository.NewTestResultRepository(db)
	if rdb != nil {
		repos.result = repository.NewCachedResultRepository(results, rdb, a.Config.Redis.ResultCacheTTL)
	} else {
		repos.result = results
	}
	return repos
}

func (a *App) initServices(repos *repositories, cfg *config.Config) (*services, error) {
	storage, err := service.NewStorageService(&cfg.Storage)
	if err != nil {
		return nil, err
	}

	return &services{
		storage:      storage,
		placement:    service.NewPlacementService(repos.question, repos.level, repos.result, repos.language, storage, nil),
		questionBank: service.NewQuestionBankService(repos.question, repos.language, storage),
	}, nil
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		placement:    controller.NewPlacementController(s.placement),
		testQuestion: controller.NewTestQuestionController(s.questionBank),
		health:       controller.NewHealthController(a.DB, a.Redis),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, cfg.RateWindow()))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp connects to the database and cache and wires the HTTP server.
// configDir is watched for changes while the app runs.
func NewApp(cfg *config.Config, configDir string) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized", zap.String("mode", cfg.Server.Mode))

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("initialize redis: %w", err)
	}

	if cfg.Server.Mode == "debug" {
		if err := database.Migrate(db); err != nil {
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		DB:        db,
		Redis:     rdb,
	}

	repos := app.initRepositories(db, rdb)
	services, err := app.initServices(repos, cfg)
	if err != nil {
		return nil, err
	}
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, fmt.Errorf("initialize tracing: %w", err)
		}
		app.tracer = tp
	}

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == "debug" {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	app.RegisterConfigCallback(func(newCfg *config.Config) {
		logger.ApplyMode(newCfg.Server.Mode)
		logger.Log.Info("Log level updated", zap.String("level", logger.Level().String()))
	})

	return app, nil
}

func (a *App) watchConfig(ctx context.Context) {
	path := filepath.Join(a.ConfigDir, "config.yaml")
	err := configwatcher.WatchConfig(ctx, path, func(cfg *config.Config) {
		for _, callback := range a.configCallbacks {
			callback(cfg)
		}
	})
	if err != nil {
		logger.Log.Warn("Config watcher stopped", zap.Error(err))
	}
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:              ":" + a.Config.Server.Port,
		Handler:           a.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go a.watchConfig(ctx)

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
	return nil
}
