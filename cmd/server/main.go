package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bootcamp-signup.backend/internal/config"
	"bootcamp-signup.backend/internal/domain/repositories"
	"bootcamp-signup.backend/internal/infrastructure/datasources"
	"bootcamp-signup.backend/internal/infrastructure/jobs"
	infrarepos "bootcamp-signup.backend/internal/infrastructure/repositories"
	"bootcamp-signup.backend/internal/interfaces/http/handlers"
	"bootcamp-signup.backend/internal/interfaces/http/middleware"
	"bootcamp-signup.backend/internal/interfaces/http/templates"
	"bootcamp-signup.backend/internal/usecases"
	"bootcamp-signup.backend/pkg/logger"
	"bootcamp-signup.backend/pkg/metrics"
	"bootcamp-signup.backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = datasources.NewConnection
	migrateDB  = datasources.Migrate
	runServer  = func(srv *http.Server) error { return srv.ListenAndServe() }
)

// signupStore is what the server needs from any configured backend
type signupStore interface {
	repositories.SignupRepository
	Ping(ctx context.Context) error
}

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	ctx := context.Background()
	logger.Info(ctx, "Logger initialized", zap.String("env", cfg.Server.Env))

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Redis is optional; without it there is no cross-instance lock or
	// idempotency cache.
	var locker usecases.EmailLocker
	var idempotency gin.HandlerFunc
	if cfg.Redis.Enabled() {
		if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
			logger.Error(ctx, "Failed to initialize Redis", zap.Error(err))
			return fmt.Errorf("failed to initialize redis: %w", err)
		}
		defer func() { _ = redis.Close() }()
		locker = redis.NewSubmissionLock(cfg.Signup.LockTTL)
		idempotency = middleware.IdempotencyMiddleware()
		logger.Info(ctx, "Redis initialized")
	} else {
		logger.Warn(ctx, "REDIS_URL not set, signup lock and idempotency disabled")
	}

	store, closeStore, err := openSignupStore(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer closeStore()

	metricsRegistry := metrics.New()
	signupUsecase := usecases.NewSignupUsecase(store, locker, metricsRegistry)

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	statsJob := jobs.NewSignupStatsJob(store, metricsRegistry, cfg.Signup.StatsInterval)
	go statsJob.Start(jobCtx)

	r := newRouter(routeDeps{
		healthHandler:     handlers.NewHealthHandler(store),
		signupHandler:     handlers.NewSignupHandler(signupUsecase),
		signupPageHandler: handlers.NewSignupPageHandler(signupUsecase),
		metricsHandler:    metricsRegistry.Handler(),
		idempotency:       idempotency,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(ctx, "Shutting down server")
		statsJob.Stop()
		shutdownCtx, done := context.WithTimeout(context.Background(), shutdownTimeout)
		defer done()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error(ctx, "Server shutdown failed", zap.Error(err))
		}
	}()

	logger.Info(ctx, "Bootcamp signup backend starting",
		zap.String("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
	)

	if err := runServer(srv); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

// openSignupStore returns the repository for the configured driver and a
// cleanup func
func openSignupStore(ctx context.Context, cfg config.DatabaseConfig) (signupStore, func(), error) {
	if cfg.Driver == datasources.DriverMemory {
		logger.Warn(ctx, "Using in-memory signup store, data is lost on restart")
		return infrarepos.NewMemorySignupRepository(), func() {}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	closeDB := func() { closeGormDB(db) }

	if cfg.AutoMigrate {
		if err := migrateDB(db); err != nil {
			closeDB()
			return nil, nil, err
		}
	}

	store := infrarepos.NewSignupRepository(db)
	if err := store.Ping(ctx); err != nil {
		logger.Warn(ctx, "Database not available, endpoints will return errors", zap.Error(err))
	} else {
		logger.Info(ctx, "Connected to database via GORM", zap.String("driver", cfg.Driver))
	}
	return store, closeDB, nil
}

func closeGormDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	_ = sqlDB.Close()
}

func newRouter(d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.SetHTMLTemplate(templates.MustLoad())

	applyCORSMiddleware(r)
	registerHealthRoute(r, d.healthHandler)
	registerMetricsRoute(r, d.metricsHandler)
	registerPageRoutes(r, d)
	registerAPIV1Routes(r, d)
	return r
}
