// Package main реализует точку входа сервиса заметок.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"gonote/internal/notes/adapters/cache"
	notehttp "gonote/internal/notes/adapters/http"
	"gonote/internal/notes/adapters/postgres"
	"gonote/internal/notes/adapters/services"
	"gonote/internal/notes/app"
	"gonote/internal/notes/config"
	"gonote/internal/notes/db"
	"gonote/pkg/db/redis"
	"gonote/pkg/logger"
	"gonote/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "NOTES_LOGGER_MODE"
	EnvLoggerLevel = "NOTES_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrInitRedis            = "failed to connect to redis"
	ErrServeHTTP            = "http server stopped unexpectedly"
	ErrShutdown             = "graceful shutdown finished with errors"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingRedis        = "closing redis client"
	LogStoppingHTTP        = "stopping http server"
	LogInitRepo            = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogStartingHTTP        = "starting http server"
)

const appName = "notes"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == string(logger.Production) {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}
	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		redisClient, err := redis.NewClient(ctx, cfg.Redis.ToClientConfig())
		if err != nil {
			log.Error(ctx, ErrInitRedis, zap.Error(err))
			if closeErr := database.Close(ctx); closeErr != nil {
				log.Warn(ctx, LogClosingDB, zap.Error(closeErr))
			}
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.TokenTTL, cfg.JWT.BCryptCost)
		blacklist := cache.NewTokenBlacklist(redisClient)

		log.Info(ctx, LogInitUseCases)
		noteUseCase := app.NewNoteUseCase(repoFactory.NoteRepository())
		authUseCase := app.NewAuthUseCase(
			repoFactory.UserRepository(),
			serviceFactory.PasswordService(),
			serviceFactory.TokenService(),
			blacklist,
		)

		server := notehttp.NewApp(fiber.Config{
			AppName:      appName,
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.BodyLimit,
		}, notehttp.Dependencies{
			Notes: noteUseCase,
			Auth:  authUseCase,
			Health: notehttp.NewHealthHandler(map[string]notehttp.Pinger{
				"postgres": database,
				"redis":    redisClient,
			}, cfg.HTTP.ReadTimeout),
			Logger:    log,
			StaticDir: cfg.HTTP.StaticDir,
			Origins:   cfg.HTTP.CORSOrigins,
		})

		serveCtx, stopServing := context.WithCancel(ctx)
		defer stopServing()

		serveErr := make(chan error, 1)
		go func() {
			log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrServeHTTP, zap.Error(err))
				serveErr <- err
				stopServing()
			}
		}()

		err = shutdown.Wait(serveCtx, cfg.Shutdown.Timeout,
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.ShutdownWithContext(ctx)
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingRedis)
				return redisClient.Close(ctx)
			},
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				return database.Close(ctx)
			},
		)
		if err != nil {
			log.Error(ctx, ErrShutdown, zap.Error(err))
			if errors.Is(err, shutdown.ErrTimeout) {
				exitCode = 1
			}
		}

		select {
		case <-serveErr:
			exitCode = 1
		default:
		}

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
