// @title         Course API
// @version       1.0
// @description   Course catalogue with basic-auth protected writes.
// @BasePath      /
// @schemes       http
// @securityDefinitions.basic BasicAuth
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/99minutos/course-api/internal/api"
	"github.com/99minutos/course-api/internal/api/handler"
	"github.com/99minutos/course-api/internal/core/service"
	mongodb "github.com/99minutos/course-api/internal/infrastructure/db/mongo"
	redisdb "github.com/99minutos/course-api/internal/infrastructure/db/redis"
	"github.com/99minutos/course-api/internal/pkg/config"
	"github.com/99minutos/course-api/pkg/logger"
)

const serviceName = "course-api"

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: serviceName,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Storage ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  serviceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect")
	}
	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("mongo indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:       cfg.Redis.Addr,
		DB:         cfg.Redis.DB,
		ClientName: serviceName,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect")
	}

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	courseRepo := mongodb.NewCourseRepository(db)
	idempotency := redisdb.NewIdempotencyStore(rdb, cfg.Redis.IdempotencyTTL)

	e := api.NewRouter(api.Deps{
		Auth:    service.NewAuthService(userRepo),
		Courses: service.NewCourseService(courseRepo, idempotency, logger.Component("courses")),
		Users:   service.NewUserService(userRepo, logger.Component("users")),
		HealthChecks: map[string]handler.HealthCheck{
			"mongodb": handler.MongoCheck(db),
			"redis":   handler.RedisCheck(rdb),
		},
		Logger: logger.Component("http"),
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close")
	}
	if err := mongodb.Disconnect(shutdownCtx, mongoClient); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	log.Info().Msg("bye")
}
