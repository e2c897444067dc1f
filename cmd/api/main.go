package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/canteen-scheduler/internal/audit"
	"github.com/BruksfildServices01/canteen-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/canteen-scheduler/internal/db"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/infra/lock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/logger"
	"github.com/BruksfildServices01/canteen-scheduler/internal/metrics"
	"github.com/BruksfildServices01/canteen-scheduler/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogPretty)

	db := dbpkg.NewDB(cfg, &log)
	metrics.Register()

	var locker reservation.Locker
	if cfg.RedisEnabled() {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Fatal().Err(err).Str("addr", cfg.RedisAddr).Msg("redis unreachable")
		}
		cancel()

		locker = lock.NewRedisLocker(rdb, cfg.LockTTL, cfg.LockWait, &log)
		log.Info().Str("addr", cfg.RedisAddr).Msg("admission lock: redis")
	} else {
		locker = lock.NewLocalLocker(cfg.LockWait)
		log.Info().Msg("admission lock: in-process")
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), &log)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, routes.Deps{
		DB:     db,
		Config: cfg,
		Locker: locker,
		Audit:  auditDispatcher,
		Log:    &log,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", cfg.Addr()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	auditDispatcher.Close()
	log.Info().Msg("server stopped")
}
