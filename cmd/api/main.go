package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	httpadp "flat-allocation/internal/adapter/http"
	idem "flat-allocation/internal/adapter/middleware"
	"flat-allocation/internal/adapter/repository/mysql"
	"flat-allocation/internal/config"
	"flat-allocation/internal/infrastructure/cache"
	"flat-allocation/internal/infrastructure/db"
	"flat-allocation/internal/infrastructure/logger"
	"flat-allocation/internal/usecase/allocation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("api: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load(".env")
	if err := cfg.Validate(); err != nil {
		return err
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	defer func() { _ = zl.Sync() }()

	gdb, err := db.OpenGorm(cfg.MySQLDSN(), zl)
	if err != nil {
		return err
	}
	if err := db.Migrate(gdb); err != nil {
		return err
	}

	rdb, err := cache.OpenRedis(ctx, cfg.RedisAddr, cfg.RedisDB)
	if err != nil {
		return err
	}
	defer func() { _ = rdb.Close() }()

	opts := []allocation.Option{allocation.WithLogger(zl)}
	if ttl := cfg.ProjectCacheTTL(); ttl > 0 {
		opts = append(opts, allocation.WithCache(cache.NewProjectCache(rdb, ttl, zl)))
	}
	eng := allocation.NewEngine(mysql.NewGormUoW(gdb), opts...)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	httpadp.RegisterRoutes(e, httpadp.NewHandler(eng), idem.Idempotency(rdb, cfg.IdempotencyTTL(), zl))

	addr := ":" + cfg.AppPort
	errc := make(chan error, 1)
	go func() {
		zl.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	zl.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
