package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"video-service/internal/videoservice/config"
	httpdelivery "video-service/internal/videoservice/delivery/http"
	"video-service/internal/videoservice/usecase"
)

func runServe(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := openDatabase(cfg, logger)
	if err != nil {
		logger.Error("failed to open database", zap.Error(err))
		return err
	}
	if db != nil {
		defer db.Close()
	}

	rdb, err := newRedisClient(cfg)
	if err != nil {
		// Cache is optional; serve straight from the store
		logger.Warn("redis unavailable, video cache disabled", zap.Error(err))
	} else if rdb != nil {
		defer rdb.Close()
	}

	// Wire dependencies
	repo := newRepository(cfg, db, rdb, logger)
	service := usecase.NewVideoService(repo, logger)
	handler := httpdelivery.NewHandler(service, logger, db)
	rateLimiter := httpdelivery.NewRateLimiter(cfg.RateLimit)
	defer rateLimiter.Stop()
	router := httpdelivery.NewRouter(handler, logger, rateLimiter)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("store_backend", cfg.StoreBackend),
			zap.Bool("cache", rdb != nil),
			zap.Int("rate_limit", cfg.RateLimit),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		logger.Error("server failed", zap.Error(err))
		return err
	case <-quit:
	}

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("server stopped")
	return nil
}
