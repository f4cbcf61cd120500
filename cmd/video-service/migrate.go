package main

import (
	"go.uber.org/zap"

	"video-service/internal/videoservice/config"
)

func runMigrate(envFile string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.StoreBackend == config.BackendMemory {
		logger.Info("memory backend has no schema to migrate")
		return nil
	}

	db, err := openDatabase(cfg, logger)
	if err != nil {
		logger.Error("migration failed", zap.Error(err))
		return err
	}
	defer db.Close()

	logger.Info("migrations applied", zap.String("backend", cfg.StoreBackend))
	return nil
}
