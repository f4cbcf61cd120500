package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"video-service/internal/videoservice/config"
	"video-service/internal/videoservice/database"
	"video-service/internal/videoservice/repository/cached"
	"video-service/internal/videoservice/repository/memory"
	"video-service/internal/videoservice/repository/postgres"
	"video-service/internal/videoservice/repository/sqlite"
	"video-service/internal/videoservice/usecase"
)

// openDatabase opens and migrates the SQL database for the configured
// backend. It returns a nil *sql.DB for the memory backend.
func openDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	var (
		db      *sql.DB
		dialect database.Dialect
		err     error
	)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		return nil, nil
	case config.BackendSQLite:
		if err := os.MkdirAll(filepath.Dir(cfg.DatabasePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
		db, err = database.OpenSQLite(cfg.DatabasePath)
		dialect = database.DialectSQLite
	case config.BackendPostgres:
		db, err = database.OpenPostgres(cfg.DatabaseURL)
		dialect = database.DialectPostgres
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
	if err != nil {
		return nil, err
	}

	if err := database.RunMigrations(db, dialect); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("database initialized",
		zap.String("backend", cfg.StoreBackend),
		zap.String("path", cfg.DatabasePath),
	)
	return db, nil
}

// newRepository picks the store implementation and wraps the SQL stores
// with the Redis cache when one is configured. The memory store is never
// cached: its records die with the process while Redis entries outlive it.
func newRepository(cfg *config.Config, db *sql.DB, rdb *redis.Client, logger *zap.Logger) usecase.VideoRepository {
	var repo usecase.VideoRepository
	switch cfg.StoreBackend {
	case config.BackendSQLite:
		repo = sqlite.NewVideoRepository(db)
	case config.BackendPostgres:
		repo = postgres.NewVideoRepository(db)
	default:
		if rdb != nil {
			logger.Warn("redis cache ignored for the memory backend")
		}
		return memory.NewVideoRepository()
	}

	if rdb == nil {
		return repo
	}
	return cached.NewCachedVideoRepository(repo, cached.NewRedisVideoCache(rdb, logger), logger)
}

// newRedisClient connects to Redis, or returns nil when no address is set
func newRedisClient(cfg *config.Config) (*redis.Client, error) {
	if cfg.RedisAddr == "" {
		return nil, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}
