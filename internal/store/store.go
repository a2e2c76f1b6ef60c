package store

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/gift-exchange-service/internal/config"
	"github.com/spec-kit/gift-exchange-service/internal/domain"
)

// Supported snapshot backends.
const (
	BackendFile     = "file"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

// Store persists the registry snapshot. Save replaces the whole document;
// Load on a missing backing store yields an empty snapshot, not an error.
type Store interface {
	Load(ctx context.Context) (domain.Snapshot, error)
	Save(ctx context.Context, snapshot domain.Snapshot) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the snapshot store selected by STORE_BACKEND.
func Open(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Store, error) {
	switch cfg.Store.Backend {
	case "", BackendFile:
		return NewFileStore(cfg.Store.DataFile, logger), nil
	case BackendRedis:
		return NewRedisStore(cfg.Redis, logger), nil
	case BackendPostgres:
		return NewPostgresStore(ctx, cfg.Postgres, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}
