package storage

import (
	"context"
	"fmt"

	"restodash/internal/models"
)

// KV is the durable key-value contract the store writes through to. Values
// are strings: JSON documents for collections, bare literals for flags.
type KV interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Open selects a backend from configuration.
func Open(ctx context.Context, cfg *models.Config) (KV, error) {
	switch cfg.StorageDriver {
	case models.StorageDriverFile:
		return NewFileKV(cfg.StoragePath)
	case models.StorageDriverMemory:
		return NewMemoryKV(), nil
	case models.StorageDriverPostgres:
		return NewPostgresKV(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
