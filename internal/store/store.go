// Package store provides the named-slot key/value substrate the case engine
// persists to. Each slot holds one opaque blob that is read and written whole.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/config"
	"github.com/sathyaantham2-wq/Labour-cms-Google-studio/internal/database"
)

// Slot names shared with the browser-era storage layout
const (
	SlotCases            = "labor_cases"
	SlotDispatchEndpoint = "make_webhook_url"
	SlotSections         = "intake_sections"
	SlotChannels         = "intake_channels"
)

// ErrNotFound is returned by Get when a slot has never been written
var ErrNotFound = errors.New("slot not found")

// Store reads and writes whole slots
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Ping(ctx context.Context) error
	Close() error
}

// Open builds the backend selected by cfg.StoreDriver
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return NewMemory(), nil
	case "file":
		return NewFile(cfg.DataDir)
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse redis url: %w", err)
		}
		s := NewRedis(redis.NewClient(opts), cfg.RedisPrefix)
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return s, nil
	case "postgres":
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, database.PoolOptions{
			MaxConns:         int32(cfg.DBMaxConns),
			StatementTimeout: cfg.DBTimeout,
		})
		if err != nil {
			return nil, err
		}
		s := NewPostgres(pool)
		if err := s.Migrate(ctx); err != nil {
			pool.Close()
			return nil, err
		}
		return s, nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}
