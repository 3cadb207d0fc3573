// Copyright (c) 2026 InnoHub. All rights reserved.
// Author: platform@innohub.io

// Package cache implements the read-through cache for public content sections.
//
// # Semantics
//
// A cache failure is never fatal: readers fall back to the database and
// writers log-and-continue. The cache bounds staleness of the public site
// to the configured TTL; every content mutation invalidates its section key.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/innohub/api/internal/platform/constants"
)

// Store wraps a Redis client with JSON (de)serialization and the content
// key taxonomy.
type Store struct {
	client *redis.Client
	logger *slog.Logger
}

// NewStore constructs a [Store]. A nil client yields a disabled cache where
// every lookup misses — useful in tests and degraded deployments.
func NewStore(client *redis.Client, logger *slog.Logger) *Store {
	return &Store{client: client, logger: logger}
}

// GetSection loads the cached public payload for a content section into target.
// It returns false on a miss, a disabled cache, or any transport error.
func (store *Store) GetSection(ctx context.Context, section string, target any) bool {
	if store.client == nil {
		return false
	}

	raw, err := store.client.Get(ctx, sectionKey(section)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			store.logger.Warn("content_cache_read_failed",
				slog.String("section", section),
				slog.Any("error", err),
			)
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		store.logger.Warn("content_cache_decode_failed", slog.String("section", section))
		return false
	}

	return true
}

// SetSection stores the public payload for a content section with the
// standard TTL.
func (store *Store) SetSection(ctx context.Context, section string, payload any) {
	store.set(ctx, section, payload, constants.ContentCacheTTL)
}

// InvalidateSection drops the cached payload for a content section. Called on
// every mutation so edits are visible to the public site immediately.
func (store *Store) InvalidateSection(ctx context.Context, section string) {
	if store.client == nil {
		return
	}

	if err := store.client.Del(ctx, sectionKey(section)).Err(); err != nil {
		store.logger.Warn("content_cache_invalidate_failed",
			slog.String("section", section),
			slog.Any("error", err),
		)
	}
}

func (store *Store) set(ctx context.Context, section string, payload any, ttl time.Duration) {
	if store.client == nil {
		return
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		store.logger.Warn("content_cache_encode_failed", slog.String("section", section))
		return
	}

	if err := store.client.Set(ctx, sectionKey(section), raw, ttl).Err(); err != nil {
		store.logger.Warn("content_cache_write_failed",
			slog.String("section", section),
			slog.Any("error", err),
		)
	}
}

func sectionKey(section string) string {
	return constants.RedisPrefixContent + section
}
