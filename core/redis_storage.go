// Package core provides the shared infrastructure for the DesignandCart
// commerce stores. This file implements the Redis-backed Storage backend.
//
// Purpose:
// - Holds each store's serialized collection under a single namespaced key
// - Provides durable persistence when the demo runs against a real Redis
// - Maps Redis absence (redis.Nil) onto the Storage contract's "missing
//   key reads as empty" semantics
//
// Namespacing:
// All keys are automatically prefixed with the configured namespace, e.g.
// with namespace "designandcart" the cart blob lives at
// "designandcart:dc:cart". An empty namespace stores keys verbatim.
//
// Connection Management:
// - URL-based configuration (redis://host:port/db)
// - Connection health checked with Ping at construction
// - Connection failures surface as ErrConnectionFailed so callers can
//   distinguish the one realistic I/O failure from logic errors
package core

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisStorage implements Storage on top of a Redis instance
type RedisStorage struct {
	client    *redis.Client
	namespace string
	logger    Logger // Optional logger
}

// RedisStorageOptions configures the Redis storage backend
type RedisStorageOptions struct {
	RedisURL  string
	Namespace string // Key namespace for organization
	Logger    Logger // Optional logger
}

// NewRedisStorage creates a Redis-backed Storage with the specified options
func NewRedisStorage(opts RedisStorageOptions) (*RedisStorage, error) {
	if opts.Logger != nil {
		opts.Logger.Debug("Initializing Redis storage", map[string]interface{}{
			"redis_url": opts.RedisURL,
			"namespace": opts.Namespace,
		})
	}

	if opts.RedisURL == "" {
		if opts.Logger != nil {
			opts.Logger.Error("Failed to initialize Redis storage", map[string]interface{}{
				"error":      "Redis URL is required",
				"error_type": "ErrInvalidConfiguration",
			})
		}
		return nil, fmt.Errorf("redis URL is required: %w", ErrInvalidConfiguration)
	}

	redisOpt, err := redis.ParseURL(opts.RedisURL)
	if err != nil {
		if opts.Logger != nil {
			opts.Logger.Error("Failed to parse Redis URL", map[string]interface{}{
				"error":      err,
				"error_type": fmt.Sprintf("%T", err),
				"redis_url":  opts.RedisURL,
			})
		}
		return nil, fmt.Errorf("invalid Redis URL: %w", ErrInvalidConfiguration)
	}

	client := redis.NewClient(redisOpt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		if opts.Logger != nil {
			opts.Logger.Error("Failed to connect to Redis", map[string]interface{}{
				"error":      err,
				"error_type": fmt.Sprintf("%T", err),
				"namespace":  opts.Namespace,
			})
		}
		return nil, fmt.Errorf("failed to connect to Redis: %w", ErrConnectionFailed)
	}

	rs := &RedisStorage{
		client:    client,
		namespace: opts.Namespace,
		logger:    opts.Logger,
	}

	if rs.logger != nil {
		rs.logger.Info("Redis storage connected", map[string]interface{}{
			"namespace": opts.Namespace,
		})
	}

	return rs, nil
}

// NewRedisStorageWithClient wraps an existing Redis client. Used by tests
// that run against miniredis.
func NewRedisStorageWithClient(client *redis.Client, namespace string) *RedisStorage {
	return &RedisStorage{
		client:    client,
		namespace: namespace,
	}
}

// Close closes the Redis connection
func (r *RedisStorage) Close() error {
	if r.logger != nil {
		r.logger.Info("Closing Redis storage connection", map[string]interface{}{
			"namespace": r.namespace,
		})
	}
	return r.client.Close()
}

// formatKey formats a key with the namespace
func (r *RedisStorage) formatKey(key string) string {
	if r.namespace != "" {
		return fmt.Sprintf("%s:%s", r.namespace, key)
	}
	return key
}

// Get retrieves a value. Missing keys read as empty per the Storage
// contract rather than surfacing redis.Nil.
func (r *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, r.formatKey(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("redis get %q: %w", key, ErrStorageUnavailable)
	}
	return value, nil
}

// Set stores a value with no expiry; the blobs live until cleared
func (r *RedisStorage) Set(ctx context.Context, key string, value string) error {
	if err := r.client.Set(ctx, r.formatKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, ErrStorageUnavailable)
	}
	return nil
}

// Delete removes a key
func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.formatKey(key)).Err(); err != nil {
		return fmt.Errorf("redis del %q: %w", key, ErrStorageUnavailable)
	}
	return nil
}

// Exists checks if a key exists
func (r *RedisStorage) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Exists(ctx, r.formatKey(key)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists %q: %w", key, ErrStorageUnavailable)
	}
	return n > 0, nil
}

// HealthCheck verifies Redis connectivity
func (r *RedisStorage) HealthCheck(ctx context.Context) error {
	err := r.client.Ping(ctx).Err()
	if err != nil && r.logger != nil {
		r.logger.Error("Redis health check failed", map[string]interface{}{
			"error":      err,
			"error_type": fmt.Sprintf("%T", err),
			"namespace":  r.namespace,
		})
	}
	return err
}
