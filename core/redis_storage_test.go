package core

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

// setupTestRedis creates a miniredis instance for testing
func setupTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return mr, client
}

func TestRedisStorage_RoundTrip(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	storage := NewRedisStorageWithClient(client, "")
	ctx := context.Background()

	// Missing key reads as empty per the Storage contract, not redis.Nil
	value, err := storage.Get(ctx, "dc:cart")
	if err != nil {
		t.Errorf("Get() on missing key error = %v", err)
	}
	if value != "" {
		t.Errorf("Get() on missing key = %q, want empty string", value)
	}

	blob := `[{"id":"line_1","productId":"prod_1","qty":1}]`
	if err := storage.Set(ctx, "dc:cart", blob); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	value, err = storage.Get(ctx, "dc:cart")
	if err != nil {
		t.Errorf("Get() error = %v", err)
	}
	if value != blob {
		t.Errorf("Get() = %q, want %q", value, blob)
	}

	exists, err := storage.Exists(ctx, "dc:cart")
	if err != nil || !exists {
		t.Errorf("Exists() = %v, %v, want true, nil", exists, err)
	}

	if err := storage.Delete(ctx, "dc:cart"); err != nil {
		t.Errorf("Delete() error = %v", err)
	}
	exists, err = storage.Exists(ctx, "dc:cart")
	if err != nil || exists {
		t.Errorf("Exists() after Delete() = %v, %v, want false, nil", exists, err)
	}
}

func TestRedisStorage_Namespace(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer mr.Close()
	defer client.Close()

	storage := NewRedisStorageWithClient(client, "designandcart")
	ctx := context.Background()

	if err := storage.Set(ctx, "dc:cart", "[]"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	// The raw key in Redis carries the namespace prefix
	got, err := mr.Get("designandcart:dc:cart")
	if err != nil {
		t.Fatalf("raw key not found in redis: %v", err)
	}
	if got != "[]" {
		t.Errorf("raw value = %q, want []", got)
	}
}

func TestRedisStorage_Unavailable(t *testing.T) {
	mr, client := setupTestRedis(t)
	defer client.Close()

	storage := NewRedisStorageWithClient(client, "")
	ctx := context.Background()

	// Kill the server; operations must surface ErrStorageUnavailable
	mr.Close()

	if _, err := storage.Get(ctx, "dc:cart"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Get() after server loss = %v, want ErrStorageUnavailable", err)
	}
	if err := storage.Set(ctx, "dc:cart", "[]"); !errors.Is(err, ErrStorageUnavailable) {
		t.Errorf("Set() after server loss = %v, want ErrStorageUnavailable", err)
	}
}

func TestNewRedisStorage_InvalidConfig(t *testing.T) {
	if _, err := NewRedisStorage(RedisStorageOptions{}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewRedisStorage() without URL = %v, want ErrInvalidConfiguration", err)
	}
	if _, err := NewRedisStorage(RedisStorageOptions{RedisURL: "not-a-url"}); !errors.Is(err, ErrInvalidConfiguration) {
		t.Errorf("NewRedisStorage() with bad URL = %v, want ErrInvalidConfiguration", err)
	}
}
