package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rajat6235/Robusters-POS-sub001/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "pos"

var state struct {
	client *redis.Client
	prefix string
}

// InitRedis initializes the redis client. When disabled, every helper becomes
// a no-op and callers fall through to the store.
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		state.client = nil
		return nil
	}

	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	state.prefix = strings.TrimSpace(cfg.Prefix)
	if state.prefix == "" {
		state.prefix = defaultKeyPrefix
	}

	state.client = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	return nil
}

// Enabled reports whether caching is active.
func Enabled() bool {
	return state.client != nil
}

// Client returns the redis client, or nil when disabled.
func Client() *redis.Client {
	return state.client
}

// GetJSON reads a JSON cache entry into dest. Returns false on miss.
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if !Enabled() {
		return false, nil
	}
	raw, err := state.client.Get(ctx, buildKey(key)).Bytes()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON writes a JSON cache entry.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if !Enabled() {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return state.client.Set(ctx, buildKey(key), payload, ttl).Err()
}

// Del removes a cache entry.
func Del(ctx context.Context, key string) error {
	if !Enabled() {
		return nil
	}
	return state.client.Del(ctx, buildKey(key)).Err()
}

func buildKey(key string) string {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return state.prefix
	}
	return state.prefix + ":" + trimmed
}
