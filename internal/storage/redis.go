package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tmallory/chronicler/pkg/state"
)

// RedisStorage implements the Storage interface using Redis.
type RedisStorage struct {
	client *redis.Client
	logger *slog.Logger
	ttl    time.Duration
}

// Ensure RedisStorage implements Storage interface
var _ Storage = (*RedisStorage)(nil)

// NewRedisStorage creates a new Redis storage instance. The TTL bounds
// how long presentation state survives without a new turn.
func NewRedisStorage(redisURL string, ttl time.Duration, logger *slog.Logger) (*RedisStorage, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}

	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &RedisStorage{
		client: redis.NewClient(opt),
		logger: logger,
		ttl:    ttl,
	}, nil
}

func stateKey(id uuid.UUID) string {
	return "presentation-state:" + id.String()
}

func (r *RedisStorage) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (r *RedisStorage) Close() error {
	if err := r.client.Close(); err != nil {
		r.logger.Error("Failed to close Redis connection", "error", err)
		return err
	}
	r.logger.Info("Redis connection closed")
	return nil
}

// WaitForConnection waits for Redis to become available (used during startup)
func (r *RedisStorage) WaitForConnection(ctx context.Context) error {
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		if err := r.Ping(ctx); err != nil {
			r.logger.Debug("Redis not ready yet", "error", err, "attempt", i+1)

			select {
			case <-ctx.Done():
				return fmt.Errorf("context cancelled while waiting for redis: %w", ctx.Err())
			case <-time.After(retryDelay):
				continue
			}
		}

		r.logger.Info("Redis connection established")
		return nil
	}

	return fmt.Errorf("redis did not become available after %d attempts", maxRetries)
}

func (r *RedisStorage) SavePresentationState(ctx context.Context, id uuid.UUID, ps *state.PresentationState) error {
	data, err := json.Marshal(ps)
	if err != nil {
		r.logger.Error("Failed to marshal presentation state", "uuid", id, "error", err)
		return fmt.Errorf("failed to marshal presentation state: %w", err)
	}

	if err := r.client.Set(ctx, stateKey(id), string(data), r.ttl).Err(); err != nil {
		r.logger.Error("Failed to save presentation state", "uuid", id, "error", err)
		return fmt.Errorf("failed to save presentation state: %w", err)
	}

	return nil
}

func (r *RedisStorage) GetPresentationState(ctx context.Context, id uuid.UUID) (*state.PresentationState, error) {
	cmd := r.client.Get(ctx, stateKey(id))
	if err := cmd.Err(); err != nil {
		if err == redis.Nil {
			return nil, nil // Return nil for not found
		}
		r.logger.Error("Failed to load presentation state", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to load presentation state: %w", err)
	}

	data := cmd.Val()
	if data == "" {
		return nil, nil
	}

	var ps state.PresentationState
	if err := json.Unmarshal([]byte(data), &ps); err != nil {
		r.logger.Error("Failed to unmarshal presentation state", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to unmarshal presentation state: %w", err)
	}

	return &ps, nil
}

func (r *RedisStorage) DeletePresentationState(ctx context.Context, id uuid.UUID) error {
	if err := r.client.Del(ctx, stateKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete presentation state", "uuid", id, "error", err)
		return fmt.Errorf("failed to delete presentation state: %w", err)
	}
	return nil
}
