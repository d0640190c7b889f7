package stats

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// DefaultKeyPrefix namespaces every key this repository writes
	DefaultKeyPrefix = "tonebot:stats"

	// DefaultPingTimeout bounds the connectivity check in NewRedis
	DefaultPingTimeout = 5 * time.Second

	activeField     = "active_sessions"
	recordedAtField = "recorded_at"
)

// Config holds configuration for the Redis stats repository
type Config struct {
	RedisClient *redis.Client

	// KeyPrefix defaults to DefaultKeyPrefix
	KeyPrefix string

	// PingTimeout defaults to DefaultPingTimeout
	PingTimeout time.Duration
}

// redisRepository implements the Repository interface using a Redis hash
type redisRepository struct {
	client *redis.Client
	key    string
}

// NewRedis creates a new Redis-backed stats repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.RedisClient == nil {
		return nil, ErrNilRedisClient
	}

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = DefaultPingTimeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := cfg.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}

	return &redisRepository{
		client: cfg.RedisClient,
		key:    prefix + ":voice",
	}, nil
}

// SetActiveCount writes the count and its timestamp in one round trip
func (r *redisRepository) SetActiveCount(ctx context.Context, input *SetActiveCountInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}
	if input.Count < 0 {
		return ErrNegativeCount
	}

	err := r.client.HSet(ctx, r.key,
		activeField, input.Count,
		recordedAtField, input.RecordedAt.UTC().Format(time.RFC3339Nano),
	).Err()
	if err != nil {
		return fmt.Errorf("failed to record active count: %w", err)
	}

	return nil
}

// GetActiveCount reads the last sample; an empty hash is a zero sample
func (r *redisRepository) GetActiveCount(ctx context.Context) (*GetActiveCountOutput, error) {
	fields, err := r.client.HGetAll(ctx, r.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get active count: %w", err)
	}

	out := &GetActiveCountOutput{}
	if len(fields) == 0 {
		return out, nil
	}

	if raw, ok := fields[activeField]; ok {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrCorruptSample, activeField, raw)
		}
		out.Count = count
	}

	if raw, ok := fields[recordedAtField]; ok {
		recordedAt, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrCorruptSample, recordedAtField, raw)
		}
		out.RecordedAt = recordedAt
	}

	return out, nil
}
