package movement

import (
	"context"
	"fmt"

	backend "github.com/redis/go-redis/v9"

	"github.com/katalvlaran/transitnet/errkind"
)

// DefaultRedisKey is the list that holds the history unless configured otherwise.
const DefaultRedisKey = "transitnet:movements"

// RedisLog keeps the history in a Redis list, one encoded record per element.
type RedisLog struct {
	client *backend.Client
	key    string
}

// NewRedisLog connects to the Redis server at address.
func NewRedisLog(address, key string) *RedisLog {
	return NewRedisLogFromClient(backend.NewClient(&backend.Options{Addr: address}), key)
}

// NewRedisLogFromClient wraps an existing client. An empty key means DefaultRedisKey.
func NewRedisLogFromClient(client *backend.Client, key string) *RedisLog {
	if key == "" {
		key = DefaultRedisKey
	}
	return &RedisLog{client: client, key: key}
}

// Append implements Log with RPUSH.
func (l *RedisLog) Append(ctx context.Context, r Record) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := l.client.RPush(ctx, l.key, r.String()).Err(); err != nil {
		return fmt.Errorf("movement: rpush %s: %w: %w", l.key, errkind.ErrIO, err)
	}
	return nil
}

// Records implements Log with LRANGE 0 -1.
func (l *RedisLog) Records(ctx context.Context) ([]Record, error) {
	lines, err := l.client.LRange(ctx, l.key, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("movement: lrange %s: %w: %w", l.key, errkind.ErrIO, err)
	}
	out := make([]Record, 0, len(lines))
	for i, line := range lines {
		r, err := parseText(i+1, line)
		if err != nil {
			return nil, &errkind.FormatError{Path: "redis:" + l.key, Line: i + 1, Err: err}
		}
		out = append(out, r)
	}
	return out, nil
}

// Close releases the underlying client.
func (l *RedisLog) Close() error { return l.client.Close() }
