package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/redis/go-redis/v9"
)

// RedisSink pushes records as JSON onto a Redis list for a historian to
// consume.
type RedisSink struct {
	client *redis.Client
	queue  string
}

// ConnectRedis opens the client and checks it with a ping.
func ConnectRedis(ctx context.Context, addr string, db int, queue string) (*RedisSink, error) {
	if queue == "" {
		queue = consts.DefaultQueueName
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	ctx, cancel := context.WithTimeout(ctx, consts.RedisTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return &RedisSink{client: client, queue: queue}, nil
}

func (s *RedisSink) Publish(ctx context.Context, record Record) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	ctx, cancel := context.WithTimeout(ctx, consts.RedisTimeout)
	defer cancel()
	if err := s.client.RPush(ctx, s.queue, data).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", s.queue, err)
	}
	return nil
}

func (s *RedisSink) Close() error {
	return s.client.Close()
}
