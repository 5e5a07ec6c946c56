package publisher

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher implements Publisher using Redis streams
type RedisPublisher struct {
	client          *redis.Client
	ctx             context.Context
	stream          string
	streamMaxLength int
}

// NewRedisPublisher creates a new Redis publisher writing to a single
// announcement stream
func NewRedisPublisher(ctx context.Context, addr string, db int, stream string, streamMaxLength int) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisPublisher{
		client:          client,
		ctx:             ctx,
		stream:          stream,
		streamMaxLength: streamMaxLength,
	}
}

// Publish appends a payload to the announcement stream keyed by date slug
func (p *RedisPublisher) Publish(key string, message []byte) error {
	return p.client.XAdd(p.ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"slug":    key,
			"payload": string(message),
		},
	}).Err()
}

// TrimStreams trims the announcement stream to the configured maximum length
func (p *RedisPublisher) TrimStreams() error {
	return p.client.XTrimMaxLen(p.ctx, p.stream, int64(p.streamMaxLength)).Err()
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
