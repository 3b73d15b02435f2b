package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	redisModels "eventPlanner/internal/models/redis"

	"github.com/redis/go-redis/v9"
)

// RedisLayer keeps membership in a local Registry and routes every group
// send through a Redis channel, so a publish on any server process reaches
// the members connected to all of them.
type RedisLayer struct {
	*Registry
	redis   *redis.Client
	channel string

	mu     sync.Mutex
	pubsub *redis.PubSub
	done   chan struct{}
}

func NewRedisLayer(client *redis.Client, channel string, local *Registry) *RedisLayer {
	if channel == "" {
		channel = redisModels.REDIS_CHANNEL_EVENT_UPDATES
	}
	if local == nil {
		local = NewRegistry()
	}
	return &RedisLayer{
		Registry: local,
		redis:    client,
		channel:  channel,
	}
}

// Start subscribes to the updates channel and delivers incoming frames to
// local members until ctx is cancelled or Close is called.
func (rl *RedisLayer) Start(ctx context.Context) error {
	pubsub := rl.redis.Subscribe(ctx, rl.channel)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return fmt.Errorf("subscribe to %s: %w", rl.channel, err)
	}

	done := make(chan struct{})
	rl.mu.Lock()
	rl.pubsub = pubsub
	rl.done = done
	rl.mu.Unlock()

	go rl.handleRedisMessages(ctx, pubsub.Channel(), done)
	return nil
}

func (rl *RedisLayer) handleRedisMessages(ctx context.Context, ch <-chan *redis.Message, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var published redisModels.RedisPublishedMessage
			if err := json.Unmarshal([]byte(msg.Payload), &published); err != nil {
				slog.Warn("discarding malformed redis update", "channel", rl.channel, "error", err)
				continue
			}
			room := NewRoom(Domain(published.Domain), published.EventID)
			_ = rl.Registry.SendTo(ctx, room, published.Frame)
		}
	}
}

// SendTo publishes frame for room on the shared channel. Local members
// receive it through the subscription like every other process.
func (rl *RedisLayer) SendTo(ctx context.Context, room Room, frame []byte) error {
	payload, err := json.Marshal(redisModels.RedisPublishedMessage{
		Domain:  string(room.Domain),
		EventID: room.EventID,
		Frame:   frame,
	})
	if err != nil {
		return fmt.Errorf("encode redis update for %s: %w", room, err)
	}
	if err := rl.redis.Publish(ctx, rl.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish update for %s: %w", room, err)
	}
	return nil
}

// Close stops the subscription and waits for the delivery loop to exit.
func (rl *RedisLayer) Close() error {
	rl.mu.Lock()
	pubsub, done := rl.pubsub, rl.done
	rl.pubsub, rl.done = nil, nil
	rl.mu.Unlock()

	if pubsub == nil {
		return nil
	}
	err := pubsub.Close()
	<-done
	return err
}
