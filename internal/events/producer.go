package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const publishTimeout = 2 * time.Second

type Producer struct {
	client     *redis.Client
	streamName string
}

func NewProducer(client *redis.Client, streamName string) *Producer {
	return &Producer{
		client:     client,
		streamName: streamName,
	}
}

// Publish appends the event to the stream. A bounded timeout keeps a slow
// redis from stalling the request that triggered the event.
func (p *Producer) Publish(ctx context.Context, event *AuthEvent) error {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	timestamp := event.Timestamp
	if timestamp == 0 {
		timestamp = time.Now().Unix()
	}

	fields := map[string]interface{}{
		"event_id":  uuid.New().String(),
		"kind":      event.Kind,
		"email":     event.Email,
		"timestamp": timestamp,
	}

	if event.IP != "" {
		fields["ip"] = event.IP
	}
	if event.UserAgent != "" {
		fields["user_agent"] = event.UserAgent
	}

	result := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.streamName,
		Values: fields,
	})

	if err := result.Err(); err != nil {
		return fmt.Errorf("failed to publish auth event: %w", err)
	}

	return nil
}

func (p *Producer) StreamLength(ctx context.Context) (int64, error) {
	result := p.client.XLen(ctx, p.streamName)
	return result.Val(), result.Err()
}
