package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Consumer pumps inbound messages from the channel into the dispatcher.
type Consumer struct {
	client     *redis.Client
	queue      string
	dispatcher *Dispatcher
	logger     *zap.Logger
}

// NewConsumer builds a consumer for the given channel.
func NewConsumer(client *redis.Client, queue string, dispatcher *Dispatcher, logger *zap.Logger) *Consumer {
	return &Consumer{
		client:     client,
		queue:      queue,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Start subscribes and dispatches until ctx is cancelled. Undecodable
// messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	sub := c.client.Subscribe(ctx, c.queue)
	c.logger.Info("subscribed to event channel", zap.String("queue", c.queue))

	go func() {
		defer sub.Close() //nolint:errcheck
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var envelope Envelope
				if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
					c.logger.Warn("discarding malformed event", zap.Error(err))
					continue
				}
				c.dispatcher.Dispatch(ctx, envelope)
			}
		}
	}()
}
