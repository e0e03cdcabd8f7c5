package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/revkae/hotel-management/internal/config"
)

// Channel wraps the Redis connection backing the event channel. The
// connection is optional: when no CHANNEL_URL is configured the wrapper
// carries a nil client and the service runs without eventing.
type Channel struct {
	client *redis.Client
	queue  string
}

// NewChannel connects to the event channel endpoint when configured.
// An unreachable broker is logged, not fatal; publish failures surface
// per call and are swallowed by the lifecycle manager.
func NewChannel(cfg config.ChannelConfig, logger *zap.Logger) (*Channel, error) {
	if !cfg.Enabled() {
		logger.Info("CHANNEL_URL not set, event channel disabled")
		return &Channel{queue: cfg.Queue}, nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach event channel", zap.Error(err))
	} else {
		logger.Info("connected to event channel", zap.String("queue", cfg.Queue))
	}

	return &Channel{client: client, queue: cfg.Queue}, nil
}

// Enabled reports whether a broker connection exists.
func (c *Channel) Enabled() bool {
	return c != nil && c.client != nil
}

// Client returns the underlying Redis client, nil when disabled.
func (c *Channel) Client() *redis.Client {
	if c == nil {
		return nil
	}
	return c.client
}

// Queue returns the configured channel name.
func (c *Channel) Queue() string {
	if c == nil {
		return ""
	}
	return c.queue
}

// Close closes the client.
func (c *Channel) Close() {
	if c != nil && c.client != nil {
		_ = c.client.Close()
	}
}

// Ping verifies broker connectivity.
func (c *Channel) Ping(ctx context.Context) error {
	if !c.Enabled() {
		return errors.New("event channel not configured")
	}
	return c.client.Ping(ctx).Err()
}
