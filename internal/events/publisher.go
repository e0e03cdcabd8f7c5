package events

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// Publisher pushes event envelopes onto the channel. Best effort: a
// returned error means the event was dropped, nothing is retried.
type Publisher interface {
	Publish(ctx context.Context, envelope Envelope) error
}

// NewPublisher returns a channel-backed publisher, or a no-op publisher
// when no broker client is configured.
func NewPublisher(client *redis.Client, queue string) Publisher {
	if client == nil {
		return noopPublisher{}
	}
	return &channelPublisher{client: client, queue: queue}
}

type channelPublisher struct {
	client *redis.Client
	queue  string
}

func (p *channelPublisher) Publish(ctx context.Context, envelope Envelope) error {
	body, err := json.Marshal(envelope)
	if err != nil {
		return apperrors.NewChannelError(err)
	}
	if err := p.client.Publish(ctx, p.queue, body).Err(); err != nil {
		return apperrors.NewChannelError(err)
	}
	return nil
}

// noopPublisher drops every event. Used when the channel is unconfigured
// so the lifecycle manager keeps its CRUD guarantees without branching.
type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, Envelope) error {
	return nil
}
