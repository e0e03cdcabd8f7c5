package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestDispatchRoutesByEventName(t *testing.T) {
	dispatcher := NewDispatcher(zap.NewNop())

	var created, deleted int
	dispatcher.Subscribe(EventReservationCreated, func(context.Context, json.RawMessage) error {
		created++
		return nil
	})
	dispatcher.Subscribe(EventReservationDeleted, func(context.Context, json.RawMessage) error {
		deleted++
		return nil
	})

	envelope, err := NewReservationDeleted(5)
	require.NoError(t, err)
	dispatcher.Dispatch(context.Background(), envelope)

	require.Equal(t, 0, created)
	require.Equal(t, 1, deleted)
}

func TestDispatchIsolatesFailingHandlers(t *testing.T) {
	dispatcher := NewDispatcher(zap.NewNop())

	var reached bool
	dispatcher.Subscribe(EventReservationCreated, func(context.Context, json.RawMessage) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventReservationCreated, func(context.Context, json.RawMessage) error {
		panic("much worse")
	})
	dispatcher.Subscribe(EventReservationCreated, func(context.Context, json.RawMessage) error {
		reached = true
		return nil
	})

	envelope, err := NewEnvelope(EventReservationCreated, map[string]int64{"id": 1})
	require.NoError(t, err)

	require.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), envelope)
	})
	require.True(t, reached)
}

func TestDispatchUnknownEventIsDropped(t *testing.T) {
	dispatcher := NewDispatcher(zap.NewNop())

	envelope, err := NewEnvelope(EventName("room_upgraded"), map[string]int64{"id": 1})
	require.NoError(t, err)
	require.NotPanics(t, func() {
		dispatcher.Dispatch(context.Background(), envelope)
	})
}

func TestEnvelopeWireShape(t *testing.T) {
	envelope, err := NewReservationDeleted(9)
	require.NoError(t, err)

	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	var decoded struct {
		Pattern string          `json:"pattern"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &decoded))
	require.Equal(t, "reservation_deleted", decoded.Pattern)

	var payload ReservationDeletedPayload
	require.NoError(t, json.Unmarshal(decoded.Data, &payload))
	require.Equal(t, int64(9), payload.ID)
}

func TestPublisherWithoutClientIsNoop(t *testing.T) {
	publisher := NewPublisher(nil, "reservations_queue")

	envelope, err := NewReservationDeleted(1)
	require.NoError(t, err)
	require.NoError(t, publisher.Publish(context.Background(), envelope))
}
