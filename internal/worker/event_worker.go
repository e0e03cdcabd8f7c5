package worker

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"

	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/events"
)

// RegisterEventHandlers subscribes the pass-through handlers for inbound
// reservation events. They only log; downstream consumers attach their
// own handlers here when they need to act on the events.
func RegisterEventHandlers(dispatcher *events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}
	dispatcher.Subscribe(events.EventReservationCreated, logReservation(logger, "reservation created event received"))
	dispatcher.Subscribe(events.EventReservationUpdated, logReservation(logger, "reservation updated event received"))
	dispatcher.Subscribe(events.EventReservationDeleted, func(ctx context.Context, data json.RawMessage) error {
		var payload events.ReservationDeletedPayload
		if err := json.Unmarshal(data, &payload); err != nil {
			return err
		}
		logger.Info("reservation deleted event received", zap.Int64("reservation_id", payload.ID))
		return nil
	})
}

func logReservation(logger *zap.Logger, message string) events.Handler {
	return func(ctx context.Context, data json.RawMessage) error {
		var reservation domain.Reservation
		if err := json.Unmarshal(data, &reservation); err != nil {
			return err
		}
		logger.Info(message,
			zap.Int64("reservation_id", reservation.ID),
			zap.Int64("user_id", reservation.UserID),
			zap.Int64("hotel_id", reservation.HotelID),
		)
		return nil
	}
}
