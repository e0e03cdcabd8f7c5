package events

import (
	"encoding/json"

	"github.com/revkae/hotel-management/internal/domain"
)

// EventName enumerates supported event identifiers.
type EventName string

const (
	EventReservationCreated EventName = "reservation_created"
	EventReservationUpdated EventName = "reservation_updated"
	EventReservationDeleted EventName = "reservation_deleted"
)

// Envelope is the wire shape carried on the channel: an event name plus
// its payload. Created/updated events carry the hydrated reservation,
// deleted events carry only the identifier.
type Envelope struct {
	Pattern EventName       `json:"pattern"`
	Data    json.RawMessage `json:"data"`
}

// ReservationDeletedPayload is the payload of a deletion event.
type ReservationDeletedPayload struct {
	ID int64 `json:"id"`
}

// NewEnvelope wraps a payload under the given event name.
func NewEnvelope(name EventName, payload any) (Envelope, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}
	return Envelope{Pattern: name, Data: data}, nil
}

// NewReservationCreated builds the created event for a hydrated reservation.
func NewReservationCreated(reservation *domain.Reservation) (Envelope, error) {
	return NewEnvelope(EventReservationCreated, reservation)
}

// NewReservationUpdated builds the updated event for a hydrated reservation.
func NewReservationUpdated(reservation *domain.Reservation) (Envelope, error) {
	return NewEnvelope(EventReservationUpdated, reservation)
}

// NewReservationDeleted builds the deleted event carrying the identifier.
func NewReservationDeleted(id int64) (Envelope, error) {
	return NewEnvelope(EventReservationDeleted, ReservationDeletedPayload{ID: id})
}
