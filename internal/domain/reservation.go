package domain

import "time"

// ReservationStatus enumerates reservation lifecycle states.
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "PENDING"
	ReservationStatusConfirmed ReservationStatus = "CONFIRMED"
	ReservationStatusCancelled ReservationStatus = "CANCELLED"
)

// Reservation is the aggregate of interest. The ID is assigned by the
// store on creation and immutable thereafter. User and Hotel carry the
// hydrated related records when the reservation was read with relations;
// they are nil on bare reads and ignored on writes.
type Reservation struct {
	ID        int64             `json:"id"`
	UserID    int64             `json:"userId"`
	HotelID   int64             `json:"hotelId"`
	Date      time.Time         `json:"date"`
	Status    ReservationStatus `json:"status"`
	Notes     string            `json:"notes,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`

	User  *User  `json:"user,omitempty"`
	Hotel *Hotel `json:"hotel,omitempty"`
}

// Hydrated reports whether both related records are embedded.
func (r *Reservation) Hydrated() bool {
	return r != nil && r.User != nil && r.Hotel != nil
}
