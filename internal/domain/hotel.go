package domain

import "time"

// Hotel is a bookable property.
type Hotel struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Rooms     int32     `json:"rooms"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Reservations is populated on single reads only.
	Reservations []Reservation `json:"reservations,omitempty"`
}
