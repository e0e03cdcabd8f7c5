package domain

import "time"

// User is a guest who can hold reservations. Reservations reference the
// user but are never owned by it; removing a reservation leaves the user
// untouched.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	// Reservations is populated on single reads only.
	Reservations []Reservation `json:"reservations,omitempty"`
}
