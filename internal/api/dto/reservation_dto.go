package dto

// CreateReservationRequest payload.
type CreateReservationRequest struct {
	UserID  int64  `json:"userId"`
	HotelID int64  `json:"hotelId"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Notes   string `json:"notes"`
}

// UpdateReservationRequest payload; only supplied fields are applied.
type UpdateReservationRequest struct {
	UserID  *int64  `json:"userId"`
	HotelID *int64  `json:"hotelId"`
	Date    *string `json:"date"`
	Status  *string `json:"status"`
	Notes   *string `json:"notes"`
}
