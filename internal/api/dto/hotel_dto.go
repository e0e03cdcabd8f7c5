package dto

// CreateHotelRequest payload.
type CreateHotelRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Rooms    int32  `json:"rooms"`
}

// UpdateHotelRequest payload; only supplied fields are applied.
type UpdateHotelRequest struct {
	Name     *string `json:"name"`
	Location *string `json:"location"`
	Rooms    *int32  `json:"rooms"`
}
