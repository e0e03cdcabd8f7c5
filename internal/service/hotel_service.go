package service

import (
	"context"
	"strings"

	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/repository"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// HotelService provides hotel CRUD. Single reads attach the hotel's
// reservations.
type HotelService struct {
	hotels       repository.HotelRepository
	reservations repository.ReservationRepository
}

// HotelCreateInput describes hotel creation payload.
type HotelCreateInput struct {
	Name     string
	Location string
	Rooms    int32
}

// HotelUpdateInput describes a partial hotel update.
type HotelUpdateInput struct {
	Name     *string
	Location *string
	Rooms    *int32
}

// NewHotelService constructs the service.
func NewHotelService(hotels repository.HotelRepository, reservations repository.ReservationRepository) *HotelService {
	return &HotelService{hotels: hotels, reservations: reservations}
}

// Create registers a new hotel.
func (s *HotelService) Create(ctx context.Context, input HotelCreateInput) (*domain.Hotel, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name required", nil)
	}
	hotel := &domain.Hotel{
		Name:     name,
		Location: strings.TrimSpace(input.Location),
		Rooms:    input.Rooms,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// FindAll lists hotels.
func (s *HotelService) FindAll(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotels.List(ctx)
}

// FindOne returns a hotel with its reservations attached.
func (s *HotelService) FindOne(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservations.ListByHotel(ctx, id)
	if err != nil {
		return nil, err
	}
	hotel.Reservations = reservations
	return hotel, nil
}

// Update applies the supplied fields.
func (s *HotelService) Update(ctx context.Context, id int64, input HotelUpdateInput) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		hotel.Name = strings.TrimSpace(*input.Name)
	}
	if input.Location != nil {
		hotel.Location = strings.TrimSpace(*input.Location)
	}
	if input.Rooms != nil {
		hotel.Rooms = *input.Rooms
	}
	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

// Remove deletes the hotel. Hotels with reservations cannot be removed.
func (s *HotelService) Remove(ctx context.Context, id int64) error {
	return s.hotels.Delete(ctx, id)
}
