package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/events"
	"github.com/revkae/hotel-management/internal/repository"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// ReservationService is the reservation lifecycle manager. Every mutation
// runs mutate -> hydrate -> publish, in that order. The publish step is
// fire-and-forget: once the write committed the operation succeeds even
// if the event is dropped, so a crash or channel outage between commit
// and publish leaves a persisted mutation unnotified. There is no outbox
// and no compensation; the window is accepted.
type ReservationService struct {
	reservations repository.ReservationRepository
	publisher    events.Publisher
	logger       *zap.Logger
}

// ReservationDependencies bundles collaborators for the service.
type ReservationDependencies struct {
	ReservationRepo repository.ReservationRepository
	Publisher       events.Publisher
	Logger          *zap.Logger
}

// ReservationCreateInput describes reservation creation payload.
type ReservationCreateInput struct {
	UserID  int64
	HotelID int64
	Date    string
	Status  domain.ReservationStatus
	Notes   string
}

// ReservationUpdateInput describes a partial update. Nil fields are left
// unchanged.
type ReservationUpdateInput struct {
	UserID  *int64
	HotelID *int64
	Date    *string
	Status  *domain.ReservationStatus
	Notes   *string
}

// NewReservationService constructs the service.
func NewReservationService(deps ReservationDependencies) *ReservationService {
	return &ReservationService{
		reservations: deps.ReservationRepo,
		publisher:    deps.Publisher,
		logger:       deps.Logger,
	}
}

// Create persists a new reservation, hydrates its relations and attempts
// a reservation_created publish. The store enforces that the referenced
// user and hotel exist; their absence surfaces as not-found with no row
// written.
func (s *ReservationService) Create(ctx context.Context, input ReservationCreateInput) (*domain.Reservation, error) {
	if input.UserID <= 0 || input.HotelID <= 0 {
		return nil, apperrors.NewValidationError("userId and hotelId required", nil)
	}
	date, err := normalizeDate(input.Date)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		UserID:  input.UserID,
		HotelID: input.HotelID,
		Date:    date,
		Status:  input.Status,
		Notes:   input.Notes,
	}
	if reservation.Status == "" {
		reservation.Status = domain.ReservationStatusPending
	}

	if err := s.reservations.Create(ctx, reservation); err != nil {
		return nil, err
	}

	result := s.hydrate(ctx, reservation)
	s.publishEvent(ctx, events.NewReservationCreated, result)
	return result, nil
}

// FindAll returns every reservation with relations hydrated, in store
// order. Never publishes events.
func (s *ReservationService) FindAll(ctx context.Context) ([]domain.Reservation, error) {
	return s.reservations.ListWithRelations(ctx)
}

// FindOne returns the hydrated reservation for id.
func (s *ReservationService) FindOne(ctx context.Context, id int64) (*domain.Reservation, error) {
	return s.reservations.GetWithRelations(ctx, id)
}

// Update applies only the supplied fields, re-hydrates and attempts a
// reservation_updated publish.
func (s *ReservationService) Update(ctx context.Context, id int64, input ReservationUpdateInput) (*domain.Reservation, error) {
	patch := repository.ReservationPatch{
		UserID:  input.UserID,
		HotelID: input.HotelID,
		Status:  input.Status,
		Notes:   input.Notes,
	}
	if input.Date != nil {
		date, err := normalizeDate(*input.Date)
		if err != nil {
			return nil, err
		}
		patch.Date = &date
	}

	if err := s.reservations.Update(ctx, id, patch); err != nil {
		return nil, err
	}

	reservation, err := s.reservations.GetWithRelations(ctx, id)
	if err != nil {
		// The write already committed; report the read failure without
		// undoing it.
		s.logger.Warn("post-update hydration failed", zap.Int64("reservation_id", id), zap.Error(err))
		return nil, err
	}
	s.publishEvent(ctx, events.NewReservationUpdated, reservation)
	return reservation, nil
}

// Remove deletes the reservation and attempts a reservation_deleted
// publish carrying only the identifier. The referenced user and hotel
// are untouched.
func (s *ReservationService) Remove(ctx context.Context, id int64) error {
	if err := s.reservations.Delete(ctx, id); err != nil {
		return err
	}

	envelope, err := events.NewReservationDeleted(id)
	if err != nil {
		s.logger.Warn("encode reservation_deleted failed", zap.Int64("reservation_id", id), zap.Error(err))
		return nil
	}
	s.publish(ctx, envelope, events.EventReservationDeleted)
	return nil
}

// hydrate re-reads the reservation with relations. A hydration failure
// after a committed write is logged and the bare record returned; the
// mutation is not rolled back.
func (s *ReservationService) hydrate(ctx context.Context, reservation *domain.Reservation) *domain.Reservation {
	hydrated, err := s.reservations.GetWithRelations(ctx, reservation.ID)
	if err != nil {
		s.logger.Warn("post-write hydration failed",
			zap.Int64("reservation_id", reservation.ID), zap.Error(err))
		return reservation
	}
	return hydrated
}

func (s *ReservationService) publishEvent(ctx context.Context, build func(*domain.Reservation) (events.Envelope, error), reservation *domain.Reservation) {
	envelope, err := build(reservation)
	if err != nil {
		s.logger.Warn("encode event failed", zap.Int64("reservation_id", reservation.ID), zap.Error(err))
		return
	}
	s.publish(ctx, envelope, envelope.Pattern)
}

func (s *ReservationService) publish(ctx context.Context, envelope events.Envelope, name events.EventName) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, envelope); err != nil {
		s.logger.Warn("event publish failed", zap.String("event", string(name)), zap.Error(err))
	}
}

// normalizeDate parses a reservation date into canonical UTC time.
// Accepts RFC 3339 timestamps and plain dates.
func normalizeDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, apperrors.NewValidationError("date required", nil)
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, apperrors.NewValidationError(
		fmt.Sprintf("unparseable date %q", value), map[string]any{"date": value})
}
