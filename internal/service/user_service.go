package service

import (
	"context"
	"strings"

	"github.com/revkae/hotel-management/internal/auth"
	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/repository"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// UserService provides guest CRUD. Single reads attach the user's
// reservations.
type UserService struct {
	users        repository.UserRepository
	reservations repository.ReservationRepository
	bcryptCost   int
}

// UserCreateInput describes user creation payload.
type UserCreateInput struct {
	Name     string
	Email    string
	Password string
}

// UserUpdateInput describes a partial user update.
type UserUpdateInput struct {
	Name  *string
	Email *string
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository, reservations repository.ReservationRepository, bcryptCost int) *UserService {
	return &UserService{users: users, reservations: reservations, bcryptCost: bcryptCost}
}

// Create registers a new user with a hashed password.
func (s *UserService) Create(ctx context.Context, input UserCreateInput) (*domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if name == "" || email == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("name, email, password required", nil)
	}

	hash, err := auth.HashPassword(input.Password, s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user := &domain.User{Name: name, Email: email, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// FindAll lists users.
func (s *UserService) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// FindOne returns a user with their reservations attached.
func (s *UserService) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	reservations, err := s.reservations.ListByUser(ctx, id)
	if err != nil {
		return nil, err
	}
	user.Reservations = reservations
	return user, nil
}

// Update applies the supplied fields.
func (s *UserService) Update(ctx context.Context, id int64, input UserUpdateInput) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		user.Name = strings.TrimSpace(*input.Name)
	}
	if input.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*input.Email))
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Remove deletes the user. Users with reservations cannot be removed.
func (s *UserService) Remove(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}
