package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revkae/hotel-management/internal/domain"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// HotelRepository defines persistence access for hotels.
type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	Update(ctx context.Context, hotel *domain.Hotel) error
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
	List(ctx context.Context) ([]domain.Hotel, error)
	Delete(ctx context.Context, id int64) error
}

type hotelRepository struct {
	pool *pgxpool.Pool
}

// NewHotelRepository returns a Postgres-backed implementation.
func NewHotelRepository(pool *pgxpool.Pool) HotelRepository {
	return &hotelRepository{pool: pool}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	const query = `
        INSERT INTO hotels (name, location, rooms)
        VALUES ($1, $2, $3)
        RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		hotel.Name,
		hotel.Location,
		hotel.Rooms,
	).Scan(&hotel.ID, &hotel.CreatedAt, &hotel.UpdatedAt)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	return nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	const query = `
        UPDATE hotels SET name=$1, location=$2, rooms=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.pool.Exec(ctx, query,
		hotel.Name,
		hotel.Location,
		hotel.Rooms,
		hotel.ID,
	)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("hotel", map[string]any{"id": hotel.ID})
	}
	return nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	const query = `
        SELECT id, name, location, rooms, created_at, updated_at
        FROM hotels WHERE id=$1`

	var hotel domain.Hotel
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Location,
		&hotel.Rooms,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("hotel", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	const query = `
        SELECT id, name, location, rooms, created_at, updated_at
        FROM hotels ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	var result []domain.Hotel
	for rows.Next() {
		var hotel domain.Hotel
		if err := rows.Scan(
			&hotel.ID,
			&hotel.Name,
			&hotel.Location,
			&hotel.Rooms,
			&hotel.CreatedAt,
			&hotel.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		result = append(result, hotel)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return result, nil
}

func (r *hotelRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM hotels WHERE id=$1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return apperrors.NewConflict("hotel has reservations", map[string]any{"id": id})
		}
		return apperrors.NewStoreError(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("hotel", map[string]any{"id": id})
	}
	return nil
}
