package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revkae/hotel-management/internal/domain"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// ReservationPatch carries optional fields for a partial update. Nil
// fields are left unchanged.
type ReservationPatch struct {
	UserID  *int64
	HotelID *int64
	Date    *time.Time
	Status  *domain.ReservationStatus
	Notes   *string
}

// Empty reports whether the patch changes nothing.
func (p ReservationPatch) Empty() bool {
	return p.UserID == nil && p.HotelID == nil && p.Date == nil && p.Status == nil && p.Notes == nil
}

// ReservationRepository encapsulates reservation persistence. Reads
// suffixed WithRelations embed the full User and Hotel records, not just
// their identifiers.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetWithRelations(ctx context.Context, id int64) (*domain.Reservation, error)
	ListWithRelations(ctx context.Context) ([]domain.Reservation, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error)
	ListByHotel(ctx context.Context, hotelID int64) ([]domain.Reservation, error)
	Update(ctx context.Context, id int64, patch ReservationPatch) error
	Delete(ctx context.Context, id int64) error
}

type reservationRepository struct {
	pool *pgxpool.Pool
}

// NewReservationRepository instantiates repository.
func NewReservationRepository(pool *pgxpool.Pool) ReservationRepository {
	return &reservationRepository{pool: pool}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *domain.Reservation) error {
	const query = `
        INSERT INTO reservations (user_id, hotel_id, date, status, notes)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query,
		reservation.UserID,
		reservation.HotelID,
		reservation.Date,
		reservation.Status,
		reservation.Notes,
	).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	if err != nil {
		return mapReservationError(err)
	}
	return nil
}

const hydratedSelect = `
        SELECT r.id, r.user_id, r.hotel_id, r.date, r.status, r.notes, r.created_at, r.updated_at,
               u.id, u.name, u.email, u.created_at, u.updated_at,
               h.id, h.name, h.location, h.rooms, h.created_at, h.updated_at
        FROM reservations r
        JOIN users u ON u.id = r.user_id
        JOIN hotels h ON h.id = r.hotel_id`

func (r *reservationRepository) GetWithRelations(ctx context.Context, id int64) (*domain.Reservation, error) {
	query := hydratedSelect + ` WHERE r.id=$1`
	var reservation domain.Reservation
	if err := scanHydrated(r.pool.QueryRow(ctx, query, id), &reservation); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("reservation", map[string]any{"id": id})
		}
		return nil, apperrors.NewStoreError(err)
	}
	return &reservation, nil
}

func (r *reservationRepository) ListWithRelations(ctx context.Context) ([]domain.Reservation, error) {
	query := hydratedSelect + ` ORDER BY r.id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()
	return scanHydratedRows(rows)
}

func (r *reservationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Reservation, error) {
	return r.listBare(ctx, "user_id", userID)
}

func (r *reservationRepository) ListByHotel(ctx context.Context, hotelID int64) ([]domain.Reservation, error) {
	return r.listBare(ctx, "hotel_id", hotelID)
}

func (r *reservationRepository) listBare(ctx context.Context, column string, id int64) ([]domain.Reservation, error) {
	query := fmt.Sprintf(`
        SELECT id, user_id, hotel_id, date, status, notes, created_at, updated_at
        FROM reservations WHERE %s=$1 ORDER BY id`, column)
	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	defer rows.Close()

	var result []domain.Reservation
	for rows.Next() {
		var reservation domain.Reservation
		if err := rows.Scan(
			&reservation.ID,
			&reservation.UserID,
			&reservation.HotelID,
			&reservation.Date,
			&reservation.Status,
			&reservation.Notes,
			&reservation.CreatedAt,
			&reservation.UpdatedAt,
		); err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		result = append(result, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return result, nil
}

func (r *reservationRepository) Update(ctx context.Context, id int64, patch ReservationPatch) error {
	clauses, args := buildReservationPatch(patch)
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE reservations SET %s WHERE id=$%d`,
		strings.Join(clauses, ", "), len(args))

	cmd, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return mapReservationError(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("reservation", map[string]any{"id": id})
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id=$1`, id)
	if err != nil {
		return apperrors.NewStoreError(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("reservation", map[string]any{"id": id})
	}
	return nil
}

// buildReservationPatch produces SET clauses for the supplied fields.
// updated_at is always touched.
func buildReservationPatch(patch ReservationPatch) ([]string, []any) {
	clauses := []string{}
	args := []any{}

	if patch.UserID != nil {
		args = append(args, *patch.UserID)
		clauses = append(clauses, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if patch.HotelID != nil {
		args = append(args, *patch.HotelID)
		clauses = append(clauses, fmt.Sprintf("hotel_id=$%d", len(args)))
	}
	if patch.Date != nil {
		args = append(args, *patch.Date)
		clauses = append(clauses, fmt.Sprintf("date=$%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.Notes != nil {
		args = append(args, *patch.Notes)
		clauses = append(clauses, fmt.Sprintf("notes=$%d", len(args)))
	}
	clauses = append(clauses, "updated_at=NOW()")
	return clauses, args
}

func scanHydrated(row pgx.Row, reservation *domain.Reservation) error {
	var user domain.User
	var hotel domain.Hotel
	if err := row.Scan(
		&reservation.ID,
		&reservation.UserID,
		&reservation.HotelID,
		&reservation.Date,
		&reservation.Status,
		&reservation.Notes,
		&reservation.CreatedAt,
		&reservation.UpdatedAt,
		&user.ID,
		&user.Name,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
		&hotel.ID,
		&hotel.Name,
		&hotel.Location,
		&hotel.Rooms,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	); err != nil {
		return err
	}
	reservation.User = &user
	reservation.Hotel = &hotel
	return nil
}

func scanHydratedRows(rows pgx.Rows) ([]domain.Reservation, error) {
	var result []domain.Reservation
	for rows.Next() {
		var reservation domain.Reservation
		if err := scanHydrated(rows, &reservation); err != nil {
			return nil, apperrors.NewStoreError(err)
		}
		result = append(result, reservation)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewStoreError(err)
	}
	return result, nil
}

// mapReservationError translates store-level failures. The store is the
// authority for referential integrity: a foreign key violation means the
// referenced user or hotel does not exist.
func mapReservationError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		switch {
		case strings.Contains(pgErr.ConstraintName, "user"):
			return apperrors.NewNotFound("user", nil)
		case strings.Contains(pgErr.ConstraintName, "hotel"):
			return apperrors.NewNotFound("hotel", nil)
		}
		return apperrors.NewNotFound("referenced record", nil)
	}
	return apperrors.NewStoreError(err)
}
