package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/revkae/hotel-management/internal/domain"
)

func TestBuildReservationPatchEmpty(t *testing.T) {
	clauses, args := buildReservationPatch(ReservationPatch{})
	require.Equal(t, []string{"updated_at=NOW()"}, clauses)
	require.Empty(t, args)
	require.True(t, ReservationPatch{}.Empty())
}

func TestBuildReservationPatchSingleField(t *testing.T) {
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	patch := ReservationPatch{Date: &date}
	require.False(t, patch.Empty())

	clauses, args := buildReservationPatch(patch)
	require.Equal(t, []string{"date=$1", "updated_at=NOW()"}, clauses)
	require.Equal(t, []any{date}, args)
}

func TestBuildReservationPatchAllFields(t *testing.T) {
	userID := int64(1)
	hotelID := int64(2)
	date := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	status := domain.ReservationStatusConfirmed
	notes := "late arrival"

	clauses, args := buildReservationPatch(ReservationPatch{
		UserID:  &userID,
		HotelID: &hotelID,
		Date:    &date,
		Status:  &status,
		Notes:   &notes,
	})
	require.Equal(t, []string{
		"user_id=$1",
		"hotel_id=$2",
		"date=$3",
		"status=$4",
		"notes=$5",
		"updated_at=NOW()",
	}, clauses)
	require.Equal(t, []any{userID, hotelID, date, status, notes}, args)
}
