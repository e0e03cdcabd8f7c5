package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/revkae/hotel-management/internal/domain"
	"github.com/revkae/hotel-management/internal/events"
	"github.com/revkae/hotel-management/internal/repository"
	apperrors "github.com/revkae/hotel-management/pkg/util"
)

// fakeReservationRepo mimics the store, including its referential
// integrity checks: creating against an unknown user or hotel fails
// with not-found and writes nothing.
type fakeReservationRepo struct {
	users  map[int64]domain.User
	hotels map[int64]domain.Hotel
	rows   map[int64]domain.Reservation
	nextID int64
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{
		users:  make(map[int64]domain.User),
		hotels: make(map[int64]domain.Hotel),
		rows:   make(map[int64]domain.Reservation),
	}
}

func (f *fakeReservationRepo) addUser(id int64, name string) {
	f.users[id] = domain.User{ID: id, Name: name, Email: name + "@example.com"}
}

func (f *fakeReservationRepo) addHotel(id int64, name string) {
	f.hotels[id] = domain.Hotel{ID: id, Name: name, Location: "Lisbon", Rooms: 10}
}

func (f *fakeReservationRepo) Create(_ context.Context, reservation *domain.Reservation) error {
	if _, ok := f.users[reservation.UserID]; !ok {
		return apperrors.NewNotFound("user", nil)
	}
	if _, ok := f.hotels[reservation.HotelID]; !ok {
		return apperrors.NewNotFound("hotel", nil)
	}
	f.nextID++
	reservation.ID = f.nextID
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt
	f.rows[reservation.ID] = *reservation
	return nil
}

func (f *fakeReservationRepo) GetWithRelations(_ context.Context, id int64) (*domain.Reservation, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, apperrors.NewNotFound("reservation", nil)
	}
	user := f.users[row.UserID]
	hotel := f.hotels[row.HotelID]
	row.User = &user
	row.Hotel = &hotel
	return &row, nil
}

func (f *fakeReservationRepo) ListWithRelations(ctx context.Context) ([]domain.Reservation, error) {
	ids := make([]int64, 0, len(f.rows))
	for id := range f.rows {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]domain.Reservation, 0, len(ids))
	for _, id := range ids {
		row, err := f.GetWithRelations(ctx, id)
		if err != nil {
			return nil, err
		}
		result = append(result, *row)
	}
	return result, nil
}

func (f *fakeReservationRepo) ListByUser(_ context.Context, userID int64) ([]domain.Reservation, error) {
	var result []domain.Reservation
	for _, row := range f.rows {
		if row.UserID == userID {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) ListByHotel(_ context.Context, hotelID int64) ([]domain.Reservation, error) {
	var result []domain.Reservation
	for _, row := range f.rows {
		if row.HotelID == hotelID {
			result = append(result, row)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, id int64, patch repository.ReservationPatch) error {
	row, ok := f.rows[id]
	if !ok {
		return apperrors.NewNotFound("reservation", nil)
	}
	if patch.UserID != nil {
		if _, ok := f.users[*patch.UserID]; !ok {
			return apperrors.NewNotFound("user", nil)
		}
		row.UserID = *patch.UserID
	}
	if patch.HotelID != nil {
		if _, ok := f.hotels[*patch.HotelID]; !ok {
			return apperrors.NewNotFound("hotel", nil)
		}
		row.HotelID = *patch.HotelID
	}
	if patch.Date != nil {
		row.Date = *patch.Date
	}
	if patch.Status != nil {
		row.Status = *patch.Status
	}
	if patch.Notes != nil {
		row.Notes = *patch.Notes
	}
	row.UpdatedAt = time.Now()
	f.rows[id] = row
	return nil
}

func (f *fakeReservationRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.rows[id]; !ok {
		return apperrors.NewNotFound("reservation", nil)
	}
	delete(f.rows, id)
	return nil
}

// capturePublisher records published envelopes.
type capturePublisher struct {
	envelopes []events.Envelope
}

func (p *capturePublisher) Publish(_ context.Context, envelope events.Envelope) error {
	p.envelopes = append(p.envelopes, envelope)
	return nil
}

// failingPublisher simulates a channel outage.
type failingPublisher struct {
	attempts int
}

func (p *failingPublisher) Publish(context.Context, events.Envelope) error {
	p.attempts++
	return apperrors.NewChannelError(errors.New("broker unreachable"))
}

func newTestService(repo repository.ReservationRepository, publisher events.Publisher) *ReservationService {
	return NewReservationService(ReservationDependencies{
		ReservationRepo: repo,
		Publisher:       publisher,
		Logger:          zap.NewNop(),
	})
}

func TestCreateReturnsHydratedReservation(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	svc := newTestService(repo, &capturePublisher{})

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID:  1,
		HotelID: 2,
		Date:    "2025-06-01",
	})
	require.NoError(t, err)
	require.True(t, created.Hydrated())
	require.Equal(t, "alice", created.User.Name)
	require.Equal(t, "Seaside", created.Hotel.Name)
	require.Equal(t, domain.ReservationStatusPending, created.Status)

	found, err := svc.FindOne(context.Background(), created.ID)
	require.NoError(t, err)
	require.True(t, found.Hydrated())
	require.Equal(t, int64(1), found.User.ID)
	require.Equal(t, int64(2), found.Hotel.ID)
}

func TestCreateUnknownHotelWritesNothing(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	svc := newTestService(repo, &capturePublisher{})

	_, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID:  1,
		HotelID: 99,
		Date:    "2025-06-01",
	})
	require.True(t, apperrors.IsNotFound(err))
	require.Empty(t, repo.rows)
}

func TestCreateUnparseableDate(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	svc := newTestService(repo, &capturePublisher{})

	_, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID:  1,
		HotelID: 2,
		Date:    "next tuesday",
	})
	require.True(t, apperrors.IsValidation(err))
	require.Empty(t, repo.rows)
}

func TestCreateMissingReferences(t *testing.T) {
	svc := newTestService(newFakeReservationRepo(), &capturePublisher{})

	_, err := svc.Create(context.Background(), ReservationCreateInput{Date: "2025-06-01"})
	require.True(t, apperrors.IsValidation(err))
}

func TestCreatePublishesExactlyOnce(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	publisher := &capturePublisher{}
	svc := newTestService(repo, publisher)

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID:  1,
		HotelID: 2,
		Date:    "2025-06-01T15:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, publisher.envelopes, 1)
	require.Equal(t, events.EventReservationCreated, publisher.envelopes[0].Pattern)

	var payload domain.Reservation
	require.NoError(t, json.Unmarshal(publisher.envelopes[0].Data, &payload))
	require.Equal(t, created.ID, payload.ID)
	require.NotNil(t, payload.User)
	require.NotNil(t, payload.Hotel)
}

func TestMutationsSucceedWhenPublishFails(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	publisher := &failingPublisher{}
	svc := newTestService(repo, publisher)

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID: 1, HotelID: 2, Date: "2025-06-01",
	})
	require.NoError(t, err)

	newDate := "2025-07-01"
	_, err = svc.Update(context.Background(), created.ID, ReservationUpdateInput{Date: &newDate})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), created.ID))
	require.Equal(t, 3, publisher.attempts)
}

func TestMutationsSucceedWithUnconfiguredChannel(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	svc := newTestService(repo, events.NewPublisher(nil, "reservations_queue"))

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID: 1, HotelID: 2, Date: "2025-06-01",
	})
	require.NoError(t, err)
	require.True(t, created.Hydrated())

	notes := "ground floor"
	updated, err := svc.Update(context.Background(), created.ID, ReservationUpdateInput{Notes: &notes})
	require.NoError(t, err)
	require.Equal(t, "ground floor", updated.Notes)

	require.NoError(t, svc.Remove(context.Background(), created.ID))
}

func TestUpdateChangesOnlySuppliedFields(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	svc := newTestService(repo, &capturePublisher{})

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID:  1,
		HotelID: 2,
		Date:    "2025-06-01",
		Notes:   "sea view",
	})
	require.NoError(t, err)

	newDate := "2025-01-01"
	updated, err := svc.Update(context.Background(), created.ID, ReservationUpdateInput{Date: &newDate})
	require.NoError(t, err)

	require.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), updated.Date)
	require.Equal(t, created.UserID, updated.UserID)
	require.Equal(t, created.HotelID, updated.HotelID)
	require.Equal(t, created.Status, updated.Status)
	require.Equal(t, "sea view", updated.Notes)
}

func TestUpdateUnknownReservation(t *testing.T) {
	svc := newTestService(newFakeReservationRepo(), &capturePublisher{})

	status := domain.ReservationStatusConfirmed
	_, err := svc.Update(context.Background(), 42, ReservationUpdateInput{Status: &status})
	require.True(t, apperrors.IsNotFound(err))
}

func TestRemoveThenFindOneNotFound(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	publisher := &capturePublisher{}
	svc := newTestService(repo, publisher)

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID: 1, HotelID: 2, Date: "2025-06-01",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(context.Background(), created.ID))

	_, err = svc.FindOne(context.Background(), created.ID)
	require.True(t, apperrors.IsNotFound(err))

	last := publisher.envelopes[len(publisher.envelopes)-1]
	require.Equal(t, events.EventReservationDeleted, last.Pattern)
	var payload events.ReservationDeletedPayload
	require.NoError(t, json.Unmarshal(last.Data, &payload))
	require.Equal(t, created.ID, payload.ID)
}

func TestRemoveUnknownReservation(t *testing.T) {
	publisher := &capturePublisher{}
	svc := newTestService(newFakeReservationRepo(), publisher)

	err := svc.Remove(context.Background(), 7)
	require.True(t, apperrors.IsNotFound(err))
	require.Empty(t, publisher.envelopes)
}

func TestRemoveLeavesUserAndHotelIntact(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addHotel(2, "Seaside")
	svc := newTestService(repo, &capturePublisher{})

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID: 1, HotelID: 2, Date: "2025-06-01",
	})
	require.NoError(t, err)
	require.NoError(t, svc.Remove(context.Background(), created.ID))

	require.Contains(t, repo.users, int64(1))
	require.Contains(t, repo.hotels, int64(2))
}

// Full lifecycle: create, partial update, remove.
func TestReservationLifecycleScenario(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "u1")
	repo.addHotel(1, "h1")
	publisher := &capturePublisher{}
	svc := newTestService(repo, publisher)

	created, err := svc.Create(context.Background(), ReservationCreateInput{
		UserID:  1,
		HotelID: 1,
		Date:    "2025-06-01",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), created.ID)
	require.Equal(t, int64(1), created.User.ID)
	require.Equal(t, int64(1), created.Hotel.ID)

	newDate := "2025-07-01"
	updated, err := svc.Update(context.Background(), 1, ReservationUpdateInput{Date: &newDate})
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC), updated.Date)
	require.Equal(t, created.UserID, updated.UserID)
	require.Equal(t, created.HotelID, updated.HotelID)

	require.NoError(t, svc.Remove(context.Background(), 1))
	_, err = svc.FindOne(context.Background(), 1)
	require.True(t, apperrors.IsNotFound(err))

	require.Len(t, publisher.envelopes, 3)
	require.Equal(t, events.EventReservationCreated, publisher.envelopes[0].Pattern)
	require.Equal(t, events.EventReservationUpdated, publisher.envelopes[1].Pattern)
	require.Equal(t, events.EventReservationDeleted, publisher.envelopes[2].Pattern)
}

func TestFindAllHydratesEveryRow(t *testing.T) {
	repo := newFakeReservationRepo()
	repo.addUser(1, "alice")
	repo.addUser(2, "bob")
	repo.addHotel(3, "Seaside")
	publisher := &capturePublisher{}
	svc := newTestService(repo, publisher)

	for _, userID := range []int64{1, 2} {
		_, err := svc.Create(context.Background(), ReservationCreateInput{
			UserID: userID, HotelID: 3, Date: "2025-06-01",
		})
		require.NoError(t, err)
	}
	publisher.envelopes = nil

	all, err := svc.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	for _, reservation := range all {
		require.True(t, reservation.Hydrated())
	}
	// reads never publish
	require.Empty(t, publisher.envelopes)
}

func TestNormalizeDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		{"2025-06-01", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), true},
		{"2025-06-01T15:04:05Z", time.Date(2025, 6, 1, 15, 4, 5, 0, time.UTC), true},
		{"2025-06-01T15:04:05+02:00", time.Date(2025, 6, 1, 13, 4, 5, 0, time.UTC), true},
		{"", time.Time{}, false},
		{"06/01/2025", time.Time{}, false},
	}
	for _, tc := range cases {
		got, err := normalizeDate(tc.in)
		if !tc.ok {
			require.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		require.True(t, got.Equal(tc.want), "normalizeDate(%q) = %v", tc.in, got)
	}
}
