package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	bookings map[string]*Booking

	created     []*Booking
	updated     []*Booking
	listOptions []ListOptions
}

func newFakeRepository(bookings ...*Booking) *fakeRepository {
	m := make(map[string]*Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeRepository{bookings: m}
}

func (r *fakeRepository) Create(_ context.Context, b *Booking) error {
	b.ID = "generated-id"
	b.CreatedAt = time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	b.UpdatedAt = b.CreatedAt
	r.created = append(r.created, b)
	r.bookings[b.ID] = b
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepository) List(_ context.Context, opts ListOptions) ([]*Booking, error) {
	if _, err := BuildListQuery(opts); err != nil {
		return nil, err
	}
	r.listOptions = append(r.listOptions, opts)
	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	return out, nil
}

func (r *fakeRepository) Update(_ context.Context, b *Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	r.updated = append(r.updated, b)
	r.bookings[b.ID] = b
	return nil
}

var (
	testNow   = time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	owner     = Actor{ID: "owner-uid", Email: "owner@example.com", Role: "user"}
	stranger  = Actor{ID: "stranger-uid", Email: "stranger@example.com", Role: "user"}
	adminUser = Actor{ID: "admin-uid", Email: "admin@example.com", Role: "admin"}
)

func newTestService(repo Repository, recheckPast bool) Service {
	return NewService(repo, Config{
		RecheckPastOnEdit: recheckPast,
		Now:               func() time.Time { return testNow },
	})
}

func existingBooking() *Booking {
	return &Booking{
		ID:        "b1",
		Title:     "Weekly sync",
		StartAt:   time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
		EndAt:     time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
		StartTime: "09:00",
		EndTime:   "10:00",
		CreatedBy: owner.ID,
		Status:    StatusScheduled,
	}
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, false)

	b, err := svc.Create(context.Background(), owner, CreateRequest{
		Title:        "  Planning  ",
		Description:  "Q3 planning",
		Date:         "2025-06-02",
		StartTime:    "09:00",
		EndTime:      "10:30",
		Participants: "anna@example.com, , jan@example.com ,",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	assert.Equal(t, "Planning", b.Title)
	assert.Equal(t, StatusScheduled, b.Status)
	assert.Equal(t, owner.ID, b.CreatedBy)
	assert.Equal(t, time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC), b.StartAt)
	assert.Equal(t, time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC), b.EndAt)
	assert.Equal(t, []string{"anna@example.com", "jan@example.com"}, b.Participants)
	assert.Nil(t, b.LastEditedByAdmin)
}

func TestCreateBookingRejections(t *testing.T) {
	cases := []struct {
		name    string
		actor   Actor
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "end before start",
			actor:   owner,
			req:     CreateRequest{Title: "t", Date: "2025-06-01", StartTime: "09:00", EndTime: "08:00"},
			wantErr: ErrEndNotAfterStart,
		},
		{
			name:    "start in the past",
			actor:   owner,
			req:     CreateRequest{Title: "t", Date: "2025-05-30", StartTime: "09:00", EndTime: "10:00"},
			wantErr: ErrStartTimePast,
		},
		{
			name:    "missing title",
			actor:   owner,
			req:     CreateRequest{Title: "   ", Date: "2025-06-02", StartTime: "09:00", EndTime: "10:00"},
			wantErr: ErrTitleRequired,
		},
		{
			name:    "unauthenticated",
			actor:   Actor{},
			req:     CreateRequest{Title: "t", Date: "2025-06-02", StartTime: "09:00", EndTime: "10:00"},
			wantErr: ErrPermissionDenied,
		},
		{
			name:    "bad date format",
			actor:   owner,
			req:     CreateRequest{Title: "t", Date: "junk", StartTime: "09:00", EndTime: "10:00"},
			wantErr: ErrInvalidDateTime,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepository()
			svc := newTestService(repo, false)

			_, err := svc.Create(context.Background(), tc.actor, tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
			// Validation failures never reach persistence.
			assert.Empty(t, repo.created)
		})
	}
}

func TestGetByIDAuthorization(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	_, err := svc.GetByID(context.Background(), owner, "b1")
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), adminUser, "b1")
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), stranger, "b1")
	assert.ErrorIs(t, err, ErrPermissionDenied)

	_, err = svc.GetByID(context.Background(), owner, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateBookingByOwner(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	b, err := svc.Update(context.Background(), owner, "b1", UpdateRequest{
		Title:     "Weekly sync (moved)",
		Date:      "2025-06-11",
		StartTime: "10:00",
		EndTime:   "11:00",
	})
	require.NoError(t, err)
	require.Len(t, repo.updated, 1)

	assert.Equal(t, "Weekly sync (moved)", b.Title)
	assert.Equal(t, StatusScheduled, b.Status)
	assert.Equal(t, owner.ID, b.CreatedBy)
	assert.Nil(t, b.LastEditedByAdmin)
}

func TestUpdateBookingForbiddenForStranger(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	_, err := svc.Update(context.Background(), stranger, "b1", UpdateRequest{
		Title: "hijack", Date: "2025-06-11", StartTime: "10:00", EndTime: "11:00",
	})
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, repo.updated)
}

func TestUpdateBookingByAdminStampsAttribution(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	b, err := svc.Update(context.Background(), adminUser, "b1", UpdateRequest{
		Title: "Weekly sync", Date: "2025-06-11", StartTime: "10:00", EndTime: "11:00",
	})
	require.NoError(t, err)

	require.NotNil(t, b.LastEditedByAdmin)
	assert.Equal(t, adminUser.ID, *b.LastEditedByAdmin)
	assert.Equal(t, owner.ID, b.CreatedBy)
}

func TestUpdateBookingPastDatePolicy(t *testing.T) {
	// Default: editing onto a past date is allowed (historical behavior).
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	_, err := svc.Update(context.Background(), owner, "b1", UpdateRequest{
		Title: "Weekly sync", Date: "2025-05-01", StartTime: "09:00", EndTime: "10:00",
	})
	assert.NoError(t, err)

	// With the re-check enabled, the same edit is rejected.
	repo = newFakeRepository(existingBooking())
	svc = newTestService(repo, true)

	_, err = svc.Update(context.Background(), owner, "b1", UpdateRequest{
		Title: "Weekly sync", Date: "2025-05-01", StartTime: "09:00", EndTime: "10:00",
	})
	assert.ErrorIs(t, err, ErrStartTimePast)
	assert.Empty(t, repo.updated)
}

func TestUpdateBookingNotFound(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo, false)

	_, err := svc.Update(context.Background(), owner, "missing", UpdateRequest{
		Title: "t", Date: "2025-06-11", StartTime: "10:00", EndTime: "11:00",
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelBooking(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	require.NoError(t, svc.Cancel(context.Background(), owner, "b1"))
	require.Len(t, repo.updated, 1)

	assert.Equal(t, StatusCanceled, repo.updated[0].Status)
	assert.Nil(t, repo.updated[0].LastModifiedByAdmin)
}

func TestCancelBookingByAdminStampsAttribution(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	require.NoError(t, svc.Cancel(context.Background(), adminUser, "b1"))
	require.Len(t, repo.updated, 1)

	require.NotNil(t, repo.updated[0].LastModifiedByAdmin)
	assert.Equal(t, adminUser.ID, *repo.updated[0].LastModifiedByAdmin)
}

func TestCancelAlreadyCanceled(t *testing.T) {
	canceled := existingBooking()
	canceled.Status = StatusCanceled
	repo := newFakeRepository(canceled)
	svc := newTestService(repo, false)

	err := svc.Cancel(context.Background(), owner, "b1")
	assert.ErrorIs(t, err, ErrAlreadyCanceled)
	// The terminal state is never rewritten.
	assert.Empty(t, repo.updated)
}

func TestCancelForbidden(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	err := svc.Cancel(context.Background(), stranger, "b1")
	assert.ErrorIs(t, err, ErrPermissionDenied)
	assert.Empty(t, repo.updated)
}

func TestCalendarScopesToActorAndScheduled(t *testing.T) {
	repo := newFakeRepository(existingBooking())
	svc := newTestService(repo, false)

	_, err := svc.Calendar(context.Background(), owner, "2025-06-01", "2025-06-30")
	require.NoError(t, err)
	require.Len(t, repo.listOptions, 1)

	opts := repo.listOptions[0]
	assert.Equal(t, owner.ID, opts.OwnerID)
	assert.Equal(t, string(StatusScheduled), opts.Status)
	assert.Equal(t, "2025-06-01", opts.DateFrom)
	assert.Equal(t, "2025-06-30", opts.DateTo)

	_, err = svc.Calendar(context.Background(), Actor{}, "", "")
	assert.ErrorIs(t, err, ErrPermissionDenied)
}

func TestParseParticipants(t *testing.T) {
	assert.Equal(t, []string{}, ParseParticipants(""))
	assert.Equal(t, []string{}, ParseParticipants("  ,  , "))
	assert.Equal(t,
		[]string{"jan@example.com", "anna@example.com"},
		ParseParticipants(" jan@example.com ,anna@example.com,"))
}
