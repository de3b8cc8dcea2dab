package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tutorhive/tutor-booking-backend/internal/provider"
	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

// fakeRepository is an in-memory booking Repository.
type fakeRepository struct {
	byID   map[string]*Booking
	nextID int
	failed bool // simulate storage being unreachable
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*Booking{}}
}

var errStorageDown = context.DeadlineExceeded

func (f *fakeRepository) Create(_ context.Context, b *Booking) error {
	if f.failed {
		return errStorageDown
	}
	f.nextID++
	b.ID = string(rune('a' + f.nextID - 1))
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.byID[b.ID] = &cp
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepository) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.byID {
		out = append(out, b)
	}
	return out, len(out), nil
}

func (f *fakeRepository) Update(_ context.Context, b *Booking) error {
	if _, ok := f.byID[b.ID]; !ok {
		return ErrNotFound
	}
	cp := *b
	f.byID[b.ID] = &cp
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

// fakeProviderService serves a fixed provider set.
type fakeProviderService struct {
	providers []*provider.Provider
	err       error
}

func (f *fakeProviderService) ListActive(_ context.Context) ([]*provider.Provider, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*provider.Provider
	for _, p := range f.providers {
		if p.Status == provider.StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProviderService) GetByID(_ context.Context, id string) (*provider.Provider, error) {
	for _, p := range f.providers {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, provider.ErrNotFound
}

func (f *fakeProviderService) Create(context.Context, provider.CreateRequest) (*provider.Provider, error) {
	panic("not used")
}

func (f *fakeProviderService) List(context.Context, provider.Filter) ([]*provider.Provider, int, error) {
	panic("not used")
}

func (f *fakeProviderService) Update(context.Context, string, provider.UpdateRequest) (*provider.Provider, error) {
	panic("not used")
}

func (f *fakeProviderService) Delete(context.Context, string) error {
	panic("not used")
}

func testProviders() *fakeProviderService {
	return &fakeProviderService{providers: []*provider.Provider{
		{
			ID: "p1", DisplayName: "Teacher One",
			Gender: schedule.GenderMale, Status: provider.StatusActive,
			Availability: schedule.Weekly{
				schedule.Sunday: {{Hour: 9}, {Hour: 10}},
			},
		},
		{
			ID: "p2", DisplayName: "Teacher Two",
			Gender: schedule.GenderFemale, AgeGroup: schedule.AgeGroupAdult,
			Status: provider.StatusActive,
			Availability: schedule.Weekly{
				schedule.Monday: {{Hour: 14}},
			},
		},
		{
			ID: "p3", DisplayName: "Inactive",
			Gender: schedule.GenderMale, Status: provider.StatusInactive,
			Availability: schedule.Weekly{
				schedule.Saturday: {{Hour: 8}},
			},
		},
	}}
}

func newTestService(repo Repository) Service {
	return NewService(repo, testProviders(), 18)
}

func TestCreatePartialAcceptance(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)

	result, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Ali",
		CustomerEmail:  "ali@example.com",
		CustomerGender: "male",
		CustomerAge:    30,
		Timezone:       "Asia/Dubai",
		Slots: []SelectedSlot{
			{Day: "sunday", Time: "09:00", DisplayTime: "13:00", Timezone: "Asia/Dubai"},
			{Day: "sunday", Time: "11:00"}, // not offered by anyone
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Booking.Slots, 1)
	require.Len(t, result.Rejected, 1)
	require.Equal(t, "11:00", result.Rejected[0].Time)

	kept := result.Booking.Slots[0]
	// UTC identity is normalized for storage; display fields are kept as
	// the customer submitted them.
	require.Equal(t, "sunday", kept.Day)
	require.Equal(t, "09:00:00", kept.Time)
	require.Equal(t, "13:00", kept.DisplayTime)

	require.Equal(t, StatusPending, result.Booking.Status)
	require.Nil(t, result.Booking.ProviderID)
	require.Equal(t, "Asia/Dubai", result.Booking.Timezone)
}

func TestCreateAllOrNothing(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Ali",
		CustomerEmail:  "ali@example.com",
		CustomerGender: "male",
		CustomerAge:    30,
		Slots: []SelectedSlot{
			{Day: "sunday", Time: "09:00"},
			{Day: "sunday", Time: "11:00"},
		},
		AllOrNothing: true,
	})
	require.ErrorIs(t, err, ErrSelectionTaken)
}

func TestCreateNothingSurvives(t *testing.T) {
	svc := newTestService(newFakeRepository())

	_, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Ali",
		CustomerEmail:  "ali@example.com",
		CustomerGender: "male",
		CustomerAge:    30,
		Slots: []SelectedSlot{
			{Day: "saturday", Time: "08:00"}, // only the inactive provider has this
			{Day: "funday", Time: "oops"},
		},
	})
	require.ErrorIs(t, err, ErrSelectionTaken)
}

func TestCreateAudienceMatching(t *testing.T) {
	svc := newTestService(newFakeRepository())

	// Monday 14:00 belongs to the adults-only female provider; a child
	// customer cannot book it.
	_, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Sara",
		CustomerEmail:  "sara@example.com",
		CustomerGender: "female",
		CustomerAge:    10,
		Slots:          []SelectedSlot{{Day: "monday", Time: "14:00"}},
	})
	require.ErrorIs(t, err, ErrSelectionTaken)

	// An adult customer can.
	result, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Sara",
		CustomerEmail:  "sara@example.com",
		CustomerGender: "female",
		CustomerAge:    25,
		Slots:          []SelectedSlot{{Day: "monday", Time: "14:00"}},
	})
	require.NoError(t, err)
	require.Len(t, result.Booking.Slots, 1)
}

func TestCreateInputValidation(t *testing.T) {
	svc := newTestService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{CustomerGender: "other", CustomerAge: 30,
		Slots: []SelectedSlot{{Day: "sunday", Time: "09:00"}}})
	require.ErrorIs(t, err, ErrInvalidGender)

	_, err = svc.Create(ctx, CreateRequest{CustomerGender: "male", CustomerAge: 0,
		Slots: []SelectedSlot{{Day: "sunday", Time: "09:00"}}})
	require.ErrorIs(t, err, ErrInvalidAge)

	_, err = svc.Create(ctx, CreateRequest{CustomerGender: "male", CustomerAge: 30})
	require.ErrorIs(t, err, ErrNoSlotsSelected)
}

func TestCreateUnknownTimezoneFallsBackToUTC(t *testing.T) {
	svc := newTestService(newFakeRepository())

	result, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Ali",
		CustomerEmail:  "ali@example.com",
		CustomerGender: "male",
		CustomerAge:    30,
		Timezone:       "Not/AZone",
		Slots:          []SelectedSlot{{Day: "sunday", Time: "09:00"}},
	})
	require.NoError(t, err)
	require.Equal(t, "UTC", result.Booking.Timezone)
}

func TestCreateStorageFailureIsFatal(t *testing.T) {
	repo := newFakeRepository()
	repo.failed = true
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), CreateRequest{
		CustomerName:   "Ali",
		CustomerEmail:  "ali@example.com",
		CustomerGender: "male",
		CustomerAge:    30,
		Slots:          []SelectedSlot{{Day: "sunday", Time: "09:00"}},
	})
	require.ErrorIs(t, err, errStorageDown)
}

func TestUpdateAdminEdits(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	ctx := context.Background()

	result, err := svc.Create(ctx, CreateRequest{
		CustomerName:   "Ali",
		CustomerEmail:  "ali@example.com",
		CustomerGender: "male",
		CustomerAge:    30,
		Slots:          []SelectedSlot{{Day: "sunday", Time: "09:00"}},
	})
	require.NoError(t, err)
	id := result.Booking.ID

	providerID := "p1"
	approved := string(StatusApproved)
	renewal := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	b, err := svc.Update(ctx, id, UpdateRequest{
		ProviderID:  &providerID,
		Status:      &approved,
		RenewalDate: &renewal,
	})
	require.NoError(t, err)
	require.Equal(t, "p1", *b.ProviderID)
	require.Equal(t, "Teacher One", b.ProviderName)
	require.Equal(t, StatusApproved, b.Status)
	require.Equal(t, renewal, *b.RenewalDate)

	// Slot edits are stored as-is, without re-validation against live
	// availability: the record is historical.
	b, err = svc.Update(ctx, id, UpdateRequest{
		Slots: []SelectedSlot{{Day: "friday", Time: "23:00"}},
	})
	require.NoError(t, err)
	require.Equal(t, "friday", b.Slots[0].Day)

	missing := "nope"
	_, err = svc.Update(ctx, id, UpdateRequest{ProviderID: &missing})
	require.ErrorIs(t, err, ErrProviderNotFound)

	bad := "rescheduled"
	_, err = svc.Update(ctx, id, UpdateRequest{Status: &bad})
	require.ErrorIs(t, err, ErrInvalidStatus)
}
