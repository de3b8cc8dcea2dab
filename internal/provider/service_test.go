package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	byID   map[string]*Provider
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byID: map[string]*Provider{}}
}

func (f *fakeRepository) Create(_ context.Context, p *Provider) error {
	f.nextID++
	p.ID = string(rune('a' + f.nextID - 1))
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id string) (*Provider, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeRepository) List(_ context.Context, _ Filter) ([]*Provider, int, error) {
	var out []*Provider
	for _, p := range f.byID {
		out = append(out, p)
	}
	return out, len(out), nil
}

func (f *fakeRepository) ListActive(_ context.Context) ([]*Provider, error) {
	var out []*Provider
	for _, p := range f.byID {
		if p.Status == StatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeRepository) Update(_ context.Context, p *Provider) error {
	if _, ok := f.byID[p.ID]; !ok {
		return ErrNotFound
	}
	cp := *p
	f.byID[p.ID] = &cp
	return nil
}

func (f *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func TestServiceCreate(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateRequest{
		DisplayName: "  Ustadh Kareem ",
		Gender:      "male",
		Timezone:    "Asia/Dubai",
		Availability: map[string][]string{
			"sunday": {"10:00", "09:00", "09:00:00"},
		},
	})
	require.NoError(t, err)
	require.Equal(t, "Ustadh Kareem", p.DisplayName)
	require.Equal(t, StatusActive, p.Status)
	// Duplicates collapse and times sort ascending on save.
	require.Equal(t, []schedule.TimeOfDay{{Hour: 9}, {Hour: 10}}, p.Availability[schedule.Sunday])
}

func TestServiceCreateValidation(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	tests := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{
			name:    "empty name",
			req:     CreateRequest{DisplayName: "  ", Gender: "male", Timezone: "UTC"},
			wantErr: ErrEmptyName,
		},
		{
			name:    "bad gender",
			req:     CreateRequest{DisplayName: "A", Gender: "other", Timezone: "UTC"},
			wantErr: ErrInvalidGender,
		},
		{
			name:    "bad age group",
			req:     CreateRequest{DisplayName: "A", Gender: "male", AgeGroup: "teen", Timezone: "UTC"},
			wantErr: ErrInvalidAgeGroup,
		},
		{
			name:    "unknown timezone rejected on save",
			req:     CreateRequest{DisplayName: "A", Gender: "male", Timezone: "Not/AZone"},
			wantErr: ErrInvalidTimezone,
		},
		{
			name: "malformed availability time",
			req: CreateRequest{
				DisplayName: "A", Gender: "male", Timezone: "UTC",
				Availability: map[string][]string{"sunday": {"9am"}},
			},
			wantErr: ErrInvalidAvailability,
		},
		{
			name: "off-hour availability time",
			req: CreateRequest{
				DisplayName: "A", Gender: "male", Timezone: "UTC",
				Availability: map[string][]string{"sunday": {"09:30"}},
			},
			wantErr: ErrInvalidAvailability,
		},
		{
			name: "unknown day key",
			req: CreateRequest{
				DisplayName: "A", Gender: "male", Timezone: "UTC",
				Availability: map[string][]string{"Sunday": {"09:00"}},
			},
			wantErr: ErrInvalidAvailability,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tt.req)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestServiceUpdate(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateRequest{
		DisplayName: "A", Gender: "female", Timezone: "UTC",
		Availability: map[string][]string{"monday": {"08:00"}},
	})
	require.NoError(t, err)

	inactive := string(StatusInactive)
	badZone := "Nowhere/Nope"

	_, err = svc.Update(ctx, p.ID, UpdateRequest{Timezone: &badZone})
	require.ErrorIs(t, err, ErrInvalidTimezone)

	updated, err := svc.Update(ctx, p.ID, UpdateRequest{
		Status:       &inactive,
		Availability: map[string][]string{"tuesday": {"11:00"}},
	})
	require.NoError(t, err)
	require.Equal(t, StatusInactive, updated.Status)
	require.Empty(t, updated.Availability[schedule.Monday])
	require.Len(t, updated.Availability[schedule.Tuesday], 1)

	// Inactive provider no longer contributes to aggregation.
	require.False(t, updated.Contributor().Active)
}

func TestServiceUpdateNotFound(t *testing.T) {
	svc := NewService(newFakeRepository())
	name := "B"
	_, err := svc.Update(context.Background(), "missing", UpdateRequest{DisplayName: &name})
	require.ErrorIs(t, err, ErrNotFound)
}
