package provider

import (
	"context"
	"strings"

	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

type CreateRequest struct {
	DisplayName  string
	Gender       string
	AgeGroup     string
	Timezone     string
	Availability map[string][]string // day name -> UTC "HH:MM[:SS]" values
}

type UpdateRequest struct {
	DisplayName  *string
	Gender       *string
	AgeGroup     *string
	Status       *string
	Timezone     *string
	Availability map[string][]string // nil means leave unchanged
	PhotoFileID  *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Provider, error)
	GetByID(ctx context.Context, id string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	// ListActive returns every active provider with availability parsed,
	// for aggregation. Always a fresh read; results are never cached.
	ListActive(ctx context.Context) ([]*Provider, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Provider, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Provider, error) {
	if strings.TrimSpace(req.DisplayName) == "" {
		return nil, ErrEmptyName
	}

	gender := schedule.Gender(req.Gender)
	if !gender.IsValid() {
		return nil, ErrInvalidGender
	}

	ageGroup := schedule.AgeGroup(req.AgeGroup)
	if req.AgeGroup != "" && !ageGroup.IsValid() {
		return nil, ErrInvalidAgeGroup
	}

	// Admin input is rejected, never silently degraded: a provider must be
	// saved with a resolvable zone even though display paths tolerate bad
	// ones.
	if !schedule.IsValidZone(req.Timezone) {
		return nil, ErrInvalidTimezone
	}

	weekly, err := parseAvailabilityStrict(req.Availability)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		DisplayName:  strings.TrimSpace(req.DisplayName),
		Gender:       gender,
		AgeGroup:     ageGroup,
		Status:       StatusActive,
		Timezone:     req.Timezone,
		Availability: weekly,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Provider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) ListActive(ctx context.Context) ([]*Provider, error) {
	return s.repo.ListActive(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Provider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		if strings.TrimSpace(*req.DisplayName) == "" {
			return nil, ErrEmptyName
		}
		p.DisplayName = strings.TrimSpace(*req.DisplayName)
	}

	if req.Gender != nil {
		gender := schedule.Gender(*req.Gender)
		if !gender.IsValid() {
			return nil, ErrInvalidGender
		}
		p.Gender = gender
	}

	if req.AgeGroup != nil {
		ageGroup := schedule.AgeGroup(*req.AgeGroup)
		if *req.AgeGroup != "" && !ageGroup.IsValid() {
			return nil, ErrInvalidAgeGroup
		}
		p.AgeGroup = ageGroup
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusActive && st != StatusInactive {
			return nil, ErrInvalidStatus
		}
		p.Status = st
	}

	if req.Timezone != nil {
		if !schedule.IsValidZone(*req.Timezone) {
			return nil, ErrInvalidTimezone
		}
		p.Timezone = *req.Timezone
	}

	if req.Availability != nil {
		weekly, err := parseAvailabilityStrict(req.Availability)
		if err != nil {
			return nil, err
		}
		p.Availability = weekly
	}

	if req.PhotoFileID != nil {
		p.PhotoFileID = req.PhotoFileID
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// parseAvailabilityStrict validates admin-submitted availability. Unlike the
// tolerant read path, any unknown day, malformed time, or off-hour time is
// an error: bad data is refused at the door rather than stored and dropped
// later.
func parseAvailabilityStrict(in map[string][]string) (schedule.Weekly, error) {
	weekly := schedule.Weekly{}
	for dayName, times := range in {
		day, err := schedule.ParseDay(dayName)
		if err != nil {
			return nil, ErrInvalidAvailability
		}
		for _, s := range times {
			t, err := schedule.ParseTimeOfDay(s)
			if err != nil || !t.OnHour() {
				return nil, ErrInvalidAvailability
			}
			weekly[day] = append(weekly[day], t)
		}
	}

	weekly.Normalize()
	return weekly, nil
}
