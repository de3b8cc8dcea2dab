package booking

import (
	"context"
	"time"

	"github.com/tutorhive/tutor-booking-backend/internal/provider"
	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

type CreateRequest struct {
	CustomerName   string
	CustomerEmail  string
	CustomerGender string
	CustomerAge    int
	Timezone       string
	Slots          []SelectedSlot
	// AllOrNothing rejects the whole checkout when any selected slot has
	// gone stale. The default is partial acceptance: book what survived
	// and report the rest.
	AllOrNothing bool
}

// CreateResult carries the created booking plus the slots that were dropped
// because they no longer exist in live availability.
type CreateResult struct {
	Booking  *Booking
	Rejected []SelectedSlot
}

type UpdateRequest struct {
	ProviderID  *string // assign or reassign; empty string clears
	Status      *string
	RenewalDate *time.Time
	Slots       []SelectedSlot // nil means leave unchanged
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*CreateResult, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo            Repository
	providerService provider.Service
	childAgeLimit   int
}

func NewService(repo Repository, providerService provider.Service, childAgeLimit int) Service {
	return &service{
		repo:            repo,
		providerService: providerService,
		childAgeLimit:   childAgeLimit,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*CreateResult, error) {
	gender := schedule.Gender(req.CustomerGender)
	if !gender.IsValid() {
		return nil, ErrInvalidGender
	}
	if req.CustomerAge < 1 || req.CustomerAge > 120 {
		return nil, ErrInvalidAge
	}
	if len(req.Slots) == 0 {
		return nil, ErrNoSlotsSelected
	}

	// Availability can change between the customer loading the schedule
	// and submitting the form, so the selection is re-validated against a
	// fresh aggregation, never a cached one.
	live, err := s.liveAvailability(ctx, schedule.Audience{
		Gender:   gender,
		AgeGroup: s.audienceAgeGroup(req.CustomerAge),
	})
	if err != nil {
		return nil, err
	}

	var rejected []SelectedSlot
	refs := make([]schedule.SlotRef, 0, len(req.Slots))
	parseable := make([]SelectedSlot, 0, len(req.Slots))
	for _, slot := range req.Slots {
		ref, ok := slot.Ref()
		if !ok {
			rejected = append(rejected, slot)
			continue
		}
		refs = append(refs, ref)
		parseable = append(parseable, slot)
	}

	result := schedule.ValidateSelection(refs, live)

	// The validator preserves input order within each partition, so walk
	// the accepted refs alongside the payloads they came from.
	var accepted []SelectedSlot
	ai := 0
	for i, ref := range refs {
		if ai < len(result.Accepted) && result.Accepted[ai] == ref {
			slot := parseable[i]
			// Persist the canonical UTC identity; display fields ride
			// along as a record of what the customer saw.
			slot.Day = ref.Day.String()
			slot.Time = ref.Time.Storage()
			accepted = append(accepted, slot)
			ai++
		} else {
			rejected = append(rejected, parseable[i])
		}
	}

	if len(accepted) == 0 {
		return nil, ErrSelectionTaken
	}
	if req.AllOrNothing && len(rejected) > 0 {
		return nil, ErrSelectionTaken
	}

	tz := req.Timezone
	if !schedule.IsValidZone(tz) {
		tz = "UTC"
	}

	b := &Booking{
		CustomerName:   req.CustomerName,
		CustomerEmail:  req.CustomerEmail,
		CustomerGender: gender,
		CustomerAge:    req.CustomerAge,
		Slots:          accepted,
		Timezone:       tz,
		BookingDate:    time.Now().UTC(),
		Status:         StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return &CreateResult{Booking: b, Rejected: rejected}, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ProviderID != nil {
		if *req.ProviderID == "" {
			b.ProviderID = nil
			b.ProviderName = ""
		} else {
			p, err := s.providerService.GetByID(ctx, *req.ProviderID)
			if err != nil {
				return nil, ErrProviderNotFound
			}
			b.ProviderID = &p.ID
			b.ProviderName = p.DisplayName
		}
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if !st.IsValid() {
			return nil, ErrInvalidStatus
		}
		b.Status = st
	}

	if req.RenewalDate != nil {
		b.RenewalDate = req.RenewalDate
	}

	// Admin slot edits replace the stored record as-is: bookings are
	// historical data and are not re-validated against live availability.
	if req.Slots != nil {
		for _, slot := range req.Slots {
			if _, ok := slot.Ref(); !ok {
				return nil, ErrNoSlotsSelected
			}
		}
		b.Slots = req.Slots
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// audienceAgeGroup maps the customer's age onto the audience age category.
func (s *service) audienceAgeGroup(age int) schedule.AgeGroup {
	if age < s.childAgeLimit {
		return schedule.AgeGroupChild
	}
	return schedule.AgeGroupAdult
}

func (s *service) liveAvailability(ctx context.Context, audience schedule.Audience) (schedule.Weekly, error) {
	providers, err := s.providerService.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	contributors := make([]schedule.Contributor, len(providers))
	for i, p := range providers {
		contributors[i] = p.Contributor()
	}

	return schedule.Aggregate(contributors, audience), nil
}
