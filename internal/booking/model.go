package booking

import (
	"net/http"
	"time"

	"github.com/tutorhive/tutor-booking-backend/internal/pkg/apperror"
	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrInvalidGender    = apperror.New(http.StatusBadRequest, "gender must be male or female")
	ErrInvalidAge       = apperror.New(http.StatusBadRequest, "age must be between 1 and 120")
	ErrNoSlotsSelected  = apperror.New(http.StatusBadRequest, "at least one slot must be selected")
	ErrSelectionTaken   = apperror.New(http.StatusConflict, "selected slots are no longer available")
	ErrProviderNotFound = apperror.New(http.StatusNotFound, "provider not found")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// IsValid reports whether s is a known booking status.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// SelectedSlot is one booked weekly slot as persisted with the booking.
// Day and Time carry the immutable UTC identity; DisplayTime and Timezone
// record what the customer saw at checkout and are never authoritative.
type SelectedSlot struct {
	Day         string `json:"day"`
	Time        string `json:"time"`
	DisplayTime string `json:"display_time,omitempty"`
	Timezone    string `json:"timezone,omitempty"`
}

// Ref extracts the slot's UTC identity. ok is false when the stored value
// does not parse.
func (s SelectedSlot) Ref() (schedule.SlotRef, bool) {
	day, err := schedule.ParseDay(s.Day)
	if err != nil {
		return schedule.SlotRef{}, false
	}
	t, err := schedule.ParseTimeOfDay(s.Time)
	if err != nil {
		return schedule.SlotRef{}, false
	}
	return schedule.SlotRef{Day: day, Time: t}, true
}

// Booking is a checkout record. Its slots are frozen at creation time and
// never re-derived from live availability, even if providers change theirs
// afterwards; only admin edits mutate it.
type Booking struct {
	ID             string
	ProviderID     *string // unassigned until an admin picks a provider
	ProviderName   string
	CustomerName   string
	CustomerEmail  string
	CustomerGender schedule.Gender
	CustomerAge    int
	Slots          []SelectedSlot
	Timezone       string // customer's display timezone at booking time
	BookingDate    time.Time
	RenewalDate    *time.Time
	Status         Status
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ProviderID string
	Status     string
	Gender     string
	Page       int
	PageSize   int
	SortBy     string
	SortOrder  string
}
