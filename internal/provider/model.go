package provider

import (
	"net/http"
	"time"

	"github.com/tutorhive/tutor-booking-backend/internal/pkg/apperror"
	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "provider not found")
	ErrEmptyName           = apperror.New(http.StatusBadRequest, "display name cannot be empty")
	ErrInvalidGender       = apperror.New(http.StatusBadRequest, "gender must be male or female")
	ErrInvalidAgeGroup     = apperror.New(http.StatusBadRequest, "age group must be adult or child")
	ErrInvalidStatus       = apperror.New(http.StatusBadRequest, "status must be active or inactive")
	ErrInvalidTimezone     = apperror.New(http.StatusBadRequest, "timezone is not a valid IANA zone name")
	ErrInvalidAvailability = apperror.New(http.StatusBadRequest, "availability contains an invalid day or time")
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Provider is a teacher/instructor customers can be matched with.
// Availability is stored in UTC at hourly resolution; the provider's own
// timezone is kept for admin display only.
type Provider struct {
	ID           string
	DisplayName  string
	Gender       schedule.Gender
	AgeGroup     schedule.AgeGroup // optional; empty serves any audience age
	Status       Status
	Timezone     string
	Availability schedule.Weekly
	PhotoFileID  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Contributor adapts the provider for the availability aggregator.
func (p *Provider) Contributor() schedule.Contributor {
	return schedule.Contributor{
		Gender:   p.Gender,
		AgeGroup: p.AgeGroup,
		Active:   p.Status == StatusActive,
		Slots:    p.Availability,
	}
}

// Filter defines parameters for listing providers.
type Filter struct {
	Gender    string
	AgeGroup  string
	Status    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
