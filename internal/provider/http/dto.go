package http

import (
	"time"

	"github.com/tutorhive/tutor-booking-backend/internal/provider"
)

// ProviderTag holds minimal provider info for embedding in other responses.
type ProviderTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProviderResponse struct {
	ID           string              `json:"id"`
	DisplayName  string              `json:"display_name"`
	Gender       string              `json:"gender"`
	AgeGroup     string              `json:"age_group,omitempty"`
	Status       string              `json:"status"`
	Timezone     string              `json:"timezone"`
	Availability map[string][]string `json:"availability"`
	PhotoFileID  *string             `json:"photo_file_id,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

func NewProviderResponse(p *provider.Provider) ProviderResponse {
	availability := make(map[string][]string, len(p.Availability))
	for day, times := range p.Availability {
		strs := make([]string, len(times))
		for i, t := range times {
			strs[i] = t.Storage()
		}
		availability[day.String()] = strs
	}

	return ProviderResponse{
		ID:           p.ID,
		DisplayName:  p.DisplayName,
		Gender:       string(p.Gender),
		AgeGroup:     string(p.AgeGroup),
		Status:       string(p.Status),
		Timezone:     p.Timezone,
		Availability: availability,
		PhotoFileID:  p.PhotoFileID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type CreateProviderRequest struct {
	DisplayName  string              `json:"display_name" binding:"required"`
	Gender       string              `json:"gender" binding:"required,oneof=male female"`
	AgeGroup     string              `json:"age_group" binding:"omitempty,oneof=adult child"`
	Timezone     string              `json:"timezone" binding:"required"`
	Availability map[string][]string `json:"availability"`
}

type UpdateProviderRequest struct {
	DisplayName  *string             `json:"display_name"`
	Gender       *string             `json:"gender" binding:"omitempty,oneof=male female"`
	AgeGroup     *string             `json:"age_group" binding:"omitempty,oneof=adult child"`
	Status       *string             `json:"status" binding:"omitempty,oneof=active inactive"`
	Timezone     *string             `json:"timezone"`
	Availability map[string][]string `json:"availability"`
	PhotoFileID  *string             `json:"photo_file_id" binding:"omitempty,uuid"`
}

// ListProvidersRequest defines query parameters for listing providers.
type ListProvidersRequest struct {
	Gender    string `form:"gender" binding:"omitempty,oneof=male female"`
	AgeGroup  string `form:"age_group" binding:"omitempty,oneof=adult child"`
	Status    string `form:"status" binding:"omitempty,oneof=active inactive"`
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=display_name created_at status"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=ASC DESC asc desc"`
}
