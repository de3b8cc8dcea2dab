package http

import (
	"time"

	"github.com/tutorhive/tutor-booking-backend/internal/booking"
)

// SlotPayload mirrors the checkout wire format for one selected slot.
// day + time (UTC) are the identity; display_time and timezone are
// presentation only.
type SlotPayload struct {
	Day         string `json:"day" binding:"required"`
	Time        string `json:"time" binding:"required"`
	DisplayTime string `json:"display_time"`
	Timezone    string `json:"timezone"`
}

func (p SlotPayload) toModel() booking.SelectedSlot {
	return booking.SelectedSlot{
		Day:         p.Day,
		Time:        p.Time,
		DisplayTime: p.DisplayTime,
		Timezone:    p.Timezone,
	}
}

func newSlotPayload(s booking.SelectedSlot) SlotPayload {
	return SlotPayload{
		Day:         s.Day,
		Time:        s.Time,
		DisplayTime: s.DisplayTime,
		Timezone:    s.Timezone,
	}
}

type CreateBookingRequest struct {
	CustomerName   string        `json:"customer_name" binding:"required"`
	CustomerEmail  string        `json:"customer_email" binding:"required,email"`
	CustomerGender string        `json:"customer_gender" binding:"required,oneof=male female"`
	CustomerAge    int           `json:"customer_age" binding:"required,min=1,max=120"`
	Timezone       string        `json:"timezone"`
	Slots          []SlotPayload `json:"slots" binding:"required,min=1,dive"`
	AllOrNothing   bool          `json:"all_or_nothing"`
}

type UpdateBookingRequest struct {
	ProviderID  *string       `json:"provider_id"`
	Status      *string       `json:"status" binding:"omitempty,oneof=pending approved completed cancelled"`
	RenewalDate *time.Time    `json:"renewal_date"`
	Slots       []SlotPayload `json:"slots" binding:"omitempty,dive"`
}

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	ProviderID string `form:"provider_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending approved completed cancelled"`
	Gender     string `form:"gender" binding:"omitempty,oneof=male female"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	SortBy     string `form:"sort_by" binding:"omitempty,oneof=booking_date created_at status"`
	SortOrder  string `form:"sort_order" binding:"omitempty,oneof=ASC DESC asc desc"`
}

type BookingResponse struct {
	ID             string        `json:"id"`
	ProviderID     *string       `json:"provider_id"`
	ProviderName   string        `json:"provider_name,omitempty"`
	CustomerName   string        `json:"customer_name"`
	CustomerEmail  string        `json:"customer_email"`
	CustomerGender string        `json:"customer_gender"`
	CustomerAge    int           `json:"customer_age"`
	Slots          []SlotPayload `json:"slots"`
	Timezone       string        `json:"timezone"`
	BookingDate    time.Time     `json:"booking_date"`
	RenewalDate    *time.Time    `json:"renewal_date,omitempty"`
	Status         string        `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	slots := make([]SlotPayload, len(b.Slots))
	for i, s := range b.Slots {
		slots[i] = newSlotPayload(s)
	}

	return BookingResponse{
		ID:             b.ID,
		ProviderID:     b.ProviderID,
		ProviderName:   b.ProviderName,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerGender: string(b.CustomerGender),
		CustomerAge:    b.CustomerAge,
		Slots:          slots,
		Timezone:       b.Timezone,
		BookingDate:    b.BookingDate,
		RenewalDate:    b.RenewalDate,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// CreateBookingResponse reports the created booking plus any slots that were
// dropped because they went stale between page load and checkout.
type CreateBookingResponse struct {
	Booking       BookingResponse `json:"booking"`
	RejectedSlots []SlotPayload   `json:"rejected_slots"`
}
