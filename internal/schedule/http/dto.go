package http

import (
	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
)

// GetScheduleRequest defines query parameters for the weekly schedule view.
type GetScheduleRequest struct {
	Gender   string `form:"gender" binding:"omitempty,oneof=male female"`
	AgeGroup string `form:"age_group" binding:"omitempty,oneof=adult child"`
	Timezone string `form:"timezone"`
}

// SlotResponse is one selectable slot. "original" is the UTC identity the
// server expects back at checkout; "display"/"display_12h" are presentation
// only.
type SlotResponse struct {
	Original    string `json:"original"`
	Display     string `json:"display"`
	Display12h  string `json:"display_12h"`
	OriginalDay string `json:"original_day"`
	Timezone    string `json:"timezone"`
}

type ScheduleDayResponse struct {
	DayKey   string         `json:"day_key"`
	DayName  string         `json:"day_name"`
	HasSlots bool           `json:"has_slots"`
	Slots    []SlotResponse `json:"slots"`
}

type ScheduleResponse struct {
	Timezone string                `json:"timezone"`
	Days     []ScheduleDayResponse `json:"days"`
}

func NewScheduleResponse(days []schedule.DaySchedule, zone string) ScheduleResponse {
	out := ScheduleResponse{Timezone: zone, Days: make([]ScheduleDayResponse, 0, len(days))}
	for _, day := range days {
		resp := ScheduleDayResponse{
			DayKey:   day.Day.String(),
			DayName:  day.Label,
			HasSlots: day.HasSlots,
			Slots:    make([]SlotResponse, 0, len(day.Slots)),
		}
		for _, slot := range day.Slots {
			resp.Slots = append(resp.Slots, SlotResponse{
				Original:    slot.UTCTime.Storage(),
				Display:     slot.Local.Display(),
				Display12h:  slot.Local.Display12h(),
				OriginalDay: slot.UTCDay.String(),
				Timezone:    slot.Timezone,
			})
		}
		out.Days = append(out.Days, resp)
	}
	return out
}

// SelectedSlotPayload is the checkout wire format for one chosen slot.
// Only Day and Time (the UTC identity) are authoritative; DisplayTime and
// Timezone are echoed back untouched and ignored for validation.
type SelectedSlotPayload struct {
	Day         string `json:"day" binding:"required"`
	Time        string `json:"time" binding:"required"`
	DisplayTime string `json:"display_time"`
	Timezone    string `json:"timezone"`
}

type ValidateSelectionRequest struct {
	Gender   string                `json:"gender" binding:"omitempty,oneof=male female"`
	AgeGroup string                `json:"age_group" binding:"omitempty,oneof=adult child"`
	Slots    []SelectedSlotPayload `json:"slots" binding:"required,min=1"`
}

type ValidateSelectionResponse struct {
	Accepted []SelectedSlotPayload `json:"accepted"`
	Rejected []SelectedSlotPayload `json:"rejected"`
}
