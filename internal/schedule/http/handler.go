package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorhive/tutor-booking-backend/internal/pkg/response"
	"github.com/tutorhive/tutor-booking-backend/internal/provider"
	"github.com/tutorhive/tutor-booking-backend/internal/schedule"
	"github.com/tutorhive/tutor-booking-backend/internal/timezone"
)

type Handler struct {
	providerService provider.Service
	defaultZone     string
}

func NewHandler(providerService provider.Service, defaultZone string) *Handler {
	return &Handler{
		providerService: providerService,
		defaultZone:     defaultZone,
	}
}

// GetSchedule returns the combined weekly availability for the requested
// audience, rendered in the resolved display timezone. An audience nobody
// serves is a normal 200 with seven empty days.
func (h *Handler) GetSchedule(c *gin.Context) {
	var query GetScheduleRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	// Display timezone: query param, then client header, then the site
	// default, then UTC.
	zone := timezone.Resolve(
		timezone.FromValue(query.Timezone),
		timezone.FromValue(c.GetHeader("X-Timezone")),
		timezone.Fixed(h.defaultZone),
	)

	weekly, err := h.liveAvailability(c, schedule.Audience{
		Gender:   schedule.Gender(query.Gender),
		AgeGroup: schedule.AgeGroup(query.AgeGroup),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	days := schedule.Project(weekly, zone)
	c.JSON(http.StatusOK, NewScheduleResponse(days, zone))
}

// ValidateSelection re-checks a checkout selection against freshly
// aggregated availability. Each slot is accepted or rejected individually;
// the caller decides whether a partial result may proceed.
func (h *Handler) ValidateSelection(c *gin.Context) {
	var body ValidateSelectionRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	weekly, err := h.liveAvailability(c, schedule.Audience{
		Gender:   schedule.Gender(body.Gender),
		AgeGroup: schedule.AgeGroup(body.AgeGroup),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := ValidateSelectionResponse{
		Accepted: []SelectedSlotPayload{},
		Rejected: []SelectedSlotPayload{},
	}

	for _, payload := range body.Slots {
		ref, ok := slotRef(payload)
		if ok && weekly.Contains(ref.Day, ref.Time) {
			resp.Accepted = append(resp.Accepted, payload)
		} else {
			resp.Rejected = append(resp.Rejected, payload)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// liveAvailability aggregates a fresh provider read for the audience.
// A storage failure here is fatal for the request.
func (h *Handler) liveAvailability(c *gin.Context, audience schedule.Audience) (schedule.Weekly, error) {
	providers, err := h.providerService.ListActive(c.Request.Context())
	if err != nil {
		return nil, err
	}

	contributors := make([]schedule.Contributor, len(providers))
	for i, p := range providers {
		contributors[i] = p.Contributor()
	}

	return schedule.Aggregate(contributors, audience), nil
}

// slotRef extracts the UTC identity from a selection payload. Display
// fields are never consulted.
func slotRef(payload SelectedSlotPayload) (schedule.SlotRef, bool) {
	day, err := schedule.ParseDay(payload.Day)
	if err != nil {
		return schedule.SlotRef{}, false
	}
	t, err := schedule.ParseTimeOfDay(payload.Time)
	if err != nil {
		return schedule.SlotRef{}, false
	}
	return schedule.SlotRef{Day: day, Time: t}, true
}
