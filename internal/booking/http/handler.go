package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tutorhive/tutor-booking-backend/internal/booking"
	"github.com/tutorhive/tutor-booking-backend/internal/pkg/response"
)

type Handler struct {
	service booking.Service
}

func NewHandler(service booking.Service) *Handler {
	return &Handler{service: service}
}

// Create handles the public checkout submission.
func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	slots := make([]booking.SelectedSlot, len(body.Slots))
	for i, p := range body.Slots {
		slots[i] = p.toModel()
	}

	result, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		CustomerName:   body.CustomerName,
		CustomerEmail:  body.CustomerEmail,
		CustomerGender: body.CustomerGender,
		CustomerAge:    body.CustomerAge,
		Timezone:       body.Timezone,
		Slots:          slots,
		AllOrNothing:   body.AllOrNothing,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	rejected := make([]SlotPayload, len(result.Rejected))
	for i, s := range result.Rejected {
		rejected[i] = newSlotPayload(s)
	}

	c.JSON(http.StatusCreated, CreateBookingResponse{
		Booking:       NewBookingResponse(result.Booking),
		RejectedSlots: rejected,
	})
}

func (h *Handler) List(c *gin.Context) {
	var query ListBookingsRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		ProviderID: query.ProviderID,
		Status:     query.Status,
		Gender:     query.Gender,
		Page:       query.Page,
		PageSize:   query.PageSize,
		SortBy:     query.SortBy,
		SortOrder:  query.SortOrder,
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := booking.UpdateRequest{
		ProviderID:  body.ProviderID,
		Status:      body.Status,
		RenewalDate: body.RenewalDate,
	}
	if body.Slots != nil {
		req.Slots = make([]booking.SelectedSlot, len(body.Slots))
		for i, p := range body.Slots {
			req.Slots[i] = p.toModel()
		}
	}

	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
