package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	fileHttp "github.com/tutorhive/tutor-booking-backend/internal/file/http"
	"github.com/tutorhive/tutor-booking-backend/internal/pkg/response"
	"github.com/tutorhive/tutor-booking-backend/internal/provider"
)

type Handler struct {
	service provider.Service
	files   *fileHttp.Handler
}

func NewHandler(service provider.Service, files *fileHttp.Handler) *Handler {
	return &Handler{service: service, files: files}
}

func (h *Handler) List(c *gin.Context) {
	var query ListProvidersRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := provider.Filter{
		Gender:    query.Gender,
		AgeGroup:  query.AgeGroup,
		Status:    query.Status,
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}

	providers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		items[i] = NewProviderResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, filter.Page, filter.PageSize, total))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateProviderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Create(c.Request.Context(), provider.CreateRequest{
		DisplayName:  body.DisplayName,
		Gender:       body.Gender,
		AgeGroup:     body.AgeGroup,
		Timezone:     body.Timezone,
		Availability: body.Availability,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewProviderResponse(p))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProviderResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateProviderRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.Update(c.Request.Context(), id, provider.UpdateRequest{
		DisplayName:  body.DisplayName,
		Gender:       body.Gender,
		AgeGroup:     body.AgeGroup,
		Status:       body.Status,
		Timezone:     body.Timezone,
		Availability: body.Availability,
		PhotoFileID:  body.PhotoFileID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProviderResponse(p))
}

// UploadPhoto replaces the provider's photo. The image is re-encoded
// and linked to the provider once stored.
func (h *Handler) UploadPhoto(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if _, err := h.service.GetByID(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	h.files.HandleFileUpload(c, fileHttp.FileUploadConfig{
		FormFieldName: "photo",
		MaxSizeBytes:  5 * 1024 * 1024,
		AllowedTypes:  []string{"image/jpeg", "image/png", "image/webp"},
		ResizeImage:   true,
		AfterUpload: func(ctx context.Context, fileID string) error {
			_, err := h.service.Update(ctx, id, provider.UpdateRequest{
				PhotoFileID: &fileID,
			})
			return err
		},
	})
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
