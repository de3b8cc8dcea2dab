package file

import (
	"net/http"
	"time"

	"github.com/tutorhive/tutor-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "file not found")
	ErrFileTooLarge    = apperror.New(http.StatusBadRequest, "file is too large")
	ErrUnsupportedType = apperror.New(http.StatusBadRequest, "unsupported file type")
	ErrNotAnImage      = apperror.New(http.StatusBadRequest, "file is not a valid image")
	ErrNoThumbnail     = apperror.New(http.StatusNotFound, "thumbnail not available")
)

// File is a stored upload, typically a provider photo.
type File struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"` // admin who uploaded it
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"` // internal path
	ThumbnailPath *string   `json:"-"` // internal path
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// FileURL returns the public URL for accessing a file by its ID.
func FileURL(id string) string {
	return "/files/" + id
}

// ThumbnailURL returns the public URL for accessing a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/files/" + id + "/thumbnail"
}
