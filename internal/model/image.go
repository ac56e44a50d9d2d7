package model

import (
	"strings"
	"time"

	"socialapi/internal/apperr"
)

// Image is the metadata of an uploaded object. URL is a presigned link filled
// at read time and never persisted.
type Image struct {
	ID          int64     `json:"id"`
	UploaderID  int64     `json:"uploader_id"`
	PostID      *int64    `json:"post_id,omitempty"`
	StoragePath string    `json:"storage_path"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ValidateImageUpload checks an upload before it reaches object storage.
func ValidateImageUpload(uploaderID int64, contentType string, size int64) error {
	if err := requirePositiveID("image", "uploader id", uploaderID); err != nil {
		return err
	}
	if !strings.HasPrefix(contentType, "image/") {
		return apperr.Validation("image", "INVALID_CONTENT_TYPE", "only image uploads are allowed")
	}
	if size <= 0 || size > ImageMaxSize {
		return apperr.Validation("image", "INVALID_SIZE", "image size must be between 1 byte and 10 MiB")
	}
	return nil
}

func (i *Image) CheckUploader(memberID int64) error {
	if i.UploaderID != memberID {
		return apperr.Unauthorized("image", "NOT_IMAGE_UPLOADER", "only the uploader can modify this image")
	}
	return nil
}
