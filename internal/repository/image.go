package repository

import (
	"context"

	"socialapi/internal/model"
)

// ImageRepository defines data access for image metadata.
type ImageRepository interface {
	Create(ctx context.Context, img *model.Image) (*model.Image, error)
	FindByID(ctx context.Context, id int64) (*model.Image, error)
	FindByIDs(ctx context.Context, ids []int64) ([]model.Image, error)
	ListByPost(ctx context.Context, postID int64) ([]model.Image, error)
	ListByUploader(ctx context.Context, uploaderID int64) ([]model.Image, error)
	// AttachToPost links the images to postID.
	AttachToPost(ctx context.Context, ids []int64, postID int64) error
	Delete(ctx context.Context, id int64) error
}
