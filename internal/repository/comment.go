package repository

import (
	"context"

	"socialapi/internal/model"
)

// CommentRepository defines data access for comments.
type CommentRepository interface {
	Create(ctx context.Context, c *model.Comment) (*model.Comment, error)
	FindByID(ctx context.Context, id int64) (*model.Comment, error)
	Update(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, id int64) error
	// ListByPost returns a post's comments, oldest first.
	ListByPost(ctx context.Context, postID int64, pq PageQuery) (*PageResult[model.Comment], error)

	UpdateWriterProfile(ctx context.Context, writerID int64, nickname, profileImageURL string) (int64, error)
}
