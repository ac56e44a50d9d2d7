package repository

import (
	"context"

	"socialapi/internal/model"
)

// PostRepository defines data access for posts.
type PostRepository interface {
	Create(ctx context.Context, p *model.Post) (*model.Post, error)
	FindByID(ctx context.Context, id int64) (*model.Post, error)
	Update(ctx context.Context, p *model.Post) error
	Delete(ctx context.Context, id int64) error

	// ListByWriter returns a writer's posts, newest first.
	ListByWriter(ctx context.Context, writerID int64, pq PageQuery) (*PageResult[model.Post], error)
	// ListFeed returns the member's own posts and posts of members they follow, newest first.
	ListFeed(ctx context.Context, memberID int64, pq PageQuery) (*PageResult[model.Post], error)

	UpdateWriterNickname(ctx context.Context, writerID int64, nickname string) (int64, error)
}
