package repository

import (
	"context"

	"socialapi/internal/model"
)

// CollectionRepository defines data access for post collections and their items.
type CollectionRepository interface {
	Create(ctx context.Context, c *model.PostCollection) (*model.PostCollection, error)
	FindByID(ctx context.Context, id int64) (*model.PostCollection, error)
	ListByMember(ctx context.Context, memberID int64) ([]model.PostCollection, error)
	Update(ctx context.Context, c *model.PostCollection) error
	Delete(ctx context.Context, id int64) error

	// AddPost is idempotent.
	AddPost(ctx context.Context, collectionID, postID int64) error
	// RemovePost returns sql.ErrNoRows when the post was not in the collection.
	RemovePost(ctx context.Context, collectionID, postID int64) error
	ListPosts(ctx context.Context, collectionID int64, pq PageQuery) (*PageResult[model.Post], error)
}
