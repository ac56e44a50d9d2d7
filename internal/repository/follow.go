package repository

import (
	"context"

	"socialapi/internal/model"
)

// FollowRepository defines data access for follow relations.
type FollowRepository interface {
	Create(ctx context.Context, f *model.Follow) (*model.Follow, error)
	Find(ctx context.Context, followerID, followeeID int64) (*model.Follow, error)
	Delete(ctx context.Context, id int64) error

	ListFollowers(ctx context.Context, memberID int64, pq PageQuery) (*PageResult[model.Follow], error)
	ListFollowings(ctx context.Context, memberID int64, pq PageQuery) (*PageResult[model.Follow], error)
	Counts(ctx context.Context, memberID int64) (model.FollowCounts, error)

	// UpdateMemberProfile rewrites the cached nickname/image on both sides of
	// every follow involving memberID.
	UpdateMemberProfile(ctx context.Context, memberID int64, nickname, profileImageURL string) (int64, error)
}
