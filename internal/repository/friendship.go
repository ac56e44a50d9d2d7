package repository

import (
	"context"

	"socialapi/internal/model"
)

// FriendshipRepository defines data access for friendships.
type FriendshipRepository interface {
	Create(ctx context.Context, f *model.Friendship) (*model.Friendship, error)
	FindByID(ctx context.Context, id int64) (*model.Friendship, error)
	// FindBetween returns the friendship between a and b in either direction.
	FindBetween(ctx context.Context, a, b int64) (*model.Friendship, error)
	Update(ctx context.Context, f *model.Friendship) error
	Delete(ctx context.Context, id int64) error

	// ListAccepted returns accepted friendships involving memberID, newest first.
	ListAccepted(ctx context.Context, memberID int64, pq PageQuery) (*PageResult[model.Friendship], error)
	CountAccepted(ctx context.Context, memberID int64) (int, error)
	ListPendingReceived(ctx context.Context, memberID int64, pq PageQuery) (*PageResult[model.Friendship], error)

	UpdateMemberProfile(ctx context.Context, memberID int64, nickname, profileImageURL string) (int64, error)
}
