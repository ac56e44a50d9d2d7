package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type MockFollowService struct {
	mock.Mock
}

var _ service.FollowService = (*MockFollowService)(nil)

func (m *MockFollowService) Follow(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	args := m.Called(ctx, followerID, followeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	args := m.Called(ctx, followerID, followeeID)
	return args.Error(0)
}

func (m *MockFollowService) ListFollowers(ctx context.Context, memberID int64, limit, offset int) (*service.ListResult[model.Follow], error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Follow]), args.Error(1)
}

func (m *MockFollowService) ListFollowings(ctx context.Context, memberID int64, limit, offset int) (*service.ListResult[model.Follow], error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Follow]), args.Error(1)
}

func (m *MockFollowService) Counts(ctx context.Context, memberID int64) (model.FollowCounts, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(model.FollowCounts), args.Error(1)
}
