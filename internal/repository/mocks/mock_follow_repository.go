package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

type MockFollowRepository struct {
	mock.Mock
}

func (m *MockFollowRepository) Create(ctx context.Context, f *model.Follow) (*model.Follow, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) Find(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	args := m.Called(ctx, followerID, followeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Follow), args.Error(1)
}

func (m *MockFollowRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFollowRepository) ListFollowers(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Follow], error) {
	args := m.Called(ctx, memberID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Follow]), args.Error(1)
}

func (m *MockFollowRepository) ListFollowings(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Follow], error) {
	args := m.Called(ctx, memberID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Follow]), args.Error(1)
}

func (m *MockFollowRepository) Counts(ctx context.Context, memberID int64) (model.FollowCounts, error) {
	args := m.Called(ctx, memberID)
	return args.Get(0).(model.FollowCounts), args.Error(1)
}

func (m *MockFollowRepository) UpdateMemberProfile(ctx context.Context, memberID int64, nickname, profileImageURL string) (int64, error) {
	args := m.Called(ctx, memberID, nickname, profileImageURL)
	return args.Get(0).(int64), args.Error(1)
}
