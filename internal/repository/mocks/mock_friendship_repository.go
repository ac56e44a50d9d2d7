package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

type MockFriendshipRepository struct {
	mock.Mock
}

func (m *MockFriendshipRepository) Create(ctx context.Context, f *model.Friendship) (*model.Friendship, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) FindByID(ctx context.Context, id int64) (*model.Friendship, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) FindBetween(ctx context.Context, a, b int64) (*model.Friendship, error) {
	args := m.Called(ctx, a, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Friendship), args.Error(1)
}

func (m *MockFriendshipRepository) Update(ctx context.Context, f *model.Friendship) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFriendshipRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFriendshipRepository) ListAccepted(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Friendship], error) {
	args := m.Called(ctx, memberID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Friendship]), args.Error(1)
}

func (m *MockFriendshipRepository) CountAccepted(ctx context.Context, memberID int64) (int, error) {
	args := m.Called(ctx, memberID)
	return args.Int(0), args.Error(1)
}

func (m *MockFriendshipRepository) ListPendingReceived(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Friendship], error) {
	args := m.Called(ctx, memberID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Friendship]), args.Error(1)
}

func (m *MockFriendshipRepository) UpdateMemberProfile(ctx context.Context, memberID int64, nickname, profileImageURL string) (int64, error) {
	args := m.Called(ctx, memberID, nickname, profileImageURL)
	return args.Get(0).(int64), args.Error(1)
}
