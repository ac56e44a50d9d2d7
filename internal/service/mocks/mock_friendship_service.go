package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type MockFriendshipService struct {
	mock.Mock
}

var _ service.FriendshipService = (*MockFriendshipService)(nil)

func (m *MockFriendshipService) Request(ctx context.Context, requesterID, addresseeID int64) (*model.Friendship, error) {
	args := m.Called(ctx, requesterID, addresseeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Friendship), args.Error(1)
}

func (m *MockFriendshipService) Accept(ctx context.Context, memberID, id int64) (*model.Friendship, error) {
	args := m.Called(ctx, memberID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Friendship), args.Error(1)
}

func (m *MockFriendshipService) Reject(ctx context.Context, memberID, id int64) (*model.Friendship, error) {
	args := m.Called(ctx, memberID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Friendship), args.Error(1)
}

func (m *MockFriendshipService) Delete(ctx context.Context, memberID, id int64) error {
	args := m.Called(ctx, memberID, id)
	return args.Error(0)
}

func (m *MockFriendshipService) ListFriends(ctx context.Context, memberID int64, limit, offset int) (*service.ListResult[model.Friend], error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Friend]), args.Error(1)
}

func (m *MockFriendshipService) CountFriends(ctx context.Context, memberID int64) (int, error) {
	args := m.Called(ctx, memberID)
	return args.Int(0), args.Error(1)
}

func (m *MockFriendshipService) ListReceivedRequests(ctx context.Context, memberID int64, limit, offset int) (*service.ListResult[model.Friendship], error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Friendship]), args.Error(1)
}
