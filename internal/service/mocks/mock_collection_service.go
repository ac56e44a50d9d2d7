package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type MockCollectionService struct {
	mock.Mock
}

var _ service.CollectionService = (*MockCollectionService)(nil)

func (m *MockCollectionService) Create(ctx context.Context, memberID int64, name string) (*model.PostCollection, error) {
	args := m.Called(ctx, memberID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostCollection), args.Error(1)
}

func (m *MockCollectionService) List(ctx context.Context, memberID int64) ([]model.PostCollection, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PostCollection), args.Error(1)
}

func (m *MockCollectionService) Rename(ctx context.Context, memberID, id int64, name string) (*model.PostCollection, error) {
	args := m.Called(ctx, memberID, id, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostCollection), args.Error(1)
}

func (m *MockCollectionService) Delete(ctx context.Context, memberID, id int64) error {
	args := m.Called(ctx, memberID, id)
	return args.Error(0)
}

func (m *MockCollectionService) AddPost(ctx context.Context, memberID, id, postID int64) error {
	args := m.Called(ctx, memberID, id, postID)
	return args.Error(0)
}

func (m *MockCollectionService) RemovePost(ctx context.Context, memberID, id, postID int64) error {
	args := m.Called(ctx, memberID, id, postID)
	return args.Error(0)
}

func (m *MockCollectionService) ListPosts(ctx context.Context, memberID, id int64, limit, offset int) (*service.ListResult[model.Post], error) {
	args := m.Called(ctx, memberID, id, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Post]), args.Error(1)
}
