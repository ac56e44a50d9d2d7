package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

type MockCollectionRepository struct {
	mock.Mock
}

func (m *MockCollectionRepository) Create(ctx context.Context, c *model.PostCollection) (*model.PostCollection, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostCollection), args.Error(1)
}

func (m *MockCollectionRepository) FindByID(ctx context.Context, id int64) (*model.PostCollection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostCollection), args.Error(1)
}

func (m *MockCollectionRepository) ListByMember(ctx context.Context, memberID int64) ([]model.PostCollection, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PostCollection), args.Error(1)
}

func (m *MockCollectionRepository) Update(ctx context.Context, c *model.PostCollection) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCollectionRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCollectionRepository) AddPost(ctx context.Context, collectionID, postID int64) error {
	args := m.Called(ctx, collectionID, postID)
	return args.Error(0)
}

func (m *MockCollectionRepository) RemovePost(ctx context.Context, collectionID, postID int64) error {
	args := m.Called(ctx, collectionID, postID)
	return args.Error(0)
}

func (m *MockCollectionRepository) ListPosts(ctx context.Context, collectionID int64, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	args := m.Called(ctx, collectionID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Post]), args.Error(1)
}
