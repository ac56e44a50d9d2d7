package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type MockPostService struct {
	mock.Mock
}

var _ service.PostService = (*MockPostService)(nil)

func (m *MockPostService) Create(ctx context.Context, writerID int64, content string, imageIDs []int64) (*model.Post, error) {
	args := m.Called(ctx, writerID, content, imageIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Get(ctx context.Context, id int64) (*service.PostView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.PostView), args.Error(1)
}

func (m *MockPostService) Update(ctx context.Context, writerID, id int64, content string) (*model.Post, error) {
	args := m.Called(ctx, writerID, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostService) Delete(ctx context.Context, writerID, id int64) error {
	args := m.Called(ctx, writerID, id)
	return args.Error(0)
}

func (m *MockPostService) ListByWriter(ctx context.Context, writerID int64, limit, offset int) (*service.ListResult[model.Post], error) {
	args := m.Called(ctx, writerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Post]), args.Error(1)
}

func (m *MockPostService) Feed(ctx context.Context, memberID int64, limit, offset int) (*service.ListResult[model.Post], error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Post]), args.Error(1)
}

func (m *MockPostService) ToggleLike(ctx context.Context, memberID, postID int64) (*service.LikeResult, error) {
	args := m.Called(ctx, memberID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.LikeResult), args.Error(1)
}
