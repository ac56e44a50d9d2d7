package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type MockCommentService struct {
	mock.Mock
}

var _ service.CommentService = (*MockCommentService)(nil)

func (m *MockCommentService) Create(ctx context.Context, writerID, postID int64, content string) (*model.Comment, error) {
	args := m.Called(ctx, writerID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) ListByPost(ctx context.Context, postID int64, limit, offset int) (*service.ListResult[model.Comment], error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.Comment]), args.Error(1)
}

func (m *MockCommentService) Update(ctx context.Context, writerID, id int64, content string) (*model.Comment, error) {
	args := m.Called(ctx, writerID, id, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentService) Delete(ctx context.Context, writerID, id int64) error {
	args := m.Called(ctx, writerID, id)
	return args.Error(0)
}
