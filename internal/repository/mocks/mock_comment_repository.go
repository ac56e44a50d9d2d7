package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	args := m.Called(ctx, c)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, c *model.Comment) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID int64, pq repository.PageQuery) (*repository.PageResult[model.Comment], error) {
	args := m.Called(ctx, postID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Comment]), args.Error(1)
}

func (m *MockCommentRepository) UpdateWriterProfile(ctx context.Context, writerID int64, nickname, profileImageURL string) (int64, error) {
	args := m.Called(ctx, writerID, nickname, profileImageURL)
	return args.Get(0).(int64), args.Error(1)
}
