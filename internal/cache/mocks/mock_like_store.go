package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockLikeStore struct {
	mock.Mock
}

func (m *MockLikeStore) Toggle(ctx context.Context, postID, memberID int64) (bool, int64, error) {
	args := m.Called(ctx, postID, memberID)
	return args.Bool(0), args.Get(1).(int64), args.Error(2)
}

func (m *MockLikeStore) Count(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLikeStore) Clear(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}
