package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

type MockMemberEventRepository struct {
	mock.Mock
}

func (m *MockMemberEventRepository) Create(ctx context.Context, e *model.MemberEvent) (*model.MemberEvent, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberEvent), args.Error(1)
}

func (m *MockMemberEventRepository) FindByID(ctx context.Context, id int64) (*model.MemberEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberEvent), args.Error(1)
}

func (m *MockMemberEventRepository) ListByMember(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.MemberEvent], error) {
	args := m.Called(ctx, memberID, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.MemberEvent]), args.Error(1)
}

func (m *MockMemberEventRepository) CountUnread(ctx context.Context, memberID int64) (int, error) {
	args := m.Called(ctx, memberID)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberEventRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
