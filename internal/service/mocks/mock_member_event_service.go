package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"socialapi/internal/model"
	"socialapi/internal/service"
)

type MockMemberEventService struct {
	mock.Mock
}

var _ service.MemberEventService = (*MockMemberEventService)(nil)

func (m *MockMemberEventService) List(ctx context.Context, memberID int64, limit, offset int) (*service.ListResult[model.MemberEvent], error) {
	args := m.Called(ctx, memberID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ListResult[model.MemberEvent]), args.Error(1)
}

func (m *MockMemberEventService) UnreadCount(ctx context.Context, memberID int64) (int, error) {
	args := m.Called(ctx, memberID)
	return args.Int(0), args.Error(1)
}

func (m *MockMemberEventService) MarkRead(ctx context.Context, memberID, id int64) (*model.MemberEvent, error) {
	args := m.Called(ctx, memberID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberEvent), args.Error(1)
}

func (m *MockMemberEventService) Record(ctx context.Context, memberID int64, typ model.MemberEventType, actorID int64, actorNickname string, targetID int64) (*model.MemberEvent, error) {
	args := m.Called(ctx, memberID, typ, actorID, actorNickname, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MemberEvent), args.Error(1)
}
