package repository

import (
	"context"

	"socialapi/internal/model"
)

// MemberEventRepository defines data access for member notifications.
type MemberEventRepository interface {
	Create(ctx context.Context, e *model.MemberEvent) (*model.MemberEvent, error)
	FindByID(ctx context.Context, id int64) (*model.MemberEvent, error)
	ListByMember(ctx context.Context, memberID int64, pq PageQuery) (*PageResult[model.MemberEvent], error)
	CountUnread(ctx context.Context, memberID int64) (int, error)
	MarkRead(ctx context.Context, id int64) error
}
