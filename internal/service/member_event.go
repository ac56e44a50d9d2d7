package service

import (
	"context"
	"fmt"
	"time"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// MemberEventService manages the notifications addressed to a member.
type MemberEventService interface {
	List(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.MemberEvent], error)
	UnreadCount(ctx context.Context, memberID int64) (int, error)
	MarkRead(ctx context.Context, memberID, id int64) (*model.MemberEvent, error)
	// Record stores a new notification for memberID.
	Record(ctx context.Context, memberID int64, typ model.MemberEventType, actorID int64, actorNickname string, targetID int64) (*model.MemberEvent, error)
}

type memberEventService struct {
	tx     Transactor
	events repository.MemberEventRepository
	now    func() time.Time
}

func NewMemberEventService(tx Transactor, events repository.MemberEventRepository) MemberEventService {
	return &memberEventService{tx: tx, events: events, now: utcNow}
}

func (s *memberEventService) List(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.MemberEvent], error) {
	res, err := s.events.ListByMember(ctx, memberID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *memberEventService) UnreadCount(ctx context.Context, memberID int64) (int, error) {
	return s.events.CountUnread(ctx, memberID)
}

func (s *memberEventService) MarkRead(ctx context.Context, memberID, id int64) (*model.MemberEvent, error) {
	var e *model.MemberEvent
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		e, err = s.events.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrEventNotFound)
		}
		if err := e.MarkRead(memberID); err != nil {
			return err
		}
		return notFound(s.events.MarkRead(ctx, id), ErrEventNotFound)
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (s *memberEventService) Record(ctx context.Context, memberID int64, typ model.MemberEventType, actorID int64, actorNickname string, targetID int64) (*model.MemberEvent, error) {
	e, err := model.NewMemberEvent(memberID, typ, actorID, actorNickname, targetID, s.now())
	if err != nil {
		return nil, err
	}
	created, err := s.events.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("record member event: %w", err)
	}
	return created, nil
}
