package model

import (
	"fmt"
	"time"

	"socialapi/internal/apperr"
)

type MemberEventType string

const (
	MemberEventFollow        MemberEventType = "FOLLOW"
	MemberEventFriendRequest MemberEventType = "FRIEND_REQUEST"
	MemberEventFriendAccept  MemberEventType = "FRIEND_ACCEPT"
	MemberEventComment       MemberEventType = "COMMENT"
)

// MemberEvent is a notification addressed to MemberID.
type MemberEvent struct {
	ID            int64           `json:"id"`
	MemberID      int64           `json:"member_id"`
	Type          MemberEventType `json:"type"`
	ActorID       int64           `json:"actor_id"`
	ActorNickname string          `json:"actor_nickname"`
	TargetID      int64           `json:"target_id"`
	Message       string          `json:"message"`
	Read          bool            `json:"read"`
	CreatedAt     time.Time       `json:"created_at"`
}

func NewMemberEvent(memberID int64, typ MemberEventType, actorID int64, actorNickname string, targetID int64, now time.Time) (*MemberEvent, error) {
	if err := requirePositiveID("event", "member id", memberID); err != nil {
		return nil, err
	}
	msg, err := eventMessage(typ, actorNickname)
	if err != nil {
		return nil, err
	}
	return &MemberEvent{
		MemberID:      memberID,
		Type:          typ,
		ActorID:       actorID,
		ActorNickname: actorNickname,
		TargetID:      targetID,
		Message:       msg,
		CreatedAt:     now,
	}, nil
}

func eventMessage(typ MemberEventType, actor string) (string, error) {
	switch typ {
	case MemberEventFollow:
		return fmt.Sprintf("%s started following you", actor), nil
	case MemberEventFriendRequest:
		return fmt.Sprintf("%s sent you a friend request", actor), nil
	case MemberEventFriendAccept:
		return fmt.Sprintf("%s accepted your friend request", actor), nil
	case MemberEventComment:
		return fmt.Sprintf("%s commented on your post", actor), nil
	default:
		return "", apperr.Validation("event", "INVALID_EVENT_TYPE", "unknown event type "+string(typ))
	}
}

func (e *MemberEvent) MarkRead(memberID int64) error {
	if e.MemberID != memberID {
		return apperr.Unauthorized("event", "NOT_EVENT_RECIPIENT", "only the recipient can read this event")
	}
	e.Read = true
	return nil
}
