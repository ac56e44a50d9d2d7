package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// FriendshipService defines the use cases for symmetric friendships.
type FriendshipService interface {
	// Request opens a pending request, reopening a rejected one if it exists.
	Request(ctx context.Context, requesterID, addresseeID int64) (*model.Friendship, error)
	Accept(ctx context.Context, memberID, id int64) (*model.Friendship, error)
	Reject(ctx context.Context, memberID, id int64) (*model.Friendship, error)
	Delete(ctx context.Context, memberID, id int64) error
	ListFriends(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Friend], error)
	CountFriends(ctx context.Context, memberID int64) (int, error)
	ListReceivedRequests(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Friendship], error)
}

type friendshipService struct {
	tx          Transactor
	pub         EventPublisher
	friendships repository.FriendshipRepository
	members     repository.MemberRepository
	now         func() time.Time
}

func NewFriendshipService(tx Transactor, pub EventPublisher, friendships repository.FriendshipRepository, members repository.MemberRepository) FriendshipService {
	return &friendshipService{tx: tx, pub: pub, friendships: friendships, members: members, now: utcNow}
}

func (s *friendshipService) Request(ctx context.Context, requesterID, addresseeID int64) (*model.Friendship, error) {
	var out *model.Friendship
	err := inTx(ctx, s.tx, s.pub, func(ctx context.Context, collect func(...model.Event)) error {
		requester, err := s.members.FindByID(ctx, requesterID)
		if err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		addressee, err := s.members.FindByID(ctx, addresseeID)
		if err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		f, err := model.NewFriendship(requester, addressee, s.now())
		if err != nil {
			return err
		}

		existing, err := s.friendships.FindBetween(ctx, requesterID, addresseeID)
		switch {
		case err == nil:
			if err := existing.Reopen(requester, addressee, s.now()); err != nil {
				return err
			}
			err = s.friendships.Update(ctx, existing)
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrFriendshipExists
			}
			if err != nil {
				return fmt.Errorf("reopen friendship: %w", err)
			}
			out = existing
		case errors.Is(err, sql.ErrNoRows):
			out, err = s.friendships.Create(ctx, f)
			if errors.Is(err, repository.ErrDuplicate) {
				return ErrFriendshipExists
			}
			if err != nil {
				return fmt.Errorf("create friendship: %w", err)
			}
			out.Requested()
		default:
			return fmt.Errorf("find friendship: %w", err)
		}
		collect(out.PullEvents()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *friendshipService) Accept(ctx context.Context, memberID, id int64) (*model.Friendship, error) {
	return s.respond(ctx, id, func(f *model.Friendship) error {
		return f.Accept(memberID, s.now())
	})
}

func (s *friendshipService) Reject(ctx context.Context, memberID, id int64) (*model.Friendship, error) {
	return s.respond(ctx, id, func(f *model.Friendship) error {
		return f.Reject(memberID, s.now())
	})
}

func (s *friendshipService) respond(ctx context.Context, id int64, apply func(*model.Friendship) error) (*model.Friendship, error) {
	var f *model.Friendship
	err := inTx(ctx, s.tx, s.pub, func(ctx context.Context, collect func(...model.Event)) error {
		var err error
		f, err = s.friendships.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrFriendshipNotFound)
		}
		if err := apply(f); err != nil {
			return err
		}
		if err := s.friendships.Update(ctx, f); err != nil {
			return notFound(err, ErrFriendshipNotFound)
		}
		collect(f.PullEvents()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *friendshipService) Delete(ctx context.Context, memberID, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		f, err := s.friendships.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrFriendshipNotFound)
		}
		if !f.Involves(memberID) {
			return ErrNotFriendshipParty
		}
		return notFound(s.friendships.Delete(ctx, id), ErrFriendshipNotFound)
	})
}

func (s *friendshipService) ListFriends(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Friend], error) {
	res, err := s.friendships.ListAccepted(ctx, memberID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	friends := make([]model.Friend, 0, len(res.Items))
	for i := range res.Items {
		friends = append(friends, res.Items[i].Counterpart(memberID))
	}
	return &ListResult[model.Friend]{Items: friends, Total: res.Total}, nil
}

func (s *friendshipService) CountFriends(ctx context.Context, memberID int64) (int, error) {
	return s.friendships.CountAccepted(ctx, memberID)
}

func (s *friendshipService) ListReceivedRequests(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Friendship], error) {
	res, err := s.friendships.ListPendingReceived(ctx, memberID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}
