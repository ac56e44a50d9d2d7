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

// FollowService defines the use cases for one-way follows.
type FollowService interface {
	// Follow emits MemberFollowed.
	Follow(ctx context.Context, followerID, followeeID int64) (*model.Follow, error)
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	ListFollowers(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Follow], error)
	ListFollowings(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Follow], error)
	Counts(ctx context.Context, memberID int64) (model.FollowCounts, error)
}

type followService struct {
	tx      Transactor
	pub     EventPublisher
	follows repository.FollowRepository
	members repository.MemberRepository
	now     func() time.Time
}

func NewFollowService(tx Transactor, pub EventPublisher, follows repository.FollowRepository, members repository.MemberRepository) FollowService {
	return &followService{tx: tx, pub: pub, follows: follows, members: members, now: utcNow}
}

func (s *followService) Follow(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	var created *model.Follow
	err := inTx(ctx, s.tx, s.pub, func(ctx context.Context, collect func(...model.Event)) error {
		follower, err := s.members.FindByID(ctx, followerID)
		if err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		followee, err := s.members.FindByID(ctx, followeeID)
		if err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		f, err := model.NewFollow(follower, followee, s.now())
		if err != nil {
			return err
		}

		_, err = s.follows.Find(ctx, followerID, followeeID)
		switch {
		case err == nil:
			return ErrAlreadyFollowing
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("find follow: %w", err)
		}

		created, err = s.follows.Create(ctx, f)
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrAlreadyFollowing
		}
		if err != nil {
			return fmt.Errorf("create follow: %w", err)
		}
		created.Followed()
		collect(created.PullEvents()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *followService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		f, err := s.follows.Find(ctx, followerID, followeeID)
		if err != nil {
			return notFound(err, ErrNotFollowing)
		}
		return notFound(s.follows.Delete(ctx, f.ID), ErrNotFollowing)
	})
}

func (s *followService) ListFollowers(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Follow], error) {
	res, err := s.follows.ListFollowers(ctx, memberID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *followService) ListFollowings(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Follow], error) {
	res, err := s.follows.ListFollowings(ctx, memberID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *followService) Counts(ctx context.Context, memberID int64) (model.FollowCounts, error) {
	return s.follows.Counts(ctx, memberID)
}
