package service

import (
	"context"
	"fmt"
	"time"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// CollectionService defines the use cases for a member's saved-post collections.
// Every operation on an existing collection is restricted to its owner.
type CollectionService interface {
	Create(ctx context.Context, memberID int64, name string) (*model.PostCollection, error)
	List(ctx context.Context, memberID int64) ([]model.PostCollection, error)
	Rename(ctx context.Context, memberID, id int64, name string) (*model.PostCollection, error)
	Delete(ctx context.Context, memberID, id int64) error
	AddPost(ctx context.Context, memberID, id, postID int64) error
	RemovePost(ctx context.Context, memberID, id, postID int64) error
	ListPosts(ctx context.Context, memberID, id int64, limit, offset int) (*ListResult[model.Post], error)
}

type collectionService struct {
	tx          Transactor
	collections repository.CollectionRepository
	posts       repository.PostRepository
	now         func() time.Time
}

func NewCollectionService(tx Transactor, collections repository.CollectionRepository, posts repository.PostRepository) CollectionService {
	return &collectionService{tx: tx, collections: collections, posts: posts, now: utcNow}
}

func (s *collectionService) Create(ctx context.Context, memberID int64, name string) (*model.PostCollection, error) {
	c, err := model.NewPostCollection(memberID, name, s.now())
	if err != nil {
		return nil, err
	}
	created, err := s.collections.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("create collection: %w", err)
	}
	return created, nil
}

func (s *collectionService) List(ctx context.Context, memberID int64) ([]model.PostCollection, error) {
	return s.collections.ListByMember(ctx, memberID)
}

func (s *collectionService) Rename(ctx context.Context, memberID, id int64, name string) (*model.PostCollection, error) {
	var c *model.PostCollection
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.collections.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrCollectionNotFound)
		}
		if err := c.Rename(memberID, name, s.now()); err != nil {
			return err
		}
		return notFound(s.collections.Update(ctx, c), ErrCollectionNotFound)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *collectionService) Delete(ctx context.Context, memberID, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.owned(ctx, memberID, id); err != nil {
			return err
		}
		return notFound(s.collections.Delete(ctx, id), ErrCollectionNotFound)
	})
}

func (s *collectionService) AddPost(ctx context.Context, memberID, id, postID int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.owned(ctx, memberID, id); err != nil {
			return err
		}
		if _, err := s.posts.FindByID(ctx, postID); err != nil {
			return notFound(err, ErrPostNotFound)
		}
		return s.collections.AddPost(ctx, id, postID)
	})
}

func (s *collectionService) RemovePost(ctx context.Context, memberID, id, postID int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.owned(ctx, memberID, id); err != nil {
			return err
		}
		return notFound(s.collections.RemovePost(ctx, id, postID), ErrPostNotInCollection)
	})
}

func (s *collectionService) ListPosts(ctx context.Context, memberID, id int64, limit, offset int) (*ListResult[model.Post], error) {
	if _, err := s.owned(ctx, memberID, id); err != nil {
		return nil, err
	}
	res, err := s.collections.ListPosts(ctx, id, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

// owned loads the collection and checks that memberID owns it.
func (s *collectionService) owned(ctx context.Context, memberID, id int64) (*model.PostCollection, error) {
	c, err := s.collections.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrCollectionNotFound)
	}
	if err := c.CheckOwner(memberID); err != nil {
		return nil, err
	}
	return c, nil
}
