package service

import (
	"context"
	"fmt"
	"time"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// CommentService defines the use cases for post comments.
type CommentService interface {
	// Create copies the writer's nickname and image onto the comment and
	// emits PostCommented.
	Create(ctx context.Context, writerID, postID int64, content string) (*model.Comment, error)
	// ListByPost lists comments oldest first.
	ListByPost(ctx context.Context, postID int64, limit, offset int) (*ListResult[model.Comment], error)
	Update(ctx context.Context, writerID, id int64, content string) (*model.Comment, error)
	Delete(ctx context.Context, writerID, id int64) error
}

type commentService struct {
	tx       Transactor
	pub      EventPublisher
	comments repository.CommentRepository
	posts    repository.PostRepository
	members  repository.MemberRepository
	now      func() time.Time
}

func NewCommentService(
	tx Transactor,
	pub EventPublisher,
	comments repository.CommentRepository,
	posts repository.PostRepository,
	members repository.MemberRepository,
) CommentService {
	return &commentService{tx: tx, pub: pub, comments: comments, posts: posts, members: members, now: utcNow}
}

func (s *commentService) Create(ctx context.Context, writerID, postID int64, content string) (*model.Comment, error) {
	var created *model.Comment
	err := inTx(ctx, s.tx, s.pub, func(ctx context.Context, collect func(...model.Event)) error {
		post, err := s.posts.FindByID(ctx, postID)
		if err != nil {
			return notFound(err, ErrPostNotFound)
		}
		writer, err := s.members.FindByID(ctx, writerID)
		if err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		c, err := model.NewComment(post, writer, content, s.now())
		if err != nil {
			return err
		}
		created, err = s.comments.Create(ctx, c)
		if err != nil {
			return fmt.Errorf("create comment: %w", err)
		}
		created.Posted(post.WriterID)
		collect(created.PullEvents()...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *commentService) ListByPost(ctx context.Context, postID int64, limit, offset int) (*ListResult[model.Comment], error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	res, err := s.comments.ListByPost(ctx, postID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *commentService) Update(ctx context.Context, writerID, id int64, content string) (*model.Comment, error) {
	var c *model.Comment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.comments.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrCommentNotFound)
		}
		if err := c.Edit(writerID, content, s.now()); err != nil {
			return err
		}
		return notFound(s.comments.Update(ctx, c), ErrCommentNotFound)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *commentService) Delete(ctx context.Context, writerID, id int64) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		c, err := s.comments.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrCommentNotFound)
		}
		if err := c.CheckWriter(writerID); err != nil {
			return err
		}
		return notFound(s.comments.Delete(ctx, id), ErrCommentNotFound)
	})
}
