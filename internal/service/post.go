package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"socialapi/internal/cache"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// PostView is a post with its like count and presigned images.
type PostView struct {
	model.Post
	LikeCount int64         `json:"like_count"`
	Images    []model.Image `json:"images"`
}

type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// PostService defines the use cases for posts.
type PostService interface {
	// Create stores a post and attaches the given images, which must be
	// unattached uploads of the writer.
	Create(ctx context.Context, writerID int64, content string, imageIDs []int64) (*model.Post, error)
	Get(ctx context.Context, id int64) (*PostView, error)
	Update(ctx context.Context, writerID, id int64, content string) (*model.Post, error)
	// Delete removes the post and emits PostDeleted.
	Delete(ctx context.Context, writerID, id int64) error
	ListByWriter(ctx context.Context, writerID int64, limit, offset int) (*ListResult[model.Post], error)
	// Feed lists the member's own posts and those of members they follow, newest first.
	Feed(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Post], error)
	ToggleLike(ctx context.Context, memberID, postID int64) (*LikeResult, error)
}

type postService struct {
	tx      Transactor
	pub     EventPublisher
	posts   repository.PostRepository
	members repository.MemberRepository
	images  repository.ImageRepository
	gallery ImageService
	likes   cache.LikeStore
	logger  *slog.Logger
	now     func() time.Time
}

func NewPostService(
	tx Transactor,
	pub EventPublisher,
	posts repository.PostRepository,
	members repository.MemberRepository,
	images repository.ImageRepository,
	gallery ImageService,
	likes cache.LikeStore,
	logger *slog.Logger,
) PostService {
	return &postService{
		tx:      tx,
		pub:     pub,
		posts:   posts,
		members: members,
		images:  images,
		gallery: gallery,
		likes:   likes,
		logger:  logger.With("component", "post_service"),
		now:     utcNow,
	}
}

func (s *postService) Create(ctx context.Context, writerID int64, content string, imageIDs []int64) (*model.Post, error) {
	var created *model.Post
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		writer, err := s.members.FindByID(ctx, writerID)
		if err != nil {
			return notFound(err, ErrMemberNotFound)
		}
		p, err := model.NewPost(writer, content, s.now())
		if err != nil {
			return err
		}
		created, err = s.posts.Create(ctx, p)
		if err != nil {
			return fmt.Errorf("create post: %w", err)
		}
		return s.attachImages(ctx, writerID, created.ID, imageIDs)
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *postService) attachImages(ctx context.Context, writerID, postID int64, imageIDs []int64) error {
	ids := uniqueIDs(imageIDs)
	if len(ids) == 0 {
		return nil
	}
	imgs, err := s.images.FindByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("find images: %w", err)
	}
	if len(imgs) != len(ids) {
		return ErrImageNotFound
	}
	for _, img := range imgs {
		if img.UploaderID != writerID {
			return ErrImageNotOwned
		}
		if img.PostID != nil {
			return ErrImageAlreadyAttached
		}
	}
	if err := s.images.AttachToPost(ctx, ids, postID); err != nil {
		return fmt.Errorf("attach images: %w", err)
	}
	return nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (s *postService) Get(ctx context.Context, id int64) (*PostView, error) {
	p, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	imgs, err := s.gallery.ListByPost(ctx, id)
	if err != nil {
		return nil, err
	}
	// Likes are advisory; an unreachable redis shows zero instead of failing the read.
	n, err := s.likes.Count(ctx, id)
	if err != nil {
		s.logger.Warn("like_count_unavailable", "post_id", id, "error", err)
	}
	return &PostView{Post: *p, LikeCount: n, Images: imgs}, nil
}

func (s *postService) Update(ctx context.Context, writerID, id int64, content string) (*model.Post, error) {
	var p *model.Post
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.posts.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrPostNotFound)
		}
		if err := p.Edit(writerID, content, s.now()); err != nil {
			return err
		}
		return notFound(s.posts.Update(ctx, p), ErrPostNotFound)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *postService) Delete(ctx context.Context, writerID, id int64) error {
	return inTx(ctx, s.tx, s.pub, func(ctx context.Context, collect func(...model.Event)) error {
		p, err := s.posts.FindByID(ctx, id)
		if err != nil {
			return notFound(err, ErrPostNotFound)
		}
		imgs, err := s.images.ListByPost(ctx, id)
		if err != nil {
			return fmt.Errorf("list images: %w", err)
		}
		paths := make([]string, 0, len(imgs))
		for _, img := range imgs {
			paths = append(paths, img.StoragePath)
		}
		if err := p.MarkDeleted(writerID, paths); err != nil {
			return err
		}
		if err := s.posts.Delete(ctx, id); err != nil {
			return notFound(err, ErrPostNotFound)
		}
		collect(p.PullEvents()...)
		return nil
	})
}

func (s *postService) ListByWriter(ctx context.Context, writerID int64, limit, offset int) (*ListResult[model.Post], error) {
	res, err := s.posts.ListByWriter(ctx, writerID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *postService) Feed(ctx context.Context, memberID int64, limit, offset int) (*ListResult[model.Post], error) {
	res, err := s.posts.ListFeed(ctx, memberID, pageQuery(limit, offset))
	if err != nil {
		return nil, err
	}
	return listResult(res), nil
}

func (s *postService) ToggleLike(ctx context.Context, memberID, postID int64) (*LikeResult, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		return nil, notFound(err, ErrPostNotFound)
	}
	liked, n, err := s.likes.Toggle(ctx, postID, memberID)
	if err != nil {
		return nil, err
	}
	return &LikeResult{Liked: liked, LikeCount: n}, nil
}
