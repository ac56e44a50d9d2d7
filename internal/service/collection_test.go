package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialapi/internal/apperr"
	"socialapi/internal/model"
	"socialapi/internal/repository"
	repoMocks "socialapi/internal/repository/mocks"
)

func newCollectionService() (CollectionService, *repoMocks.MockCollectionRepository, *repoMocks.MockPostRepository) {
	collections := new(repoMocks.MockCollectionRepository)
	posts := new(repoMocks.MockPostRepository)
	return NewCollectionService(&fakeTx{}, collections, posts), collections, posts
}

func TestCollectionService_Create(t *testing.T) {
	ctx := context.Background()
	svc, collections, _ := newCollectionService()
	collections.On("Create", ctx, mock.MatchedBy(func(c *model.PostCollection) bool {
		return c.MemberID == 1 && c.Name == "later"
	})).Return(&model.PostCollection{ID: 3, MemberID: 1, Name: "later"}, nil)

	c, err := svc.Create(ctx, 1, "later")
	require.NoError(t, err)
	assert.Equal(t, int64(3), c.ID)

	_, err = svc.Create(ctx, 1, " ")
	assertKind(t, err, apperr.KindValidation)
}

func TestCollectionService_Rename(t *testing.T) {
	ctx := context.Background()
	svc, collections, _ := newCollectionService()
	collections.On("FindByID", ctx, int64(3)).Return(&model.PostCollection{ID: 3, MemberID: 1, Name: "old"}, nil)
	collections.On("Update", ctx, mock.MatchedBy(func(c *model.PostCollection) bool { return c.Name == "new" })).Return(nil)

	c, err := svc.Rename(ctx, 1, 3, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", c.Name)

	_, err = svc.Rename(ctx, 2, 3, "new")
	assertKind(t, err, apperr.KindUnauthorized)
}

func TestCollectionService_Posts(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		run     func(svc CollectionService) error
		setup   func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository)
		wantErr error
		kind    apperr.Kind
	}{
		{
			name: "add post",
			run:  func(svc CollectionService) error { return svc.AddPost(ctx, 1, 3, 10) },
			setup: func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository) {
				p.On("FindByID", ctx, int64(10)).Return(&model.Post{ID: 10}, nil)
				c.On("AddPost", ctx, int64(3), int64(10)).Return(nil)
			},
		},
		{
			name: "add missing post",
			run:  func(svc CollectionService) error { return svc.AddPost(ctx, 1, 3, 10) },
			setup: func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository) {
				p.On("FindByID", ctx, int64(10)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrPostNotFound,
		},
		{
			name:  "add to foreign collection",
			run:   func(svc CollectionService) error { return svc.AddPost(ctx, 2, 3, 10) },
			setup: func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository) {},
			kind:  apperr.KindUnauthorized,
		},
		{
			name: "remove post",
			run:  func(svc CollectionService) error { return svc.RemovePost(ctx, 1, 3, 10) },
			setup: func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository) {
				c.On("RemovePost", ctx, int64(3), int64(10)).Return(nil)
			},
		},
		{
			name: "remove absent post",
			run:  func(svc CollectionService) error { return svc.RemovePost(ctx, 1, 3, 10) },
			setup: func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository) {
				c.On("RemovePost", ctx, int64(3), int64(10)).Return(sql.ErrNoRows)
			},
			wantErr: ErrPostNotInCollection,
		},
		{
			name: "delete",
			run:  func(svc CollectionService) error { return svc.Delete(ctx, 1, 3) },
			setup: func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository) {
				c.On("Delete", ctx, int64(3)).Return(nil)
			},
		},
		{
			name: "list posts",
			run: func(svc CollectionService) error {
				_, err := svc.ListPosts(ctx, 1, 3, 0, 0)
				return err
			},
			setup: func(c *repoMocks.MockCollectionRepository, p *repoMocks.MockPostRepository) {
				c.On("ListPosts", ctx, int64(3), repository.PageQuery{Limit: 10}).
					Return(&repository.PageResult[model.Post]{Items: []model.Post{{ID: 10}}, Total: 1}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, collections, posts := newCollectionService()
			collections.On("FindByID", ctx, int64(3)).Return(&model.PostCollection{ID: 3, MemberID: 1}, nil)
			tt.setup(collections, posts)

			err := tt.run(svc)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.kind != 0:
				assertKind(t, err, tt.kind)
			default:
				assert.NoError(t, err)
			}
			collections.AssertExpectations(t)
			posts.AssertExpectations(t)
		})
	}
}

func TestCollectionService_MissingCollection(t *testing.T) {
	ctx := context.Background()
	svc, collections, _ := newCollectionService()
	collections.On("FindByID", ctx, int64(9)).Return(nil, sql.ErrNoRows)

	_, err := svc.ListPosts(ctx, 1, 9, 0, 0)
	assert.ErrorIs(t, err, ErrCollectionNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 1, 9), ErrCollectionNotFound)
}
