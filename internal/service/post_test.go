package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialapi/internal/apperr"
	cacheMocks "socialapi/internal/cache/mocks"
	"socialapi/internal/logging"
	"socialapi/internal/model"
	"socialapi/internal/repository"
	repoMocks "socialapi/internal/repository/mocks"
	storeMocks "socialapi/internal/storage/mocks"
)

type postFixture struct {
	svc     PostService
	pub     *recordingPublisher
	posts   *repoMocks.MockPostRepository
	members *repoMocks.MockMemberRepository
	images  *repoMocks.MockImageRepository
	store   *storeMocks.MockStorage
	likes   *cacheMocks.MockLikeStore
}

func newPostFixture() *postFixture {
	f := &postFixture{
		pub:     &recordingPublisher{},
		posts:   new(repoMocks.MockPostRepository),
		members: new(repoMocks.MockMemberRepository),
		images:  new(repoMocks.MockImageRepository),
		store:   new(storeMocks.MockStorage),
		likes:   new(cacheMocks.MockLikeStore),
	}
	gallery := NewImageService(f.store, f.images, time.Minute)
	f.svc = NewPostService(&fakeTx{}, f.pub, f.posts, f.members, f.images, gallery, f.likes, logging.Discard())
	return f
}

func int64Ptr(v int64) *int64 { return &v }

func TestPostService_Create(t *testing.T) {
	ctx := context.Background()
	writer := &model.Member{ID: 1, Nickname: "alice"}

	tests := []struct {
		name       string
		imageIDs   []int64
		setupMocks func(f *postFixture)
		wantErr    error
	}{
		{
			name: "without images",
			setupMocks: func(f *postFixture) {
				f.posts.On("Create", ctx, mock.AnythingOfType("*model.Post")).
					Return(&model.Post{ID: 10, WriterID: 1, WriterNickname: "alice", Content: "hi"}, nil)
			},
		},
		{
			name:     "attaches own images once",
			imageIDs: []int64{3, 4, 3},
			setupMocks: func(f *postFixture) {
				f.posts.On("Create", ctx, mock.AnythingOfType("*model.Post")).
					Return(&model.Post{ID: 10, WriterID: 1}, nil)
				f.images.On("FindByIDs", ctx, []int64{3, 4}).Return([]model.Image{
					{ID: 3, UploaderID: 1},
					{ID: 4, UploaderID: 1},
				}, nil)
				f.images.On("AttachToPost", ctx, []int64{3, 4}, int64(10)).Return(nil)
			},
		},
		{
			name:     "missing image",
			imageIDs: []int64{3, 4},
			setupMocks: func(f *postFixture) {
				f.posts.On("Create", ctx, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: 10, WriterID: 1}, nil)
				f.images.On("FindByIDs", ctx, []int64{3, 4}).Return([]model.Image{{ID: 3, UploaderID: 1}}, nil)
			},
			wantErr: ErrImageNotFound,
		},
		{
			name:     "image of another member",
			imageIDs: []int64{3},
			setupMocks: func(f *postFixture) {
				f.posts.On("Create", ctx, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: 10, WriterID: 1}, nil)
				f.images.On("FindByIDs", ctx, []int64{3}).Return([]model.Image{{ID: 3, UploaderID: 2}}, nil)
			},
			wantErr: ErrImageNotOwned,
		},
		{
			name:     "image already attached",
			imageIDs: []int64{3},
			setupMocks: func(f *postFixture) {
				f.posts.On("Create", ctx, mock.AnythingOfType("*model.Post")).Return(&model.Post{ID: 10, WriterID: 1}, nil)
				f.images.On("FindByIDs", ctx, []int64{3}).Return([]model.Image{{ID: 3, UploaderID: 1, PostID: int64Ptr(5)}}, nil)
			},
			wantErr: ErrImageAlreadyAttached,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostFixture()
			f.members.On("FindByID", ctx, int64(1)).Return(writer, nil)
			tt.setupMocks(f)

			p, err := f.svc.Create(ctx, 1, "hi", tt.imageIDs)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				f.images.AssertNotCalled(t, "AttachToPost", mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(10), p.ID)
			f.posts.AssertExpectations(t)
			f.images.AssertExpectations(t)
		})
	}
}

func TestPostService_Create_BlankContent(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture()
	f.members.On("FindByID", ctx, int64(1)).Return(&model.Member{ID: 1}, nil)

	_, err := f.svc.Create(ctx, 1, "   ", nil)
	assertKind(t, err, apperr.KindValidation)
	f.posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPostService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("with likes and images", func(t *testing.T) {
		f := newPostFixture()
		f.posts.On("FindByID", ctx, int64(10)).Return(&model.Post{ID: 10, Content: "hi"}, nil)
		f.images.On("ListByPost", ctx, int64(10)).Return([]model.Image{{ID: 3, StoragePath: "images/1/a.png"}}, nil)
		f.store.On("PresignGet", ctx, "images/1/a.png", time.Minute).Return("https://signed", nil)
		f.likes.On("Count", ctx, int64(10)).Return(int64(4), nil)

		v, err := f.svc.Get(ctx, 10)
		require.NoError(t, err)
		assert.Equal(t, int64(4), v.LikeCount)
		require.Len(t, v.Images, 1)
		assert.Equal(t, "https://signed", v.Images[0].URL)
	})

	t.Run("like store down", func(t *testing.T) {
		f := newPostFixture()
		f.posts.On("FindByID", ctx, int64(10)).Return(&model.Post{ID: 10}, nil)
		f.images.On("ListByPost", ctx, int64(10)).Return([]model.Image{}, nil)
		f.likes.On("Count", ctx, int64(10)).Return(int64(0), errors.New("redis down"))

		v, err := f.svc.Get(ctx, 10)
		require.NoError(t, err)
		assert.Zero(t, v.LikeCount)
	})

	t.Run("not found", func(t *testing.T) {
		f := newPostFixture()
		f.posts.On("FindByID", ctx, int64(10)).Return(nil, sql.ErrNoRows)
		_, err := f.svc.Get(ctx, 10)
		assert.ErrorIs(t, err, ErrPostNotFound)
	})
}

func TestPostService_Update(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture()
	f.posts.On("FindByID", ctx, int64(10)).Return(&model.Post{ID: 10, WriterID: 1, Content: "old"}, nil)
	f.posts.On("Update", ctx, mock.MatchedBy(func(p *model.Post) bool { return p.Content == "new" })).Return(nil)

	p, err := f.svc.Update(ctx, 1, 10, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", p.Content)

	_, err = f.svc.Update(ctx, 2, 10, "new")
	assertKind(t, err, apperr.KindUnauthorized)
}

func TestPostService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("writer deletes and event carries image paths", func(t *testing.T) {
		f := newPostFixture()
		f.posts.On("FindByID", ctx, int64(10)).Return(&model.Post{ID: 10, WriterID: 1}, nil)
		f.images.On("ListByPost", ctx, int64(10)).Return([]model.Image{{StoragePath: "images/1/a.png"}}, nil)
		f.posts.On("Delete", ctx, int64(10)).Return(nil)

		require.NoError(t, f.svc.Delete(ctx, 1, 10))
		require.Len(t, f.pub.events, 1)
		ev := f.pub.events[0].(model.PostDeleted)
		assert.Equal(t, int64(10), ev.PostID)
		assert.Equal(t, []string{"images/1/a.png"}, ev.StoragePaths)
	})

	t.Run("other member", func(t *testing.T) {
		f := newPostFixture()
		f.posts.On("FindByID", ctx, int64(10)).Return(&model.Post{ID: 10, WriterID: 1}, nil)
		f.images.On("ListByPost", ctx, int64(10)).Return([]model.Image{}, nil)

		assertKind(t, f.svc.Delete(ctx, 2, 10), apperr.KindUnauthorized)
		assert.Empty(t, f.pub.events)
		f.posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestPostService_Lists(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture()
	page := &repository.PageResult[model.Post]{Items: []model.Post{{ID: 2}, {ID: 1}}, Total: 2}
	f.posts.On("ListByWriter", ctx, int64(1), repository.PageQuery{Limit: 10, Offset: 0}).Return(page, nil)
	f.posts.On("ListFeed", ctx, int64(1), repository.PageQuery{Limit: 100, Offset: 20}).Return(page, nil)

	res, err := f.svc.ListByWriter(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)

	res, err = f.svc.Feed(ctx, 1, 1000, 20)
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)
}

func TestPostService_ToggleLike(t *testing.T) {
	ctx := context.Background()
	f := newPostFixture()
	f.posts.On("FindByID", ctx, int64(10)).Return(&model.Post{ID: 10}, nil)
	f.posts.On("FindByID", ctx, int64(11)).Return(nil, sql.ErrNoRows)
	f.likes.On("Toggle", ctx, int64(10), int64(1)).Return(true, int64(3), nil)

	res, err := f.svc.ToggleLike(ctx, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, &LikeResult{Liked: true, LikeCount: 3}, res)

	_, err = f.svc.ToggleLike(ctx, 1, 11)
	assert.ErrorIs(t, err, ErrPostNotFound)
}
