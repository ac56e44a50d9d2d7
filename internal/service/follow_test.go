package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialapi/internal/apperr"
	"socialapi/internal/model"
	"socialapi/internal/repository"
	repoMocks "socialapi/internal/repository/mocks"
)

func TestFollowService_Follow(t *testing.T) {
	ctx := context.Background()
	alice := &model.Member{ID: 1, Nickname: "alice"}
	bob := &model.Member{ID: 2, Nickname: "bob"}

	tests := []struct {
		name       string
		followeeID int64
		setupMocks func(f *repoMocks.MockFollowRepository, m *repoMocks.MockMemberRepository)
		wantErr    error
		wantKind   apperr.Kind
		wantErrMsg string
	}{
		{
			name:       "happy path",
			followeeID: 2,
			setupMocks: func(f *repoMocks.MockFollowRepository, m *repoMocks.MockMemberRepository) {
				m.On("FindByID", ctx, int64(2)).Return(bob, nil)
				f.On("Find", ctx, int64(1), int64(2)).Return(nil, sql.ErrNoRows)
				f.On("Create", ctx, mock.MatchedBy(func(fl *model.Follow) bool {
					return fl.FollowerNickname == "alice" && fl.FolloweeNickname == "bob"
				})).Return(&model.Follow{ID: 7, FollowerID: 1, FollowerNickname: "alice", FolloweeID: 2}, nil)
			},
		},
		{
			name:       "self follow",
			followeeID: 1,
			setupMocks: func(f *repoMocks.MockFollowRepository, m *repoMocks.MockMemberRepository) {},
			wantKind:   apperr.KindValidation,
		},
		{
			name:       "missing followee",
			followeeID: 3,
			setupMocks: func(f *repoMocks.MockFollowRepository, m *repoMocks.MockMemberRepository) {
				m.On("FindByID", ctx, int64(3)).Return(nil, sql.ErrNoRows)
			},
			wantErr: ErrMemberNotFound,
		},
		{
			name:       "already following",
			followeeID: 2,
			setupMocks: func(f *repoMocks.MockFollowRepository, m *repoMocks.MockMemberRepository) {
				m.On("FindByID", ctx, int64(2)).Return(bob, nil)
				f.On("Find", ctx, int64(1), int64(2)).Return(&model.Follow{ID: 7}, nil)
			},
			wantErr: ErrAlreadyFollowing,
		},
		{
			name:       "concurrent follow hits unique key",
			followeeID: 2,
			setupMocks: func(f *repoMocks.MockFollowRepository, m *repoMocks.MockMemberRepository) {
				m.On("FindByID", ctx, int64(2)).Return(bob, nil)
				f.On("Find", ctx, int64(1), int64(2)).Return(nil, sql.ErrNoRows)
				f.On("Create", ctx, mock.Anything).Return(nil, &repository.DuplicateError{})
			},
			wantErr: ErrAlreadyFollowing,
		},
		{
			name:       "lookup failure",
			followeeID: 2,
			setupMocks: func(f *repoMocks.MockFollowRepository, m *repoMocks.MockMemberRepository) {
				m.On("FindByID", ctx, int64(2)).Return(bob, nil)
				f.On("Find", ctx, int64(1), int64(2)).Return(nil, errors.New("conn reset"))
			},
			wantErrMsg: "find follow: conn reset",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := &recordingPublisher{}
			follows := new(repoMocks.MockFollowRepository)
			members := new(repoMocks.MockMemberRepository)
			members.On("FindByID", ctx, int64(1)).Return(alice, nil)
			tt.setupMocks(follows, members)
			svc := NewFollowService(&fakeTx{}, pub, follows, members)

			fl, err := svc.Follow(ctx, 1, tt.followeeID)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantKind != 0:
				assertKind(t, err, tt.wantKind)
			case tt.wantErrMsg != "":
				assert.ErrorContains(t, err, tt.wantErrMsg)
			default:
				require.NoError(t, err)
				assert.Equal(t, int64(7), fl.ID)
				assert.Equal(t, []model.Event{model.MemberFollowed{
					FollowID:         7,
					FollowerID:       1,
					FollowerNickname: "alice",
					FolloweeID:       2,
				}}, pub.events)
				return
			}
			assert.Empty(t, pub.events)
		})
	}
}

func TestFollowService_Unfollow(t *testing.T) {
	ctx := context.Background()
	follows := new(repoMocks.MockFollowRepository)
	svc := NewFollowService(&fakeTx{}, &recordingPublisher{}, follows, new(repoMocks.MockMemberRepository))

	follows.On("Find", ctx, int64(1), int64(2)).Return(&model.Follow{ID: 7}, nil)
	follows.On("Find", ctx, int64(1), int64(3)).Return(nil, sql.ErrNoRows)
	follows.On("Delete", ctx, int64(7)).Return(nil)

	assert.NoError(t, svc.Unfollow(ctx, 1, 2))
	assert.ErrorIs(t, svc.Unfollow(ctx, 1, 3), ErrNotFollowing)
	follows.AssertExpectations(t)
}

func TestFollowService_ListsAndCounts(t *testing.T) {
	ctx := context.Background()
	follows := new(repoMocks.MockFollowRepository)
	svc := NewFollowService(&fakeTx{}, &recordingPublisher{}, follows, new(repoMocks.MockMemberRepository))

	page := &repository.PageResult[model.Follow]{Items: []model.Follow{{ID: 1}}, Total: 1}
	follows.On("ListFollowers", ctx, int64(1), repository.PageQuery{Limit: 5, Offset: 0}).Return(page, nil)
	follows.On("ListFollowings", ctx, int64(1), repository.PageQuery{Limit: 10, Offset: 10}).Return(page, nil)
	follows.On("Counts", ctx, int64(1)).Return(model.FollowCounts{Followers: 3, Followings: 4}, nil)

	res, err := svc.ListFollowers(ctx, 1, 5, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)

	res, err = svc.ListFollowings(ctx, 1, 0, 10)
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)

	c, err := svc.Counts(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, model.FollowCounts{Followers: 3, Followings: 4}, c)
}
