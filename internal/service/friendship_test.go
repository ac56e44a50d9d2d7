package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"socialapi/internal/apperr"
	"socialapi/internal/model"
	"socialapi/internal/repository"
	repoMocks "socialapi/internal/repository/mocks"
)

type friendshipFixture struct {
	svc         FriendshipService
	pub         *recordingPublisher
	friendships *repoMocks.MockFriendshipRepository
	members     *repoMocks.MockMemberRepository
}

func newFriendshipFixture() *friendshipFixture {
	f := &friendshipFixture{
		pub:         &recordingPublisher{},
		friendships: new(repoMocks.MockFriendshipRepository),
		members:     new(repoMocks.MockMemberRepository),
	}
	f.svc = NewFriendshipService(&fakeTx{}, f.pub, f.friendships, f.members)
	f.members.On("FindByID", mock.Anything, int64(1)).Return(&model.Member{ID: 1, Nickname: "alice"}, nil).Maybe()
	f.members.On("FindByID", mock.Anything, int64(2)).Return(&model.Member{ID: 2, Nickname: "bob"}, nil).Maybe()
	return f
}

func TestFriendshipService_Request(t *testing.T) {
	ctx := context.Background()

	t.Run("new request", func(t *testing.T) {
		f := newFriendshipFixture()
		f.friendships.On("FindBetween", ctx, int64(1), int64(2)).Return(nil, sql.ErrNoRows)
		f.friendships.On("Create", ctx, mock.MatchedBy(func(fr *model.Friendship) bool {
			return fr.Status == model.FriendshipStatusPending && fr.RequesterNickname == "alice"
		})).Return(&model.Friendship{ID: 4, RequesterID: 1, RequesterNickname: "alice", AddresseeID: 2, Status: model.FriendshipStatusPending}, nil)

		fr, err := f.svc.Request(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, int64(4), fr.ID)
		assert.Equal(t, []model.Event{model.FriendshipRequested{
			FriendshipID:      4,
			RequesterID:       1,
			RequesterNickname: "alice",
			AddresseeID:       2,
		}}, f.pub.events)
	})

	t.Run("reopens rejected request from the other side", func(t *testing.T) {
		f := newFriendshipFixture()
		rejected := &model.Friendship{ID: 4, RequesterID: 2, AddresseeID: 1, Status: model.FriendshipStatusRejected}
		f.friendships.On("FindBetween", ctx, int64(1), int64(2)).Return(rejected, nil)
		f.friendships.On("Update", ctx, mock.MatchedBy(func(fr *model.Friendship) bool {
			return fr.RequesterID == 1 && fr.AddresseeID == 2 && fr.Status == model.FriendshipStatusPending
		})).Return(nil)

		fr, err := f.svc.Request(ctx, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, model.FriendshipStatusPending, fr.Status)
		assert.Equal(t, []string{model.EventFriendshipRequested}, f.pub.names())
		f.friendships.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("pending request exists", func(t *testing.T) {
		f := newFriendshipFixture()
		f.friendships.On("FindBetween", ctx, int64(1), int64(2)).
			Return(&model.Friendship{ID: 4, RequesterID: 2, AddresseeID: 1, Status: model.FriendshipStatusPending}, nil)

		_, err := f.svc.Request(ctx, 1, 2)
		assertKind(t, err, apperr.KindInvalidState)
		assert.Empty(t, f.pub.events)
	})

	t.Run("concurrent request hits pair key", func(t *testing.T) {
		f := newFriendshipFixture()
		f.friendships.On("FindBetween", ctx, int64(1), int64(2)).Return(nil, sql.ErrNoRows)
		f.friendships.On("Create", ctx, mock.Anything).Return(nil, &repository.DuplicateError{})

		_, err := f.svc.Request(ctx, 1, 2)
		assert.ErrorIs(t, err, ErrFriendshipExists)
		assert.Empty(t, f.pub.events)
	})

	t.Run("self request", func(t *testing.T) {
		f := newFriendshipFixture()
		_, err := f.svc.Request(ctx, 1, 1)
		assertKind(t, err, apperr.KindValidation)
	})
}

func TestFriendshipService_Respond(t *testing.T) {
	ctx := context.Background()
	pending := func() *model.Friendship {
		return &model.Friendship{ID: 4, RequesterID: 1, AddresseeID: 2, AddresseeNickname: "bob", Status: model.FriendshipStatusPending}
	}

	t.Run("addressee accepts", func(t *testing.T) {
		f := newFriendshipFixture()
		f.friendships.On("FindByID", ctx, int64(4)).Return(pending(), nil)
		f.friendships.On("Update", ctx, mock.AnythingOfType("*model.Friendship")).Return(nil)

		fr, err := f.svc.Accept(ctx, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, model.FriendshipStatusAccepted, fr.Status)
		assert.Equal(t, []model.Event{model.FriendshipAccepted{
			FriendshipID:      4,
			RequesterID:       1,
			AddresseeID:       2,
			AddresseeNickname: "bob",
		}}, f.pub.events)
	})

	t.Run("requester cannot accept", func(t *testing.T) {
		f := newFriendshipFixture()
		f.friendships.On("FindByID", ctx, int64(4)).Return(pending(), nil)

		_, err := f.svc.Accept(ctx, 1, 4)
		assertKind(t, err, apperr.KindUnauthorized)
		assert.Empty(t, f.pub.events)
	})

	t.Run("reject emits nothing", func(t *testing.T) {
		f := newFriendshipFixture()
		f.friendships.On("FindByID", ctx, int64(4)).Return(pending(), nil)
		f.friendships.On("Update", ctx, mock.AnythingOfType("*model.Friendship")).Return(nil)

		fr, err := f.svc.Reject(ctx, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, model.FriendshipStatusRejected, fr.Status)
		assert.Empty(t, f.pub.events)
	})

	t.Run("not pending", func(t *testing.T) {
		f := newFriendshipFixture()
		accepted := pending()
		accepted.Status = model.FriendshipStatusAccepted
		f.friendships.On("FindByID", ctx, int64(4)).Return(accepted, nil)

		_, err := f.svc.Reject(ctx, 2, 4)
		assertKind(t, err, apperr.KindInvalidState)
	})

	t.Run("missing", func(t *testing.T) {
		f := newFriendshipFixture()
		f.friendships.On("FindByID", ctx, int64(4)).Return(nil, sql.ErrNoRows)

		_, err := f.svc.Accept(ctx, 2, 4)
		assert.ErrorIs(t, err, ErrFriendshipNotFound)
	})
}

func TestFriendshipService_Delete(t *testing.T) {
	ctx := context.Background()
	f := newFriendshipFixture()
	f.friendships.On("FindByID", ctx, int64(4)).
		Return(&model.Friendship{ID: 4, RequesterID: 1, AddresseeID: 2, Status: model.FriendshipStatusAccepted}, nil)
	f.friendships.On("Delete", ctx, int64(4)).Return(nil)

	assert.ErrorIs(t, f.svc.Delete(ctx, 3, 4), ErrNotFriendshipParty)
	assert.NoError(t, f.svc.Delete(ctx, 2, 4))
	f.friendships.AssertNumberOfCalls(t, "Delete", 1)
}

func TestFriendshipService_ListFriends(t *testing.T) {
	ctx := context.Background()
	since := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	f := newFriendshipFixture()
	f.friendships.On("ListAccepted", ctx, int64(1), repository.PageQuery{Limit: 10}).Return(&repository.PageResult[model.Friendship]{
		Items: []model.Friendship{
			{ID: 4, RequesterID: 1, AddresseeID: 2, AddresseeNickname: "bob", UpdatedAt: since},
			{ID: 5, RequesterID: 3, RequesterNickname: "carol", AddresseeID: 1, UpdatedAt: since},
		},
		Total: 2,
	}, nil)
	f.friendships.On("CountAccepted", ctx, int64(1)).Return(2, nil)

	res, err := f.svc.ListFriends(ctx, 1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, []model.Friend{
		{FriendshipID: 4, MemberID: 2, Nickname: "bob", Since: since},
		{FriendshipID: 5, MemberID: 3, Nickname: "carol", Since: since},
	}, res.Items)

	n, err := f.svc.CountFriends(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestFriendshipService_ListReceivedRequests(t *testing.T) {
	ctx := context.Background()
	f := newFriendshipFixture()
	f.friendships.On("ListPendingReceived", ctx, int64(2), repository.PageQuery{Limit: 10}).
		Return(&repository.PageResult[model.Friendship]{Items: []model.Friendship{{ID: 4}}, Total: 1}, nil)

	res, err := f.svc.ListReceivedRequests(ctx, 2, -1, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Items[0].ID)
}
