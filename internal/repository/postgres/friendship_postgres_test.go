package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialapi/internal/model"
	"socialapi/internal/repository"
)

var friendshipRows = []string{"id", "requester_id", "requester_nickname", "requester_profile_image_url", "addressee_id", "addressee_nickname", "addressee_profile_image_url", "status", "created_at", "updated_at"}

func TestFriendshipPostgres_FindBetween(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT (.+) FROM friendships WHERE").
		WithArgs(int64(2), int64(1)).
		WillReturnRows(sqlmock.NewRows(friendshipRows).
			AddRow(int64(5), int64(1), "alice", "", int64(2), "bob", "", "PENDING", now, now))

	f, err := NewFriendshipPostgres(db).FindBetween(context.Background(), 2, 1)

	require.NoError(t, err)
	assert.Equal(t, model.FriendshipStatusPending, f.Status)
	assert.Equal(t, int64(1), f.RequesterID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipPostgres_ListPendingReceived(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM friendships WHERE status = 'PENDING' AND addressee_id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM friendships WHERE status = 'PENDING'").
		WithArgs(int64(2), 20, 0).
		WillReturnRows(sqlmock.NewRows(friendshipRows).
			AddRow(int64(5), int64(1), "alice", "", int64(2), "bob", "", "PENDING", now, now))

	res, err := NewFriendshipPostgres(db).ListPendingReceived(context.Background(), 2, repository.PageQuery{Limit: 20})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "alice", res.Items[0].RequesterNickname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFriendshipPostgres_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	f := &model.Friendship{
		ID:                5,
		RequesterID:       2,
		RequesterNickname: "bob",
		AddresseeID:       1,
		AddresseeNickname: "alice",
		Status:            model.FriendshipStatusPending,
		UpdatedAt:         now,
	}

	mock.ExpectExec("UPDATE friendships").
		WithArgs(int64(5), int64(2), "bob", "", int64(1), "alice", "", "PENDING", now).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, NewFriendshipPostgres(db).Update(context.Background(), f))
	assert.NoError(t, mock.ExpectationsWereMet())
}
