package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialapi/internal/model"
)

func TestMemberEventPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	e, err := model.NewMemberEvent(2, model.MemberEventFollow, 1, "alice", 1, now)
	require.NoError(t, err)

	mock.ExpectQuery("INSERT INTO member_events").
		WithArgs(int64(2), "FOLLOW", int64(1), "alice", int64(1), "alice started following you", false, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "member_id", "type", "actor_id", "actor_nickname", "target_id", "message", "read", "created_at"}).
			AddRow(int64(10), int64(2), "FOLLOW", int64(1), "alice", int64(1), "alice started following you", false, now))

	got, err := NewMemberEventPostgres(db).Create(context.Background(), e)

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, model.MemberEventFollow, got.Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMemberEventPostgres_CountUnread(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM member_events WHERE member_id = (.+) AND NOT read").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := NewMemberEventPostgres(db).CountUnread(context.Background(), 2)

	assert.NoError(t, err)
	assert.Equal(t, 4, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
