package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialapi/internal/repository"
)

func TestCollectionPostgres_AddPostIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewCollectionPostgres(db)
	for i := 0; i < 2; i++ {
		mock.ExpectExec("INSERT INTO collection_items (.+) ON CONFLICT").
			WithArgs(int64(1), int64(9)).
			WillReturnResult(sqlmock.NewResult(0, int64(1-i)))
	}

	assert.NoError(t, repo.AddPost(context.Background(), 1, 9))
	assert.NoError(t, repo.AddPost(context.Background(), 1, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionPostgres_RemovePostMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("DELETE FROM collection_items").
		WithArgs(int64(1), int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewCollectionPostgres(db).RemovePost(context.Background(), 1, 9)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollectionPostgres_ListPosts(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM collection_items").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT (.+) FROM collection_items ci JOIN posts p").
		WithArgs(int64(1), 10, 0).
		WillReturnRows(sqlmock.NewRows(postRows).AddRow(int64(9), int64(2), "bob", "saved", now, now))

	res, err := NewCollectionPostgres(db).ListPosts(context.Background(), 1, repository.PageQuery{Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Equal(t, "saved", res.Items[0].Content)
	assert.NoError(t, mock.ExpectationsWereMet())
}
