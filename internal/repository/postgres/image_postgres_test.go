package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"socialapi/internal/model"
)

var imageRows = []string{"id", "uploader_id", "post_id", "storage_path", "content_type", "size", "created_at"}

// passthrough lets array arguments reach sqlmock unchanged, the way pgx accepts them.
type passthrough struct{}

func (passthrough) ConvertValue(v any) (driver.Value, error) { return v, nil }

func TestImagePostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewImagePostgres(db)
	ctx := context.Background()

	now := time.Now().UTC()
	img := &model.Image{
		UploaderID:  7,
		StoragePath: "images/7/abc.png",
		ContentType: "image/png",
		Size:        123,
		CreatedAt:   now,
	}

	rows := sqlmock.NewRows(imageRows).
		AddRow(int64(1), img.UploaderID, nil, img.StoragePath, img.ContentType, img.Size, img.CreatedAt)

	mock.ExpectQuery("INSERT INTO images").
		WithArgs(img.UploaderID, nil, img.StoragePath, img.ContentType, img.Size, img.CreatedAt).
		WillReturnRows(rows)

	result, err := repo.Create(ctx, img)

	assert.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, int64(1), result.ID)
	assert.Nil(t, result.PostID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImagePostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewImagePostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(imageRows).
			AddRow(int64(3), int64(7), int64(11), "images/7/x.jpg", "image/jpeg", int64(100), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM images WHERE id = ?").
			WithArgs(int64(3)).
			WillReturnRows(rows)

		img, err := repo.FindByID(ctx, 3)

		assert.NoError(t, err)
		require.NotNil(t, img)
		assert.Equal(t, int64(3), img.ID)
		require.NotNil(t, img.PostID)
		assert.Equal(t, int64(11), *img.PostID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM images WHERE id = ?").
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		img, err := repo.FindByID(ctx, 99)

		assert.Error(t, err)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, img)
	})
}

func TestImagePostgres_FindByIDs(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(passthrough{}))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewImagePostgres(db)
	ctx := context.Background()

	t.Run("empty input skips the query", func(t *testing.T) {
		imgs, err := repo.FindByIDs(ctx, nil)
		assert.NoError(t, err)
		assert.Empty(t, imgs)
	})

	t.Run("returns existing rows", func(t *testing.T) {
		rows := sqlmock.NewRows(imageRows).
			AddRow(int64(1), int64(7), nil, "images/7/a.png", "image/png", int64(10), time.Now()).
			AddRow(int64(2), int64(7), nil, "images/7/b.png", "image/png", int64(20), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM images WHERE id = ANY").
			WithArgs([]int64{1, 2, 5}).
			WillReturnRows(rows)

		imgs, err := repo.FindByIDs(ctx, []int64{1, 2, 5})

		assert.NoError(t, err)
		assert.Len(t, imgs, 2)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImagePostgres_AttachToPost(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.ValueConverterOption(passthrough{}))
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewImagePostgres(db)

	mock.ExpectExec("UPDATE images SET post_id").
		WithArgs([]int64{1, 2}, int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = repo.AttachToPost(context.Background(), []int64{1, 2}, 11)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestImagePostgres_Delete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewImagePostgres(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM images WHERE id = ?").
			WithArgs(int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, 3))
	})

	t.Run("missing row", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM images WHERE id = ?").
			WithArgs(int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 4), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
