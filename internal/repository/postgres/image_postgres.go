package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// ImagePostgres is a PostgreSQL implementation of repository.ImageRepository.
// It stores image metadata only; object bytes live in object storage.
type ImagePostgres struct {
	db *sql.DB
}

// NewImagePostgres creates a new ImagePostgres repository.
func NewImagePostgres(db *sql.DB) *ImagePostgres {
	return &ImagePostgres{db: db}
}

var _ repository.ImageRepository = (*ImagePostgres)(nil)

const imageColumns = `id, uploader_id, post_id, storage_path, content_type, size, created_at`

func scanImage(s scanner) (*model.Image, error) {
	var (
		img    model.Image
		postID sql.NullInt64
	)
	if err := s.Scan(
		&img.ID,
		&img.UploaderID,
		&postID,
		&img.StoragePath,
		&img.ContentType,
		&img.Size,
		&img.CreatedAt,
	); err != nil {
		return nil, err
	}
	if postID.Valid {
		img.PostID = &postID.Int64
	}
	return &img, nil
}

func collectImages(rows *sql.Rows) ([]model.Image, error) {
	defer rows.Close()
	items := make([]model.Image, 0)
	for rows.Next() {
		img, err := scanImage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *img)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a new image row and returns the stored record.
func (r *ImagePostgres) Create(ctx context.Context, img *model.Image) (*model.Image, error) {
	const q = `
		INSERT INTO images (uploader_id, post_id, storage_path, content_type, size, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + imageColumns
	var postID sql.NullInt64
	if img.PostID != nil {
		postID = sql.NullInt64{Int64: *img.PostID, Valid: true}
	}
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		img.UploaderID,
		postID,
		img.StoragePath,
		img.ContentType,
		img.Size,
		img.CreatedAt,
	)
	return scanImage(row)
}

// FindByID fetches a single image by its ID.
func (r *ImagePostgres) FindByID(ctx context.Context, id int64) (*model.Image, error) {
	const q = `SELECT ` + imageColumns + ` FROM images WHERE id = $1`
	return scanImage(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

// FindByIDs returns the images that exist among ids, in ascending id order.
func (r *ImagePostgres) FindByIDs(ctx context.Context, ids []int64) ([]model.Image, error) {
	if len(ids) == 0 {
		return []model.Image{}, nil
	}
	const q = `SELECT ` + imageColumns + ` FROM images WHERE id = ANY($1) ORDER BY id`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	return collectImages(rows)
}

func (r *ImagePostgres) ListByPost(ctx context.Context, postID int64) ([]model.Image, error) {
	const q = `SELECT ` + imageColumns + ` FROM images WHERE post_id = $1 ORDER BY id`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, postID)
	if err != nil {
		return nil, err
	}
	return collectImages(rows)
}

func (r *ImagePostgres) ListByUploader(ctx context.Context, uploaderID int64) ([]model.Image, error) {
	const q = `SELECT ` + imageColumns + ` FROM images WHERE uploader_id = $1 ORDER BY id`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, uploaderID)
	if err != nil {
		return nil, err
	}
	return collectImages(rows)
}

func (r *ImagePostgres) AttachToPost(ctx context.Context, ids []int64, postID int64) error {
	if len(ids) == 0 {
		return nil
	}
	const q = `UPDATE images SET post_id = $2 WHERE id = ANY($1)`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, ids, postID)
	return err
}

// Delete removes an image row by ID.
func (r *ImagePostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM images WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
