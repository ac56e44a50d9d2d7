package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// CommentPostgres is a PostgreSQL implementation of repository.CommentRepository.
type CommentPostgres struct {
	db *sql.DB
}

func NewCommentPostgres(db *sql.DB) *CommentPostgres {
	return &CommentPostgres{db: db}
}

var _ repository.CommentRepository = (*CommentPostgres)(nil)

const commentColumns = `id, post_id, writer_id, writer_nickname, writer_profile_image_url, content, created_at, updated_at`

func scanComment(s scanner) (*model.Comment, error) {
	var c model.Comment
	if err := s.Scan(
		&c.ID,
		&c.PostID,
		&c.WriterID,
		&c.WriterNickname,
		&c.WriterProfileImageURL,
		&c.Content,
		&c.CreatedAt,
		&c.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CommentPostgres) Create(ctx context.Context, c *model.Comment) (*model.Comment, error) {
	const q = `
		INSERT INTO comments (post_id, writer_id, writer_nickname, writer_profile_image_url, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + commentColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		c.PostID,
		c.WriterID,
		c.WriterNickname,
		c.WriterProfileImageURL,
		c.Content,
		c.CreatedAt,
		c.UpdatedAt,
	)
	return scanComment(row)
}

func (r *CommentPostgres) FindByID(ctx context.Context, id int64) (*model.Comment, error) {
	const q = `SELECT ` + commentColumns + ` FROM comments WHERE id = $1`
	return scanComment(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *CommentPostgres) Update(ctx context.Context, c *model.Comment) error {
	const q = `UPDATE comments SET content = $2, updated_at = $3 WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, c.ID, c.Content, c.UpdatedAt)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *CommentPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM comments WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *CommentPostgres) ListByPost(ctx context.Context, postID int64, pq repository.PageQuery) (*repository.PageResult[model.Comment], error) {
	conn := database.Conn(ctx, r.db)

	const qCount = `SELECT COUNT(*) FROM comments WHERE post_id = $1`
	var total int
	if err := conn.QueryRowContext(ctx, qCount, postID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + commentColumns + `
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC, id ASC
		LIMIT $2 OFFSET $3
	`
	rows, err := conn.QueryContext(ctx, qList, postID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Comment]{Items: items, Total: total}, nil
}

func (r *CommentPostgres) UpdateWriterProfile(ctx context.Context, writerID int64, nickname, profileImageURL string) (int64, error) {
	const q = `UPDATE comments SET writer_nickname = $2, writer_profile_image_url = $3 WHERE writer_id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, writerID, nickname, profileImageURL)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
