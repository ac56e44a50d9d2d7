package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// PostPostgres is a PostgreSQL implementation of repository.PostRepository.
type PostPostgres struct {
	db *sql.DB
}

func NewPostPostgres(db *sql.DB) *PostPostgres {
	return &PostPostgres{db: db}
}

var _ repository.PostRepository = (*PostPostgres)(nil)

const postColumns = `id, writer_id, writer_nickname, content, created_at, updated_at`

func scanPost(s scanner) (*model.Post, error) {
	var p model.Post
	if err := s.Scan(&p.ID, &p.WriterID, &p.WriterNickname, &p.Content, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PostPostgres) Create(ctx context.Context, p *model.Post) (*model.Post, error) {
	const q = `
		INSERT INTO posts (writer_id, writer_nickname, content, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + postColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q, p.WriterID, p.WriterNickname, p.Content, p.CreatedAt, p.UpdatedAt)
	return scanPost(row)
}

func (r *PostPostgres) FindByID(ctx context.Context, id int64) (*model.Post, error) {
	const q = `SELECT ` + postColumns + ` FROM posts WHERE id = $1`
	return scanPost(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *PostPostgres) Update(ctx context.Context, p *model.Post) error {
	const q = `UPDATE posts SET content = $2, updated_at = $3 WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, p.ID, p.Content, p.UpdatedAt)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PostPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM posts WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *PostPostgres) ListByWriter(ctx context.Context, writerID int64, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	const qCount = `SELECT COUNT(*) FROM posts WHERE writer_id = $1`
	const qList = `
		SELECT ` + postColumns + `
		FROM posts
		WHERE writer_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	return r.page(ctx, qCount, qList, writerID, pq)
}

func (r *PostPostgres) ListFeed(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	const where = `
		WHERE writer_id = $1
		   OR writer_id IN (SELECT followee_id FROM follows WHERE follower_id = $1)`
	const qCount = `SELECT COUNT(*) FROM posts` + where
	const qList = `SELECT ` + postColumns + ` FROM posts` + where + `
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`
	return r.page(ctx, qCount, qList, memberID, pq)
}

func (r *PostPostgres) page(ctx context.Context, qCount, qList string, id int64, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	conn := database.Conn(ctx, r.db)

	var total int
	if err := conn.QueryRowContext(ctx, qCount, id).Scan(&total); err != nil {
		return nil, err
	}

	rows, err := conn.QueryContext(ctx, qList, id, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	items, err := collectPosts(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Post]{Items: items, Total: total}, nil
}

func collectPosts(rows *sql.Rows) ([]model.Post, error) {
	defer rows.Close()
	items := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostPostgres) UpdateWriterNickname(ctx context.Context, writerID int64, nickname string) (int64, error) {
	const q = `UPDATE posts SET writer_nickname = $2 WHERE writer_id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, writerID, nickname)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
