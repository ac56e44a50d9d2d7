package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// CollectionPostgres is a PostgreSQL implementation of repository.CollectionRepository.
type CollectionPostgres struct {
	db *sql.DB
}

func NewCollectionPostgres(db *sql.DB) *CollectionPostgres {
	return &CollectionPostgres{db: db}
}

var _ repository.CollectionRepository = (*CollectionPostgres)(nil)

const collectionColumns = `id, member_id, name, created_at, updated_at`

func scanCollection(s scanner) (*model.PostCollection, error) {
	var c model.PostCollection
	if err := s.Scan(&c.ID, &c.MemberID, &c.Name, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CollectionPostgres) Create(ctx context.Context, c *model.PostCollection) (*model.PostCollection, error) {
	const q = `
		INSERT INTO post_collections (member_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + collectionColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q, c.MemberID, c.Name, c.CreatedAt, c.UpdatedAt)
	return scanCollection(row)
}

func (r *CollectionPostgres) FindByID(ctx context.Context, id int64) (*model.PostCollection, error) {
	const q = `SELECT ` + collectionColumns + ` FROM post_collections WHERE id = $1`
	return scanCollection(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *CollectionPostgres) ListByMember(ctx context.Context, memberID int64) ([]model.PostCollection, error) {
	const q = `SELECT ` + collectionColumns + ` FROM post_collections WHERE member_id = $1 ORDER BY created_at, id`
	rows, err := database.Conn(ctx, r.db).QueryContext(ctx, q, memberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.PostCollection, 0)
	for rows.Next() {
		c, err := scanCollection(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *CollectionPostgres) Update(ctx context.Context, c *model.PostCollection) error {
	const q = `UPDATE post_collections SET name = $2, updated_at = $3 WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, c.ID, c.Name, c.UpdatedAt)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// Delete removes the collection; its items go with it through ON DELETE CASCADE.
func (r *CollectionPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM post_collections WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *CollectionPostgres) AddPost(ctx context.Context, collectionID, postID int64) error {
	const q = `
		INSERT INTO collection_items (collection_id, post_id)
		VALUES ($1, $2)
		ON CONFLICT (collection_id, post_id) DO NOTHING
	`
	_, err := database.Conn(ctx, r.db).ExecContext(ctx, q, collectionID, postID)
	return err
}

func (r *CollectionPostgres) RemovePost(ctx context.Context, collectionID, postID int64) error {
	const q = `DELETE FROM collection_items WHERE collection_id = $1 AND post_id = $2`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, collectionID, postID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// ListPosts returns the saved posts, most recently saved first.
func (r *CollectionPostgres) ListPosts(ctx context.Context, collectionID int64, pq repository.PageQuery) (*repository.PageResult[model.Post], error) {
	conn := database.Conn(ctx, r.db)

	const qCount = `SELECT COUNT(*) FROM collection_items WHERE collection_id = $1`
	var total int
	if err := conn.QueryRowContext(ctx, qCount, collectionID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT p.id, p.writer_id, p.writer_nickname, p.content, p.created_at, p.updated_at
		FROM collection_items ci
		JOIN posts p ON p.id = ci.post_id
		WHERE ci.collection_id = $1
		ORDER BY ci.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := conn.QueryContext(ctx, qList, collectionID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	items, err := collectPosts(rows)
	if err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Post]{Items: items, Total: total}, nil
}
