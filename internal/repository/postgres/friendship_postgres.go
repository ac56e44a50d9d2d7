package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// FriendshipPostgres is a PostgreSQL implementation of repository.FriendshipRepository.
type FriendshipPostgres struct {
	db *sql.DB
}

func NewFriendshipPostgres(db *sql.DB) *FriendshipPostgres {
	return &FriendshipPostgres{db: db}
}

var _ repository.FriendshipRepository = (*FriendshipPostgres)(nil)

const friendshipColumns = `id, requester_id, requester_nickname, requester_profile_image_url, addressee_id, addressee_nickname, addressee_profile_image_url, status, created_at, updated_at`

func scanFriendship(s scanner) (*model.Friendship, error) {
	var f model.Friendship
	if err := s.Scan(
		&f.ID,
		&f.RequesterID,
		&f.RequesterNickname,
		&f.RequesterProfileImageURL,
		&f.AddresseeID,
		&f.AddresseeNickname,
		&f.AddresseeProfileImageURL,
		&f.Status,
		&f.CreatedAt,
		&f.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FriendshipPostgres) Create(ctx context.Context, f *model.Friendship) (*model.Friendship, error) {
	const q = `
		INSERT INTO friendships (requester_id, requester_nickname, requester_profile_image_url, addressee_id, addressee_nickname, addressee_profile_image_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + friendshipColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		f.RequesterID,
		f.RequesterNickname,
		f.RequesterProfileImageURL,
		f.AddresseeID,
		f.AddresseeNickname,
		f.AddresseeProfileImageURL,
		string(f.Status),
		f.CreatedAt,
		f.UpdatedAt,
	)
	created, err := scanFriendship(row)
	if err != nil {
		return nil, mapUnique(err, nil)
	}
	return created, nil
}

func (r *FriendshipPostgres) FindByID(ctx context.Context, id int64) (*model.Friendship, error) {
	const q = `SELECT ` + friendshipColumns + ` FROM friendships WHERE id = $1`
	return scanFriendship(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *FriendshipPostgres) FindBetween(ctx context.Context, a, b int64) (*model.Friendship, error) {
	const q = `
		SELECT ` + friendshipColumns + `
		FROM friendships
		WHERE (requester_id = $1 AND addressee_id = $2) OR (requester_id = $2 AND addressee_id = $1)
	`
	return scanFriendship(database.Conn(ctx, r.db).QueryRowContext(ctx, q, a, b))
}

// Update persists status and both sides, since a reopened request may swap them.
func (r *FriendshipPostgres) Update(ctx context.Context, f *model.Friendship) error {
	const q = `
		UPDATE friendships
		SET requester_id = $2, requester_nickname = $3, requester_profile_image_url = $4,
		    addressee_id = $5, addressee_nickname = $6, addressee_profile_image_url = $7,
		    status = $8, updated_at = $9
		WHERE id = $1
	`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q,
		f.ID,
		f.RequesterID,
		f.RequesterNickname,
		f.RequesterProfileImageURL,
		f.AddresseeID,
		f.AddresseeNickname,
		f.AddresseeProfileImageURL,
		string(f.Status),
		f.UpdatedAt,
	)
	if err != nil {
		return mapUnique(err, nil)
	}
	return requireAffected(res)
}

func (r *FriendshipPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM friendships WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *FriendshipPostgres) ListAccepted(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Friendship], error) {
	const where = ` WHERE status = 'ACCEPTED' AND (requester_id = $1 OR addressee_id = $1)`
	return r.page(ctx, where, memberID, pq)
}

func (r *FriendshipPostgres) CountAccepted(ctx context.Context, memberID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM friendships WHERE status = 'ACCEPTED' AND (requester_id = $1 OR addressee_id = $1)`
	var n int
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, memberID).Scan(&n)
	return n, err
}

func (r *FriendshipPostgres) ListPendingReceived(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Friendship], error) {
	const where = ` WHERE status = 'PENDING' AND addressee_id = $1`
	return r.page(ctx, where, memberID, pq)
}

func (r *FriendshipPostgres) page(ctx context.Context, where string, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Friendship], error) {
	conn := database.Conn(ctx, r.db)

	var total int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM friendships`+where, memberID).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + friendshipColumns + ` FROM friendships` + where + ` ORDER BY updated_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := conn.QueryContext(ctx, qList, memberID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Friendship, 0)
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Friendship]{Items: items, Total: total}, nil
}

func (r *FriendshipPostgres) UpdateMemberProfile(ctx context.Context, memberID int64, nickname, profileImageURL string) (int64, error) {
	const q = `
		UPDATE friendships
		SET requester_nickname          = CASE WHEN requester_id = $1 THEN $2 ELSE requester_nickname END,
		    requester_profile_image_url = CASE WHEN requester_id = $1 THEN $3 ELSE requester_profile_image_url END,
		    addressee_nickname          = CASE WHEN addressee_id = $1 THEN $2 ELSE addressee_nickname END,
		    addressee_profile_image_url = CASE WHEN addressee_id = $1 THEN $3 ELSE addressee_profile_image_url END
		WHERE requester_id = $1 OR addressee_id = $1
	`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, memberID, nickname, profileImageURL)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
