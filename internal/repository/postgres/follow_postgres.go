package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// FollowPostgres is a PostgreSQL implementation of repository.FollowRepository.
type FollowPostgres struct {
	db *sql.DB
}

func NewFollowPostgres(db *sql.DB) *FollowPostgres {
	return &FollowPostgres{db: db}
}

var _ repository.FollowRepository = (*FollowPostgres)(nil)

const followColumns = `id, follower_id, follower_nickname, follower_profile_image_url, followee_id, followee_nickname, followee_profile_image_url, created_at`

func scanFollow(s scanner) (*model.Follow, error) {
	var f model.Follow
	if err := s.Scan(
		&f.ID,
		&f.FollowerID,
		&f.FollowerNickname,
		&f.FollowerProfileImageURL,
		&f.FolloweeID,
		&f.FolloweeNickname,
		&f.FolloweeProfileImageURL,
		&f.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FollowPostgres) Create(ctx context.Context, f *model.Follow) (*model.Follow, error) {
	const q = `
		INSERT INTO follows (follower_id, follower_nickname, follower_profile_image_url, followee_id, followee_nickname, followee_profile_image_url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + followColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		f.FollowerID,
		f.FollowerNickname,
		f.FollowerProfileImageURL,
		f.FolloweeID,
		f.FolloweeNickname,
		f.FolloweeProfileImageURL,
		f.CreatedAt,
	)
	created, err := scanFollow(row)
	if err != nil {
		return nil, mapUnique(err, nil)
	}
	return created, nil
}

func (r *FollowPostgres) Find(ctx context.Context, followerID, followeeID int64) (*model.Follow, error) {
	const q = `SELECT ` + followColumns + ` FROM follows WHERE follower_id = $1 AND followee_id = $2`
	return scanFollow(database.Conn(ctx, r.db).QueryRowContext(ctx, q, followerID, followeeID))
}

func (r *FollowPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM follows WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *FollowPostgres) ListFollowers(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Follow], error) {
	return r.page(ctx, "followee_id", memberID, pq)
}

func (r *FollowPostgres) ListFollowings(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Follow], error) {
	return r.page(ctx, "follower_id", memberID, pq)
}

// page lists follows filtered on column, which is one of two fixed names.
func (r *FollowPostgres) page(ctx context.Context, column string, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.Follow], error) {
	conn := database.Conn(ctx, r.db)

	var total int
	if err := conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM follows WHERE `+column+` = $1`, memberID).Scan(&total); err != nil {
		return nil, err
	}

	qList := `SELECT ` + followColumns + ` FROM follows WHERE ` + column + ` = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
	rows, err := conn.QueryContext(ctx, qList, memberID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Follow, 0)
	for rows.Next() {
		f, err := scanFollow(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.Follow]{Items: items, Total: total}, nil
}

func (r *FollowPostgres) Counts(ctx context.Context, memberID int64) (model.FollowCounts, error) {
	const q = `
		SELECT
			COUNT(*) FILTER (WHERE followee_id = $1),
			COUNT(*) FILTER (WHERE follower_id = $1)
		FROM follows
		WHERE followee_id = $1 OR follower_id = $1
	`
	var c model.FollowCounts
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, memberID).Scan(&c.Followers, &c.Followings)
	return c, err
}

func (r *FollowPostgres) UpdateMemberProfile(ctx context.Context, memberID int64, nickname, profileImageURL string) (int64, error) {
	conn := database.Conn(ctx, r.db)

	const qFollower = `UPDATE follows SET follower_nickname = $2, follower_profile_image_url = $3 WHERE follower_id = $1`
	res, err := conn.ExecContext(ctx, qFollower, memberID, nickname, profileImageURL)
	if err != nil {
		return 0, err
	}
	asFollower, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	const qFollowee = `UPDATE follows SET followee_nickname = $2, followee_profile_image_url = $3 WHERE followee_id = $1`
	res, err = conn.ExecContext(ctx, qFollowee, memberID, nickname, profileImageURL)
	if err != nil {
		return 0, err
	}
	asFollowee, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return asFollower + asFollowee, nil
}
