package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// MemberEventPostgres is a PostgreSQL implementation of repository.MemberEventRepository.
type MemberEventPostgres struct {
	db *sql.DB
}

func NewMemberEventPostgres(db *sql.DB) *MemberEventPostgres {
	return &MemberEventPostgres{db: db}
}

var _ repository.MemberEventRepository = (*MemberEventPostgres)(nil)

const memberEventColumns = `id, member_id, type, actor_id, actor_nickname, target_id, message, read, created_at`

func scanMemberEvent(s scanner) (*model.MemberEvent, error) {
	var e model.MemberEvent
	if err := s.Scan(
		&e.ID,
		&e.MemberID,
		&e.Type,
		&e.ActorID,
		&e.ActorNickname,
		&e.TargetID,
		&e.Message,
		&e.Read,
		&e.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *MemberEventPostgres) Create(ctx context.Context, e *model.MemberEvent) (*model.MemberEvent, error) {
	const q = `
		INSERT INTO member_events (member_id, type, actor_id, actor_nickname, target_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + memberEventColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		e.MemberID,
		string(e.Type),
		e.ActorID,
		e.ActorNickname,
		e.TargetID,
		e.Message,
		e.Read,
		e.CreatedAt,
	)
	return scanMemberEvent(row)
}

func (r *MemberEventPostgres) FindByID(ctx context.Context, id int64) (*model.MemberEvent, error) {
	const q = `SELECT ` + memberEventColumns + ` FROM member_events WHERE id = $1`
	return scanMemberEvent(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *MemberEventPostgres) ListByMember(ctx context.Context, memberID int64, pq repository.PageQuery) (*repository.PageResult[model.MemberEvent], error) {
	conn := database.Conn(ctx, r.db)

	const qCount = `SELECT COUNT(*) FROM member_events WHERE member_id = $1`
	var total int
	if err := conn.QueryRowContext(ctx, qCount, memberID).Scan(&total); err != nil {
		return nil, err
	}

	const qList = `
		SELECT ` + memberEventColumns + `
		FROM member_events
		WHERE member_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := conn.QueryContext(ctx, qList, memberID, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.MemberEvent, 0)
	for rows.Next() {
		e, err := scanMemberEvent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &repository.PageResult[model.MemberEvent]{Items: items, Total: total}, nil
}

func (r *MemberEventPostgres) CountUnread(ctx context.Context, memberID int64) (int, error) {
	const q = `SELECT COUNT(*) FROM member_events WHERE member_id = $1 AND NOT read`
	var n int
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, memberID).Scan(&n)
	return n, err
}

// MarkRead is idempotent for an existing event.
func (r *MemberEventPostgres) MarkRead(ctx context.Context, id int64) error {
	const q = `UPDATE member_events SET read = true WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
