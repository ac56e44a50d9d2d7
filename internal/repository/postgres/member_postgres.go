package postgres

import (
	"context"
	"database/sql"

	"socialapi/internal/database"
	"socialapi/internal/model"
	"socialapi/internal/repository"
)

// MemberPostgres is a PostgreSQL implementation of repository.MemberRepository.
type MemberPostgres struct {
	db *sql.DB
}

func NewMemberPostgres(db *sql.DB) *MemberPostgres {
	return &MemberPostgres{db: db}
}

var _ repository.MemberRepository = (*MemberPostgres)(nil)

var memberUniqueFields = map[string]string{
	"members_email_key":    "email",
	"members_nickname_key": "nickname",
}

const memberColumns = `id, email, password_hash, nickname, introduction, profile_image_url, status, activation_token, created_at, updated_at`

func scanMember(s scanner) (*model.Member, error) {
	var (
		m     model.Member
		token sql.NullString
	)
	if err := s.Scan(
		&m.ID,
		&m.Email,
		&m.PasswordHash,
		&m.Nickname,
		&m.Introduction,
		&m.ProfileImageURL,
		&m.Status,
		&token,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	m.ActivationToken = token.String
	return &m, nil
}

func (r *MemberPostgres) Create(ctx context.Context, m *model.Member) (*model.Member, error) {
	const q = `
		INSERT INTO members (email, password_hash, nickname, introduction, profile_image_url, status, activation_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + memberColumns
	row := database.Conn(ctx, r.db).QueryRowContext(ctx, q,
		m.Email,
		m.PasswordHash,
		m.Nickname,
		m.Introduction,
		m.ProfileImageURL,
		string(m.Status),
		nullString(m.ActivationToken),
		m.CreatedAt,
		m.UpdatedAt,
	)
	created, err := scanMember(row)
	if err != nil {
		return nil, mapUnique(err, memberUniqueFields)
	}
	return created, nil
}

func (r *MemberPostgres) FindByID(ctx context.Context, id int64) (*model.Member, error) {
	const q = `SELECT ` + memberColumns + ` FROM members WHERE id = $1`
	return scanMember(database.Conn(ctx, r.db).QueryRowContext(ctx, q, id))
}

func (r *MemberPostgres) FindByEmail(ctx context.Context, email string) (*model.Member, error) {
	const q = `SELECT ` + memberColumns + ` FROM members WHERE email = $1`
	return scanMember(database.Conn(ctx, r.db).QueryRowContext(ctx, q, email))
}

func (r *MemberPostgres) FindByActivationToken(ctx context.Context, token string) (*model.Member, error) {
	const q = `SELECT ` + memberColumns + ` FROM members WHERE activation_token = $1`
	return scanMember(database.Conn(ctx, r.db).QueryRowContext(ctx, q, token))
}

func (r *MemberPostgres) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM members WHERE email = $1)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, email).Scan(&exists)
	return exists, err
}

func (r *MemberPostgres) ExistsByNickname(ctx context.Context, nickname string, excludeID int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM members WHERE nickname = $1 AND id <> $2)`
	var exists bool
	err := database.Conn(ctx, r.db).QueryRowContext(ctx, q, nickname, excludeID).Scan(&exists)
	return exists, err
}

func (r *MemberPostgres) Update(ctx context.Context, m *model.Member) error {
	const q = `
		UPDATE members
		SET nickname = $2, introduction = $3, profile_image_url = $4, status = $5, activation_token = $6, updated_at = $7
		WHERE id = $1
	`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q,
		m.ID,
		m.Nickname,
		m.Introduction,
		m.ProfileImageURL,
		string(m.Status),
		nullString(m.ActivationToken),
		m.UpdatedAt,
	)
	if err != nil {
		return mapUnique(err, memberUniqueFields)
	}
	return requireAffected(res)
}

func (r *MemberPostgres) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM members WHERE id = $1`
	res, err := database.Conn(ctx, r.db).ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}
