package repository

import (
	"context"

	"socialapi/internal/model"
)

// MemberRepository defines data access for members using SQL queries only.
// No business logic here, strictly persistence operations.
// Lookups return sql.ErrNoRows when nothing matches.
type MemberRepository interface {
	Create(ctx context.Context, m *model.Member) (*model.Member, error)
	FindByID(ctx context.Context, id int64) (*model.Member, error)
	FindByEmail(ctx context.Context, email string) (*model.Member, error)
	FindByActivationToken(ctx context.Context, token string) (*model.Member, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	// ExistsByNickname reports whether a member other than excludeID uses nickname.
	ExistsByNickname(ctx context.Context, nickname string, excludeID int64) (bool, error)
	Update(ctx context.Context, m *model.Member) error
	Delete(ctx context.Context, id int64) error
}
