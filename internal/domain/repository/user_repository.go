package repository

import (
	"context"
	"time"

	"github.com/adityawp/campusmarket/internal/domain/entity"
)

// UserSort is a whitelisted sort order for admin user listings.
// Field must be one of the keys accepted by the implementation; anything
// else falls back to created_at.
type UserSort struct {
	Field string
	Desc  bool
}

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdatePassword(ctx context.Context, id, hash string) error

	// List returns the safe projection, never the password hash.
	List(ctx context.Context, sort UserSort) ([]entity.UserSummary, error)
	SetBlacklistUntil(ctx context.Context, id string, until *time.Time) error
	SetTrustPenalty(ctx context.Context, id string, penalty int) error
	IncrementFailedPayments(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
