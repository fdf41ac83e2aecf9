package repository

import (
	"context"

	"github.com/adityawp/campusmarket/internal/domain/entity"
)

// VerificationCodeRepository stores one-time recovery codes.
type VerificationCodeRepository interface {
	// Upsert replaces any existing code for the email, so at most one live
	// code exists per address.
	Upsert(ctx context.Context, v *entity.VerificationCode) error
	GetByEmail(ctx context.Context, email string) (*entity.VerificationCode, error)
	// Delete consumes the code. Deleting an absent row is not an error.
	Delete(ctx context.Context, email string) error
	DeleteExpired(ctx context.Context) (int64, error)
}
