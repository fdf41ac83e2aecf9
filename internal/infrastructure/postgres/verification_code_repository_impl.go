package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

type VerificationCodeRepository struct {
	pool *pgxpool.Pool
}

func NewVerificationCodeRepository(pool *pgxpool.Pool) *VerificationCodeRepository {
	return &VerificationCodeRepository{pool: pool}
}

func (r *VerificationCodeRepository) Upsert(ctx context.Context, v *entity.VerificationCode) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO verification_codes (email, code, purpose, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO UPDATE
		  SET code = EXCLUDED.code,
		      purpose = EXCLUDED.purpose,
		      expires_at = EXCLUDED.expires_at,
		      created_at = now()
		RETURNING created_at
	`, v.Email, v.Code, v.Purpose, v.ExpiresAt)
	return row.Scan(&v.CreatedAt)
}

func (r *VerificationCodeRepository) GetByEmail(ctx context.Context, email string) (*entity.VerificationCode, error) {
	v := &entity.VerificationCode{}
	err := r.pool.QueryRow(ctx, `
		SELECT email, code, purpose, expires_at, created_at
		FROM verification_codes WHERE email = $1
	`, email).Scan(&v.Email, &v.Code, &v.Purpose, &v.ExpiresAt, &v.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VerificationCodeRepository) Delete(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM verification_codes WHERE email = $1`, email)
	return err
}

func (r *VerificationCodeRepository) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.pool.Exec(ctx, `DELETE FROM verification_codes WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}

var _ repository.VerificationCodeRepository = (*VerificationCodeRepository)(nil)
