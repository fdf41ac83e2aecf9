package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

// ErrNotFound aliases the repository sentinel so callers can match either.
var ErrNotFound = repository.ErrNotFound

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = `id, email, username, password_hash, name, avatar_url, role,
	blacklist_until, failed_payment_count, trust_score_penalty, is_verified,
	created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Password, &u.Name,
		&u.AvatarURL, &u.Role, &u.BlacklistUntil, &u.FailedPaymentCount,
		&u.TrustScorePenalty, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	if u.Role == "" {
		u.Role = entity.RoleMember
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, username, password_hash, name, avatar_url, role)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Username, u.Password, u.Name, u.AvatarURL, u.Role)
	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return scanUser(r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) Update(ctx context.Context, u *entity.User) error {
	u.UpdatedAt = time.Now()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, username = $2, name = $3, avatar_url = $4, is_verified = $5, updated_at = $6
		WHERE id = $7
	`, u.Email, u.Username, u.Name, u.AvatarURL, u.IsVerified, u.UpdatedAt, u.ID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET password_hash = $1, updated_at = now() WHERE id = $2
	`, hash, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// userSortColumns whitelists sortable columns for the admin user listing.
// Unknown fields fall back to created_at.
var userSortColumns = map[string]string{
	"created_at":           "created_at",
	"email":                "email",
	"username":             "username",
	"role":                 "role",
	"blacklist_until":      "blacklist_until",
	"failed_payment_count": "failed_payment_count",
	"trust_score_penalty":  "trust_score_penalty",
}

func (r *UserRepository) List(ctx context.Context, sort repository.UserSort) ([]entity.UserSummary, error) {
	col, ok := userSortColumns[sort.Field]
	if !ok {
		col = "created_at"
	}
	dir := "ASC"
	if sort.Desc {
		dir = "DESC"
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, email, username, name, role, blacklist_until,
		       failed_payment_count, trust_score_penalty, created_at
		FROM users
		ORDER BY `+col+` `+dir+` NULLS LAST`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.UserSummary
	for rows.Next() {
		var u entity.UserSummary
		if err := rows.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.Role,
			&u.BlacklistUntil, &u.FailedPaymentCount, &u.TrustScorePenalty, &u.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r *UserRepository) SetBlacklistUntil(ctx context.Context, id string, until *time.Time) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET blacklist_until = $1, updated_at = now() WHERE id = $2
	`, until, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) SetTrustPenalty(ctx context.Context, id string, penalty int) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET trust_score_penalty = $1, updated_at = now() WHERE id = $2
	`, penalty, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) IncrementFailedPayments(ctx context.Context, id string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE users SET failed_payment_count = failed_payment_count + 1, updated_at = now()
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n)
	return n, err
}

var _ repository.UserRepository = (*UserRepository)(nil)
