package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

type ListingRepository struct {
	pool *pgxpool.Pool
}

func NewListingRepository(pool *pgxpool.Pool) *ListingRepository {
	return &ListingRepository{pool: pool}
}

const listingColumns = `id, owner_id, title, description, price, category,
	image_url, status, created_at, updated_at`

func scanListing(row pgx.Row) (*entity.Listing, error) {
	l := &entity.Listing{}
	if err := row.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Price,
		&l.Category, &l.ImageURL, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	if l.Status == "" {
		l.Status = entity.ListingPending
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO listings (owner_id, title, description, price, category, image_url, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`, l.OwnerID, l.Title, l.Description, l.Price, l.Category, l.ImageURL, l.Status)
	return row.Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	return scanListing(r.pool.QueryRow(ctx, `SELECT `+listingColumns+` FROM listings WHERE id = $1`, id))
}

func (r *ListingRepository) SetStatus(ctx context.Context, id string, status entity.ListingStatus) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE listings SET status = $1, updated_at = now() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) SetImageURL(ctx context.Context, id, url string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE listings SET image_url = $1, updated_at = now() WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *ListingRepository) ListActive(ctx context.Context, limit, offset int) ([]entity.Listing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+listingColumns+`
		FROM listings
		WHERE status = 'active'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Listing
	for rows.Next() {
		var l entity.Listing
		if err := rows.Scan(&l.ID, &l.OwnerID, &l.Title, &l.Description, &l.Price,
			&l.Category, &l.ImageURL, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func (r *ListingRepository) ModerationQueue(ctx context.Context, limit, offset int) ([]entity.ModeratedListing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT l.id, l.owner_id, l.title, l.description, l.price, l.category,
		       l.image_url, l.status, l.created_at, l.updated_at,
		       u.name, u.email
		FROM listings l
		JOIN users u ON u.id = l.owner_id
		WHERE l.status IN ('pending', 'active')
		ORDER BY l.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.ModeratedListing
	for rows.Next() {
		var m entity.ModeratedListing
		if err := rows.Scan(&m.ID, &m.OwnerID, &m.Title, &m.Description, &m.Price,
			&m.Category, &m.ImageURL, &m.Status, &m.CreatedAt, &m.UpdatedAt,
			&m.OwnerName, &m.OwnerEmail); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r *ListingRepository) CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM listings WHERE status = $1`, status).Scan(&n)
	return n, err
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
