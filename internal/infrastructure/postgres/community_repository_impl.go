package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

type CommunityRepository struct {
	pool *pgxpool.Pool
}

func NewCommunityRepository(pool *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{pool: pool}
}

func (r *CommunityRepository) CreateReview(ctx context.Context, rv *entity.Review) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reviews (listing_id, reviewer_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, rv.ListingID, rv.ReviewerID, rv.Rating, rv.Comment)
	return row.Scan(&rv.ID, &rv.CreatedAt)
}

func (r *CommunityRepository) ListReviews(ctx context.Context, listingID string) ([]entity.Review, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, listing_id, reviewer_id, rating, comment, created_at
		FROM reviews
		WHERE listing_id = $1
		ORDER BY created_at DESC
	`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Review
	for rows.Next() {
		var rv entity.Review
		if err := rows.Scan(&rv.ID, &rv.ListingID, &rv.ReviewerID, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

func (r *CommunityRepository) CreateReport(ctx context.Context, rp *entity.Report) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO reports (listing_id, reporter_id, reason)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, rp.ListingID, rp.ReporterID, rp.Reason)
	return row.Scan(&rp.ID, &rp.CreatedAt)
}

func (r *CommunityRepository) ReportQueue(ctx context.Context, limit, offset int) ([]entity.ReportedListing, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT rp.id, rp.listing_id, rp.reporter_id, rp.reason, rp.created_at,
		       l.title, l.status
		FROM reports rp
		JOIN listings l ON l.id = rp.listing_id
		ORDER BY rp.created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.ReportedListing
	for rows.Next() {
		var rl entity.ReportedListing
		if err := rows.Scan(&rl.ID, &rl.ListingID, &rl.ReporterID, &rl.Reason, &rl.CreatedAt,
			&rl.ListingTitle, &rl.ListingStatus); err != nil {
			return nil, err
		}
		out = append(out, rl)
	}
	return out, rows.Err()
}

func (r *CommunityRepository) CountReports(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM reports`).Scan(&n)
	return n, err
}

func (r *CommunityRepository) CreateNotification(ctx context.Context, n *entity.Notification) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO notifications (user_id, kind, body)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, n.UserID, n.Kind, n.Body)
	return row.Scan(&n.ID, &n.CreatedAt)
}

func (r *CommunityRepository) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]entity.Notification, error) {
	q := `
		SELECT id, user_id, kind, body, read_at, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		q += ` AND read_at IS NULL`
	}
	q += ` ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Notification
	for rows.Next() {
		var n entity.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Kind, &n.Body, &n.ReadAt, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *CommunityRepository) MarkNotificationRead(ctx context.Context, id, userID string) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE notifications SET read_at = now()
		WHERE id = $1 AND user_id = $2 AND read_at IS NULL
	`, id, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CommunityRepository) CreateMessage(ctx context.Context, m *entity.Message) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO messages (sender_id, recipient_id, listing_id, body)
		VALUES ($1, $2, NULLIF($3, ''), $4)
		RETURNING id, created_at
	`, m.SenderID, m.RecipientID, m.ListingID, m.Body)
	return row.Scan(&m.ID, &m.CreatedAt)
}

func (r *CommunityRepository) ListConversation(ctx context.Context, userID, otherID string, limit int) ([]entity.Message, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, sender_id, recipient_id, coalesce(listing_id::text, ''), body, created_at
		FROM messages
		WHERE (sender_id = $1 AND recipient_id = $2)
		   OR (sender_id = $2 AND recipient_id = $1)
		ORDER BY created_at DESC
		LIMIT $3
	`, userID, otherID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Message
	for rows.Next() {
		var m entity.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.RecipientID, &m.ListingID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var _ repository.CommunityRepository = (*CommunityRepository)(nil)
