package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

type TradeRepository struct {
	pool *pgxpool.Pool
}

func NewTradeRepository(pool *pgxpool.Pool) *TradeRepository {
	return &TradeRepository{pool: pool}
}

func (r *TradeRepository) CreateBid(ctx context.Context, b *entity.Bid) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO bids (listing_id, bidder_id, amount)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, b.ListingID, b.BidderID, b.Amount)
	return row.Scan(&b.ID, &b.CreatedAt)
}

func (r *TradeRepository) ListBids(ctx context.Context, listingID string) ([]entity.Bid, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, listing_id, bidder_id, amount, created_at
		FROM bids
		WHERE listing_id = $1
		ORDER BY amount DESC, created_at ASC
	`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Bid
	for rows.Next() {
		var b entity.Bid
		if err := rows.Scan(&b.ID, &b.ListingID, &b.BidderID, &b.Amount, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *TradeRepository) CreateOffer(ctx context.Context, o *entity.Offer) error {
	if o.Status == "" {
		o.Status = entity.OfferOpen
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO offers (listing_id, buyer_id, amount, message, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, o.ListingID, o.BuyerID, o.Amount, o.Message, o.Status)
	return row.Scan(&o.ID, &o.CreatedAt)
}

func (r *TradeRepository) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	o := &entity.Offer{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, listing_id, buyer_id, amount, message, status, created_at
		FROM offers WHERE id = $1
	`, id).Scan(&o.ID, &o.ListingID, &o.BuyerID, &o.Amount, &o.Message, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *TradeRepository) SetOfferStatus(ctx context.Context, id string, status entity.OfferStatus) error {
	res, err := r.pool.Exec(ctx, `UPDATE offers SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TradeRepository) ListOffersForListing(ctx context.Context, listingID string) ([]entity.Offer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, listing_id, buyer_id, amount, message, status, created_at
		FROM offers
		WHERE listing_id = $1
		ORDER BY created_at DESC
	`, listingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Offer
	for rows.Next() {
		var o entity.Offer
		if err := rows.Scan(&o.ID, &o.ListingID, &o.BuyerID, &o.Amount, &o.Message, &o.Status, &o.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *TradeRepository) CreateOrder(ctx context.Context, o *entity.Order) error {
	if o.Status == "" {
		o.Status = entity.OrderCreated
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO orders (listing_id, buyer_id, seller_id, amount, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, o.ListingID, o.BuyerID, o.SellerID, o.Amount, o.Status)
	return row.Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
}

func (r *TradeRepository) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	o := &entity.Order{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, listing_id, buyer_id, seller_id, amount, status, created_at, updated_at
		FROM orders WHERE id = $1
	`, id).Scan(&o.ID, &o.ListingID, &o.BuyerID, &o.SellerID, &o.Amount, &o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return o, nil
}

func (r *TradeRepository) SetOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	res, err := r.pool.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = now() WHERE id = $2
	`, status, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TradeRepository) ListOrdersForBuyer(ctx context.Context, buyerID string) ([]entity.Order, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, listing_id, buyer_id, seller_id, amount, status, created_at, updated_at
		FROM orders
		WHERE buyer_id = $1
		ORDER BY created_at DESC
	`, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entity.Order
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.ListingID, &o.BuyerID, &o.SellerID, &o.Amount, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *TradeRepository) CreateGroupOrder(ctx context.Context, g *entity.GroupOrder) error {
	if g.Status == "" {
		g.Status = entity.GroupOrderOpen
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO group_orders (listing_id, organizer_id, target_count, joined_count, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, g.ListingID, g.OrganizerID, g.TargetCount, g.JoinedCount, g.Status)
	return row.Scan(&g.ID, &g.CreatedAt)
}

func (r *TradeRepository) GetGroupOrder(ctx context.Context, id string) (*entity.GroupOrder, error) {
	g := &entity.GroupOrder{}
	err := r.pool.QueryRow(ctx, `
		SELECT id, listing_id, organizer_id, target_count, joined_count, status, created_at
		FROM group_orders WHERE id = $1
	`, id).Scan(&g.ID, &g.ListingID, &g.OrganizerID, &g.TargetCount, &g.JoinedCount, &g.Status, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return g, nil
}

var (
	ErrAlreadyJoined    = repository.ErrAlreadyJoined
	ErrGroupOrderClosed = repository.ErrGroupOrderClosed
)

func (r *TradeRepository) JoinGroupOrder(ctx context.Context, groupOrderID, userID string) (*entity.GroupOrder, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	g := &entity.GroupOrder{}
	err = tx.QueryRow(ctx, `
		SELECT id, listing_id, organizer_id, target_count, joined_count, status, created_at
		FROM group_orders WHERE id = $1
		FOR UPDATE
	`, groupOrderID).Scan(&g.ID, &g.ListingID, &g.OrganizerID, &g.TargetCount, &g.JoinedCount, &g.Status, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if g.Status != entity.GroupOrderOpen {
		return nil, ErrGroupOrderClosed
	}

	res, err := tx.Exec(ctx, `
		INSERT INTO group_order_members (group_order_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (group_order_id, user_id) DO NOTHING
	`, groupOrderID, userID)
	if err != nil {
		return nil, err
	}
	if res.RowsAffected() == 0 {
		return nil, ErrAlreadyJoined
	}

	g.JoinedCount++
	if g.JoinedCount >= g.TargetCount {
		g.Status = entity.GroupOrderLocked
	}
	if _, err := tx.Exec(ctx, `
		UPDATE group_orders SET joined_count = $1, status = $2 WHERE id = $3
	`, g.JoinedCount, g.Status, groupOrderID); err != nil {
		return nil, err
	}
	return g, tx.Commit(ctx)
}

func (r *TradeRepository) LeaveGroupOrder(ctx context.Context, groupOrderID, userID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	res, err := tx.Exec(ctx, `
		DELETE FROM group_order_members WHERE group_order_id = $1 AND user_id = $2
	`, groupOrderID, userID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return ErrNotFound
	}
	if _, err := tx.Exec(ctx, `
		UPDATE group_orders SET joined_count = joined_count - 1
		WHERE id = $1 AND joined_count > 0
	`, groupOrderID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

var _ repository.TradeRepository = (*TradeRepository)(nil)
