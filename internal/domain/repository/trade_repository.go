package repository

import (
	"context"

	"github.com/adityawp/campusmarket/internal/domain/entity"
)

// TradeRepository covers bids, offers, orders and group orders.
type TradeRepository interface {
	CreateBid(ctx context.Context, b *entity.Bid) error
	ListBids(ctx context.Context, listingID string) ([]entity.Bid, error)

	CreateOffer(ctx context.Context, o *entity.Offer) error
	GetOffer(ctx context.Context, id string) (*entity.Offer, error)
	SetOfferStatus(ctx context.Context, id string, status entity.OfferStatus) error
	ListOffersForListing(ctx context.Context, listingID string) ([]entity.Offer, error)

	CreateOrder(ctx context.Context, o *entity.Order) error
	GetOrder(ctx context.Context, id string) (*entity.Order, error)
	SetOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error
	ListOrdersForBuyer(ctx context.Context, buyerID string) ([]entity.Order, error)

	CreateGroupOrder(ctx context.Context, g *entity.GroupOrder) error
	GetGroupOrder(ctx context.Context, id string) (*entity.GroupOrder, error)
	// JoinGroupOrder adds the member and returns the updated pool. The
	// implementation bumps joined_count and flips status to locked when the
	// target is reached.
	JoinGroupOrder(ctx context.Context, groupOrderID, userID string) (*entity.GroupOrder, error)
	LeaveGroupOrder(ctx context.Context, groupOrderID, userID string) error
}
