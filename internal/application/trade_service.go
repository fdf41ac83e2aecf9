package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	repo "github.com/adityawp/campusmarket/internal/domain/repository"
)

var (
	ErrListingNotOpen = errors.New("listing is not open for trade")
	ErrOwnListing     = errors.New("cannot trade on your own listing")
)

// TradeService covers bids, offers, orders and group orders. Payment itself
// is out of scope; orders only record the outcome reported by the caller.
type TradeService struct {
	Trades   repo.TradeRepository
	Listings repo.ListingRepository
	Users    repo.UserRepository
	Notify   repo.CommunityRepository
	Logger   *logrus.Logger
}

func NewTradeService(trades repo.TradeRepository, listings repo.ListingRepository, users repo.UserRepository, notify repo.CommunityRepository, logger *logrus.Logger) *TradeService {
	return &TradeService{Trades: trades, Listings: listings, Users: users, Notify: notify, Logger: logger}
}

func (s *TradeService) activeListing(ctx context.Context, listingID, actorID string) (*entity.Listing, error) {
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if l.Status != entity.ListingActive {
		return nil, ErrListingNotOpen
	}
	if l.OwnerID == actorID {
		return nil, ErrOwnListing
	}
	return l, nil
}

func (s *TradeService) PlaceBid(ctx context.Context, actorID, listingID string, amount float64) (*entity.Bid, error) {
	if amount <= 0 {
		return nil, ErrInvalidAction
	}
	l, err := s.activeListing(ctx, listingID, actorID)
	if err != nil {
		return nil, err
	}
	b := &entity.Bid{ListingID: l.ID, BidderID: actorID, Amount: amount}
	if err := s.Trades.CreateBid(ctx, b); err != nil {
		return nil, err
	}
	s.notify(ctx, l.OwnerID, "bid_placed", l.Title)
	return b, nil
}

func (s *TradeService) ListBids(ctx context.Context, listingID string) ([]entity.Bid, error) {
	return s.Trades.ListBids(ctx, listingID)
}

func (s *TradeService) MakeOffer(ctx context.Context, actorID, listingID string, amount float64, message string) (*entity.Offer, error) {
	if amount <= 0 {
		return nil, ErrInvalidAction
	}
	l, err := s.activeListing(ctx, listingID, actorID)
	if err != nil {
		return nil, err
	}
	o := &entity.Offer{ListingID: l.ID, BuyerID: actorID, Amount: amount, Message: message, Status: entity.OfferOpen}
	if err := s.Trades.CreateOffer(ctx, o); err != nil {
		return nil, err
	}
	s.notify(ctx, l.OwnerID, "offer_received", l.Title)
	return o, nil
}

// AcceptOffer is seller-only; it closes the offer and opens an order.
func (s *TradeService) AcceptOffer(ctx context.Context, actorID, offerID string) (*entity.Order, error) {
	o, err := s.Trades.GetOffer(ctx, offerID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if o.Status != entity.OfferOpen {
		return nil, ErrInvalidAction
	}
	l, err := s.Listings.GetByID(ctx, o.ListingID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if l.OwnerID != actorID {
		return nil, ErrUnauthorized
	}
	if err := s.Trades.SetOfferStatus(ctx, offerID, entity.OfferAccepted); err != nil {
		return nil, err
	}
	ord := &entity.Order{
		ListingID: l.ID,
		BuyerID:   o.BuyerID,
		SellerID:  l.OwnerID,
		Amount:    o.Amount,
		Status:    entity.OrderCreated,
	}
	if err := s.Trades.CreateOrder(ctx, ord); err != nil {
		return nil, err
	}
	s.notify(ctx, o.BuyerID, "offer_accepted", l.Title)
	return ord, nil
}

func (s *TradeService) DeclineOffer(ctx context.Context, actorID, offerID string) error {
	o, err := s.Trades.GetOffer(ctx, offerID)
	if err != nil {
		return mapNotFound(err)
	}
	if o.Status != entity.OfferOpen {
		return ErrInvalidAction
	}
	l, err := s.Listings.GetByID(ctx, o.ListingID)
	if err != nil {
		return mapNotFound(err)
	}
	if l.OwnerID != actorID {
		return ErrUnauthorized
	}
	return s.Trades.SetOfferStatus(ctx, offerID, entity.OfferDeclined)
}

func (s *TradeService) ListOffers(ctx context.Context, actorID, listingID string) ([]entity.Offer, error) {
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if l.OwnerID != actorID {
		return nil, ErrUnauthorized
	}
	return s.Trades.ListOffersForListing(ctx, listingID)
}

func (s *TradeService) MyOrders(ctx context.Context, actorID string) ([]entity.Order, error) {
	return s.Trades.ListOrdersForBuyer(ctx, actorID)
}

// MarkOrderPaid records a successful payment reported by the buyer.
func (s *TradeService) MarkOrderPaid(ctx context.Context, actorID, orderID string) error {
	return s.settleOrder(ctx, actorID, orderID, entity.OrderPaid)
}

// MarkOrderFailed records a failed payment and bumps the buyer's
// failed-payment counter. No automatic ban follows; moderation reads the
// counter as a signal only.
func (s *TradeService) MarkOrderFailed(ctx context.Context, actorID, orderID string) error {
	if err := s.settleOrder(ctx, actorID, orderID, entity.OrderFailed); err != nil {
		return err
	}
	if err := s.Users.IncrementFailedPayments(ctx, actorID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", actorID).Warn("failed payment counter update failed")
	}
	return nil
}

func (s *TradeService) settleOrder(ctx context.Context, actorID, orderID string, status entity.OrderStatus) error {
	o, err := s.Trades.GetOrder(ctx, orderID)
	if err != nil {
		return mapNotFound(err)
	}
	if o.BuyerID != actorID {
		return ErrUnauthorized
	}
	if o.Status != entity.OrderCreated {
		return ErrInvalidAction
	}
	return s.Trades.SetOrderStatus(ctx, orderID, status)
}

func (s *TradeService) CreateGroupOrder(ctx context.Context, actorID, listingID string, targetCount int) (*entity.GroupOrder, error) {
	if targetCount < 2 {
		return nil, ErrInvalidAction
	}
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if l.Status != entity.ListingActive {
		return nil, ErrListingNotOpen
	}
	g := &entity.GroupOrder{
		ListingID:   l.ID,
		OrganizerID: actorID,
		TargetCount: targetCount,
		JoinedCount: 0,
		Status:      entity.GroupOrderOpen,
	}
	if err := s.Trades.CreateGroupOrder(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *TradeService) JoinGroupOrder(ctx context.Context, actorID, groupOrderID string) (*entity.GroupOrder, error) {
	g, err := s.Trades.JoinGroupOrder(ctx, groupOrderID, actorID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if g.Status == entity.GroupOrderLocked {
		s.notify(ctx, g.OrganizerID, "group_order_locked", g.ID)
	}
	return g, nil
}

func (s *TradeService) LeaveGroupOrder(ctx context.Context, actorID, groupOrderID string) error {
	return mapNotFound(s.Trades.LeaveGroupOrder(ctx, groupOrderID, actorID))
}

func (s *TradeService) notify(ctx context.Context, userID, kind, body string) {
	if s.Notify == nil {
		return
	}
	n := &entity.Notification{UserID: userID, Kind: kind, Body: body}
	if err := s.Notify.CreateNotification(ctx, n); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("notification insert failed")
	}
}
