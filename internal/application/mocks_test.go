package application_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

type MockUserRepo struct{ mock.Mock }

func (m *MockUserRepo) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	var u *entity.User
	if v := args.Get(0); v != nil {
		u = v.(*entity.User)
	}
	return u, args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	var u *entity.User
	if v := args.Get(0); v != nil {
		u = v.(*entity.User)
	}
	return u, args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}
func (m *MockUserRepo) UpdatePassword(ctx context.Context, id, hash string) error {
	return m.Called(ctx, id, hash).Error(0)
}
func (m *MockUserRepo) List(ctx context.Context, sort repository.UserSort) ([]entity.UserSummary, error) {
	args := m.Called(ctx, sort)
	var out []entity.UserSummary
	if v := args.Get(0); v != nil {
		out = v.([]entity.UserSummary)
	}
	return out, args.Error(1)
}
func (m *MockUserRepo) SetBlacklistUntil(ctx context.Context, id string, until *time.Time) error {
	return m.Called(ctx, id, until).Error(0)
}
func (m *MockUserRepo) SetTrustPenalty(ctx context.Context, id string, penalty int) error {
	return m.Called(ctx, id, penalty).Error(0)
}
func (m *MockUserRepo) IncrementFailedPayments(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
func (m *MockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockListingRepo struct{ mock.Mock }

func (m *MockListingRepo) Create(ctx context.Context, l *entity.Listing) error {
	return m.Called(ctx, l).Error(0)
}
func (m *MockListingRepo) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	args := m.Called(ctx, id)
	var l *entity.Listing
	if v := args.Get(0); v != nil {
		l = v.(*entity.Listing)
	}
	return l, args.Error(1)
}
func (m *MockListingRepo) SetStatus(ctx context.Context, id string, status entity.ListingStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockListingRepo) SetImageURL(ctx context.Context, id, url string) error {
	return m.Called(ctx, id, url).Error(0)
}
func (m *MockListingRepo) ListActive(ctx context.Context, limit, offset int) ([]entity.Listing, error) {
	args := m.Called(ctx, limit, offset)
	var out []entity.Listing
	if v := args.Get(0); v != nil {
		out = v.([]entity.Listing)
	}
	return out, args.Error(1)
}
func (m *MockListingRepo) ModerationQueue(ctx context.Context, limit, offset int) ([]entity.ModeratedListing, error) {
	args := m.Called(ctx, limit, offset)
	var out []entity.ModeratedListing
	if v := args.Get(0); v != nil {
		out = v.([]entity.ModeratedListing)
	}
	return out, args.Error(1)
}
func (m *MockListingRepo) CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

type MockCommunityRepo struct{ mock.Mock }

func (m *MockCommunityRepo) CreateReview(ctx context.Context, r *entity.Review) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockCommunityRepo) ListReviews(ctx context.Context, listingID string) ([]entity.Review, error) {
	args := m.Called(ctx, listingID)
	var out []entity.Review
	if v := args.Get(0); v != nil {
		out = v.([]entity.Review)
	}
	return out, args.Error(1)
}
func (m *MockCommunityRepo) CreateReport(ctx context.Context, r *entity.Report) error {
	return m.Called(ctx, r).Error(0)
}
func (m *MockCommunityRepo) ReportQueue(ctx context.Context, limit, offset int) ([]entity.ReportedListing, error) {
	args := m.Called(ctx, limit, offset)
	var out []entity.ReportedListing
	if v := args.Get(0); v != nil {
		out = v.([]entity.ReportedListing)
	}
	return out, args.Error(1)
}
func (m *MockCommunityRepo) CountReports(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCommunityRepo) CreateNotification(ctx context.Context, n *entity.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *MockCommunityRepo) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]entity.Notification, error) {
	args := m.Called(ctx, userID, unreadOnly)
	var out []entity.Notification
	if v := args.Get(0); v != nil {
		out = v.([]entity.Notification)
	}
	return out, args.Error(1)
}
func (m *MockCommunityRepo) MarkNotificationRead(ctx context.Context, id, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}
func (m *MockCommunityRepo) CreateMessage(ctx context.Context, msg *entity.Message) error {
	return m.Called(ctx, msg).Error(0)
}
func (m *MockCommunityRepo) ListConversation(ctx context.Context, userID, otherID string, limit int) ([]entity.Message, error) {
	args := m.Called(ctx, userID, otherID, limit)
	var out []entity.Message
	if v := args.Get(0); v != nil {
		out = v.([]entity.Message)
	}
	return out, args.Error(1)
}

type MockTradeRepo struct{ mock.Mock }

func (m *MockTradeRepo) CreateBid(ctx context.Context, b *entity.Bid) error {
	return m.Called(ctx, b).Error(0)
}
func (m *MockTradeRepo) ListBids(ctx context.Context, listingID string) ([]entity.Bid, error) {
	args := m.Called(ctx, listingID)
	var out []entity.Bid
	if v := args.Get(0); v != nil {
		out = v.([]entity.Bid)
	}
	return out, args.Error(1)
}
func (m *MockTradeRepo) CreateOffer(ctx context.Context, o *entity.Offer) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockTradeRepo) GetOffer(ctx context.Context, id string) (*entity.Offer, error) {
	args := m.Called(ctx, id)
	var o *entity.Offer
	if v := args.Get(0); v != nil {
		o = v.(*entity.Offer)
	}
	return o, args.Error(1)
}
func (m *MockTradeRepo) SetOfferStatus(ctx context.Context, id string, status entity.OfferStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockTradeRepo) ListOffersForListing(ctx context.Context, listingID string) ([]entity.Offer, error) {
	args := m.Called(ctx, listingID)
	var out []entity.Offer
	if v := args.Get(0); v != nil {
		out = v.([]entity.Offer)
	}
	return out, args.Error(1)
}
func (m *MockTradeRepo) CreateOrder(ctx context.Context, o *entity.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *MockTradeRepo) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	var o *entity.Order
	if v := args.Get(0); v != nil {
		o = v.(*entity.Order)
	}
	return o, args.Error(1)
}
func (m *MockTradeRepo) SetOrderStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}
func (m *MockTradeRepo) ListOrdersForBuyer(ctx context.Context, buyerID string) ([]entity.Order, error) {
	args := m.Called(ctx, buyerID)
	var out []entity.Order
	if v := args.Get(0); v != nil {
		out = v.([]entity.Order)
	}
	return out, args.Error(1)
}
func (m *MockTradeRepo) CreateGroupOrder(ctx context.Context, g *entity.GroupOrder) error {
	return m.Called(ctx, g).Error(0)
}
func (m *MockTradeRepo) GetGroupOrder(ctx context.Context, id string) (*entity.GroupOrder, error) {
	args := m.Called(ctx, id)
	var g *entity.GroupOrder
	if v := args.Get(0); v != nil {
		g = v.(*entity.GroupOrder)
	}
	return g, args.Error(1)
}
func (m *MockTradeRepo) JoinGroupOrder(ctx context.Context, groupOrderID, userID string) (*entity.GroupOrder, error) {
	args := m.Called(ctx, groupOrderID, userID)
	var g *entity.GroupOrder
	if v := args.Get(0); v != nil {
		g = v.(*entity.GroupOrder)
	}
	return g, args.Error(1)
}
func (m *MockTradeRepo) LeaveGroupOrder(ctx context.Context, groupOrderID, userID string) error {
	return m.Called(ctx, groupOrderID, userID).Error(0)
}

type MockCodeRepo struct{ mock.Mock }

func (m *MockCodeRepo) Upsert(ctx context.Context, v *entity.VerificationCode) error {
	return m.Called(ctx, v).Error(0)
}
func (m *MockCodeRepo) GetByEmail(ctx context.Context, email string) (*entity.VerificationCode, error) {
	args := m.Called(ctx, email)
	var v *entity.VerificationCode
	if got := args.Get(0); got != nil {
		v = got.(*entity.VerificationCode)
	}
	return v, args.Error(1)
}
func (m *MockCodeRepo) Delete(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}
func (m *MockCodeRepo) DeleteExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
