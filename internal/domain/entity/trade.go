package entity

import "time"

type Bid struct {
	ID        string
	ListingID string
	BidderID  string
	Amount    float64
	CreatedAt time.Time
}

type OfferStatus string

const (
	OfferOpen     OfferStatus = "open"
	OfferAccepted OfferStatus = "accepted"
	OfferDeclined OfferStatus = "declined"
)

type Offer struct {
	ID        string
	ListingID string
	BuyerID   string
	Amount    float64
	Message   string
	Status    OfferStatus
	CreatedAt time.Time
}

type OrderStatus string

const (
	OrderCreated   OrderStatus = "created"
	OrderPaid      OrderStatus = "paid"
	OrderFailed    OrderStatus = "failed"
	OrderCompleted OrderStatus = "completed"
)

type Order struct {
	ID        string
	ListingID string
	BuyerID   string
	SellerID  string
	Amount    float64
	Status    OrderStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

type GroupOrderStatus string

const (
	GroupOrderOpen      GroupOrderStatus = "open"
	GroupOrderLocked    GroupOrderStatus = "locked"
	GroupOrderCancelled GroupOrderStatus = "cancelled"
)

// GroupOrder is a buy-together pool on a listing. It locks once
// JoinedCount reaches TargetCount.
type GroupOrder struct {
	ID          string
	ListingID   string
	OrganizerID string
	TargetCount int
	JoinedCount int
	Status      GroupOrderStatus
	CreatedAt   time.Time
}
