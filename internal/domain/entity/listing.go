package entity

import "time"

type ListingStatus string

const (
	ListingPending ListingStatus = "pending"
	ListingActive  ListingStatus = "active"
	ListingSold    ListingStatus = "sold"
	ListingDeleted ListingStatus = "deleted"
)

// ModerationAction is what an admin may do to a listing from the queue.
type ModerationAction string

const (
	ActionApprove ModerationAction = "approve"
	ActionDelete  ModerationAction = "delete"
)

type Listing struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Price       float64
	Category    string
	ImageURL    string
	Status      ListingStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// CanTransition encodes the listing status rules: deleted is terminal,
// approve only lifts pending listings, owners move active to sold.
func (l *Listing) CanTransition(next ListingStatus) bool {
	if l.Status == ListingDeleted {
		return false
	}
	switch next {
	case ListingActive:
		return l.Status == ListingPending
	case ListingSold:
		return l.Status == ListingActive
	case ListingDeleted:
		return true
	default:
		return false
	}
}

// ModeratedListing is a queue row: the listing joined with owner display
// fields for the admin review screen.
type ModeratedListing struct {
	Listing
	OwnerName  string
	OwnerEmail string
}

// Stats are the aggregate counts surfaced on the admin dashboard.
type Stats struct {
	TotalUsers      int64 `json:"total_users"`
	ActiveListings  int64 `json:"active_listings"`
	PendingListings int64 `json:"pending_listings"`
	SoldListings    int64 `json:"sold_listings"`
	OpenReports     int64 `json:"open_reports"`
}
