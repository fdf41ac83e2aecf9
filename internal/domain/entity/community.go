package entity

import "time"

type Review struct {
	ID         string
	ListingID  string
	ReviewerID string
	Rating     int
	Comment    string
	CreatedAt  time.Time
}

// Report puts a listing into the moderation review queue. The moderation
// engine only reads reports; it never mutates them.
type Report struct {
	ID         string
	ListingID  string
	ReporterID string
	Reason     string
	CreatedAt  time.Time
}

// ReportedListing is a report joined with the listing title for the queue.
type ReportedListing struct {
	Report
	ListingTitle  string
	ListingStatus ListingStatus
}

type Notification struct {
	ID        string
	UserID    string
	Kind      string
	Body      string
	ReadAt    *time.Time
	CreatedAt time.Time
}

type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	ListingID   string
	Body        string
	CreatedAt   time.Time
}
