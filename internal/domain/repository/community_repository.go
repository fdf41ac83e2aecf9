package repository

import (
	"context"

	"github.com/adityawp/campusmarket/internal/domain/entity"
)

// CommunityRepository covers reviews, reports, notifications and messages.
type CommunityRepository interface {
	CreateReview(ctx context.Context, r *entity.Review) error
	ListReviews(ctx context.Context, listingID string) ([]entity.Review, error)

	CreateReport(ctx context.Context, r *entity.Report) error
	// ReportQueue returns open reports joined with listing titles, newest first.
	ReportQueue(ctx context.Context, limit, offset int) ([]entity.ReportedListing, error)
	CountReports(ctx context.Context) (int64, error)

	CreateNotification(ctx context.Context, n *entity.Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]entity.Notification, error)
	MarkNotificationRead(ctx context.Context, id, userID string) error

	CreateMessage(ctx context.Context, m *entity.Message) error
	ListConversation(ctx context.Context, userID, otherID string, limit int) ([]entity.Message, error)
}
