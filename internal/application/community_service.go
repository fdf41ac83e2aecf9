package application

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	repo "github.com/adityawp/campusmarket/internal/domain/repository"
)

// CommunityService covers reviews, reports, notifications and messages.
type CommunityService struct {
	Community repo.CommunityRepository
	Listings  repo.ListingRepository
	Logger    *logrus.Logger
}

func NewCommunityService(community repo.CommunityRepository, listings repo.ListingRepository, logger *logrus.Logger) *CommunityService {
	return &CommunityService{Community: community, Listings: listings, Logger: logger}
}

func (s *CommunityService) LeaveReview(ctx context.Context, actorID, listingID string, rating int, comment string) (*entity.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidAction
	}
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if l.OwnerID == actorID {
		return nil, ErrInvalidAction
	}
	rv := &entity.Review{ListingID: l.ID, ReviewerID: actorID, Rating: rating, Comment: comment}
	if err := s.Community.CreateReview(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *CommunityService) ListReviews(ctx context.Context, listingID string) ([]entity.Review, error) {
	return s.Community.ListReviews(ctx, listingID)
}

// ReportListing files a report for the moderation review queue.
func (s *CommunityService) ReportListing(ctx context.Context, actorID, listingID, reason string) (*entity.Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrInvalidAction
	}
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return nil, mapNotFound(err)
	}
	rp := &entity.Report{ListingID: l.ID, ReporterID: actorID, Reason: reason}
	if err := s.Community.CreateReport(ctx, rp); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"listing_id": l.ID, "reporter_id": actorID}).Info("listing reported")
	}
	return rp, nil
}

func (s *CommunityService) Notifications(ctx context.Context, actorID string, unreadOnly bool) ([]entity.Notification, error) {
	return s.Community.ListNotifications(ctx, actorID, unreadOnly)
}

func (s *CommunityService) MarkNotificationRead(ctx context.Context, actorID, notificationID string) error {
	return mapNotFound(s.Community.MarkNotificationRead(ctx, notificationID, actorID))
}

func (s *CommunityService) SendMessage(ctx context.Context, actorID, recipientID, listingID, body string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" || recipientID == "" || recipientID == actorID {
		return nil, ErrInvalidAction
	}
	m := &entity.Message{SenderID: actorID, RecipientID: recipientID, ListingID: listingID, Body: body}
	if err := s.Community.CreateMessage(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *CommunityService) Conversation(ctx context.Context, actorID, otherID string, limit int) ([]entity.Message, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return s.Community.ListConversation(ctx, actorID, otherID, limit)
}
