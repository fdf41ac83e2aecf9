package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	repo "github.com/adityawp/campusmarket/internal/domain/repository"
	"github.com/adityawp/campusmarket/pkg/helpers"
	"github.com/adityawp/campusmarket/pkg/mailer"
	tpl "github.com/adityawp/campusmarket/pkg/mailer/templates"
)

// ModerationService applies admin-directed state changes to listings and
// users. Every operation checks the actor's role itself, so the invariant
// holds no matter which transport calls in.
type ModerationService struct {
	Users           repo.UserRepository
	Listings        repo.ListingRepository
	Community       repo.CommunityRepository
	Logger          *logrus.Logger
	Pub             *helpers.RabbitPublisher
	ES              *elasticsearch.Client
	ESListingsIndex string
}

func NewModerationService(users repo.UserRepository, listings repo.ListingRepository, community repo.CommunityRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, es *elasticsearch.Client, esListingsIndex string) *ModerationService {
	return &ModerationService{
		Users:           users,
		Listings:        listings,
		Community:       community,
		Logger:          logger,
		Pub:             pub,
		ES:              es,
		ESListingsIndex: esListingsIndex,
	}
}

func (s *ModerationService) requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	return nil
}

// ModerationQueue returns pending and active listings, newest first, joined
// with owner display fields.
func (s *ModerationService) ModerationQueue(ctx context.Context, actor entity.Actor, limit, offset int) ([]entity.ModeratedListing, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Listings.ModerationQueue(ctx, limit, offset)
}

// SetListingStatus applies an admin action to a listing. Approve lifts a
// pending listing to active; delete soft-deletes from any state. Both are
// idempotent when the listing is already in the target state.
func (s *ModerationService) SetListingStatus(ctx context.Context, actor entity.Actor, listingID string, action entity.ModerationAction) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return mapNotFound(err)
	}

	switch action {
	case entity.ActionApprove:
		if l.Status == entity.ListingActive {
			return nil
		}
		if !l.CanTransition(entity.ListingActive) {
			return ErrInvalidAction
		}
		if err := s.Listings.SetStatus(ctx, listingID, entity.ListingActive); err != nil {
			return err
		}
		l.Status = entity.ListingActive
		if err := indexListing(ctx, s.ES, s.ESListingsIndex, l); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("listing_id", l.ID).Warn("search index failed")
		}
		s.notifyOwner(ctx, l, tpl.ListingApproved)
	case entity.ActionDelete:
		if l.Status == entity.ListingDeleted {
			return nil
		}
		if err := s.Listings.SetStatus(ctx, listingID, entity.ListingDeleted); err != nil {
			return err
		}
		if err := removeListing(ctx, s.ES, s.ESListingsIndex, l.ID); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("listing_id", l.ID).Warn("search deindex failed")
		}
		s.notifyOwner(ctx, l, tpl.ListingDeleted)
	default:
		return ErrInvalidAction
	}

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{
			"actor_id":   actor.ID,
			"listing_id": listingID,
			"action":     string(action),
		}).Info("listing moderated")
	}
	return nil
}

// ListUsers returns all users in the safe projection, sorted by a
// whitelisted column.
func (s *ModerationService) ListUsers(ctx context.Context, actor entity.Actor, sortField, sortOrder string) ([]entity.UserSummary, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	desc := strings.EqualFold(sortOrder, "desc")
	return s.Users.List(ctx, repo.UserSort{Field: sortField, Desc: desc})
}

// BanUser sets the blacklist window to one year from now. Banning an
// already-banned user resets the window; it does not accumulate.
func (s *ModerationService) BanUser(ctx context.Context, actor entity.Actor, userID string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	until := time.Now().AddDate(1, 0, 0)
	if err := s.Users.SetBlacklistUntil(ctx, userID, &until); err != nil {
		return mapNotFound(err)
	}
	if u, err := s.Users.GetByID(ctx, userID); err == nil {
		s.enqueueEmail(ctx, u.Email, tpl.AccountBanned, map[string]any{
			"Name":  u.Name,
			"Until": until.Format("02 January 2006"),
		})
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"actor_id": actor.ID, "user_id": userID, "until": until}).Info("user banned")
	}
	return nil
}

// UnbanUser clears the blacklist window.
func (s *ModerationService) UnbanUser(ctx context.Context, actor entity.Actor, userID string) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	if err := s.Users.SetBlacklistUntil(ctx, userID, nil); err != nil {
		return mapNotFound(err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"actor_id": actor.ID, "user_id": userID}).Info("user unbanned")
	}
	return nil
}

// SetTrustPenalty sets the manual trust-score penalty. There is no automatic
// penalty-to-ban conversion; downstream ranking reads the value as-is.
func (s *ModerationService) SetTrustPenalty(ctx context.Context, actor entity.Actor, userID string, penalty int) error {
	if err := s.requireAdmin(actor); err != nil {
		return err
	}
	if penalty < 0 {
		return ErrInvalidAction
	}
	return mapNotFound(s.Users.SetTrustPenalty(ctx, userID, penalty))
}

// ReportQueue returns the read-only report review queue.
func (s *ModerationService) ReportQueue(ctx context.Context, actor entity.Actor, limit, offset int) ([]entity.ReportedListing, error) {
	if err := s.requireAdmin(actor); err != nil {
		return nil, err
	}
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.Community.ReportQueue(ctx, limit, offset)
}

// Stats aggregates dashboard counts straight from the store. No caching, so
// the numbers always match independent counts.
func (s *ModerationService) Stats(ctx context.Context, actor entity.Actor) (entity.Stats, error) {
	if err := s.requireAdmin(actor); err != nil {
		return entity.Stats{}, err
	}
	var st entity.Stats
	var err error
	if st.TotalUsers, err = s.Users.Count(ctx); err != nil {
		return entity.Stats{}, err
	}
	if st.ActiveListings, err = s.Listings.CountByStatus(ctx, entity.ListingActive); err != nil {
		return entity.Stats{}, err
	}
	if st.PendingListings, err = s.Listings.CountByStatus(ctx, entity.ListingPending); err != nil {
		return entity.Stats{}, err
	}
	if st.SoldListings, err = s.Listings.CountByStatus(ctx, entity.ListingSold); err != nil {
		return entity.Stats{}, err
	}
	if st.OpenReports, err = s.Community.CountReports(ctx); err != nil {
		return entity.Stats{}, err
	}
	return st, nil
}

func (s *ModerationService) notifyOwner(ctx context.Context, l *entity.Listing, kind string) {
	if s.Community != nil {
		n := &entity.Notification{UserID: l.OwnerID, Kind: kind, Body: l.Title}
		if err := s.Community.CreateNotification(ctx, n); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", l.OwnerID).Warn("notification insert failed")
		}
	}
	if u, err := s.Users.GetByID(ctx, l.OwnerID); err == nil {
		s.enqueueEmail(ctx, u.Email, kind, map[string]any{
			"Name":         u.Name,
			"ListingTitle": l.Title,
		})
	}
}

func (s *ModerationService) enqueueEmail(ctx context.Context, to, kind string, data map[string]any) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Template: kind, Data: data}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", to).Warn("email enqueue failed")
	}
}

func mapNotFound(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
