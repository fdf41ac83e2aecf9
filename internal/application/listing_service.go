package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	repo "github.com/adityawp/campusmarket/internal/domain/repository"
	"github.com/adityawp/campusmarket/pkg/helpers"
)

// ListingService owns the seller-facing listing lifecycle. New listings start
// pending and only enter the search index once moderation approves them.
type ListingService struct {
	Listings        repo.ListingRepository
	GCS             *storage.Client
	GCSBucket       string
	ES              *elasticsearch.Client
	ESListingsIndex string
	Logger          *logrus.Logger
}

func NewListingService(listings repo.ListingRepository, gcs *storage.Client, gcsBucket string, es *elasticsearch.Client, esListingsIndex string, logger *logrus.Logger) *ListingService {
	return &ListingService{
		Listings:        listings,
		GCS:             gcs,
		GCSBucket:       gcsBucket,
		ES:              es,
		ESListingsIndex: esListingsIndex,
		Logger:          logger,
	}
}

type CreateListingInput struct {
	Title       string
	Description string
	Price       float64
	Category    string
}

func (s *ListingService) Create(ctx context.Context, ownerID string, in CreateListingInput) (*entity.Listing, error) {
	l := &entity.Listing{
		OwnerID:     ownerID,
		Title:       strings.TrimSpace(in.Title),
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		Status:      entity.ListingPending,
	}
	if err := s.Listings.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *ListingService) Get(ctx context.Context, id string) (*entity.Listing, error) {
	l, err := s.Listings.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err)
	}
	if l.Status == entity.ListingDeleted {
		return nil, ErrNotFound
	}
	return l, nil
}

func (s *ListingService) ListActive(ctx context.Context, limit, offset int) ([]entity.Listing, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Listings.ListActive(ctx, limit, offset)
}

// Search queries the search index; only approved listings live there.
func (s *ListingService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	return searchListings(ctx, s.ES, s.ESListingsIndex, q, size)
}

// MarkSold moves an active listing to sold. Only the owner may do this.
func (s *ListingService) MarkSold(ctx context.Context, actorID, listingID string) error {
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return mapNotFound(err)
	}
	if l.OwnerID != actorID {
		return ErrUnauthorized
	}
	if !l.CanTransition(entity.ListingSold) {
		return ErrInvalidAction
	}
	if err := s.Listings.SetStatus(ctx, listingID, entity.ListingSold); err != nil {
		return err
	}
	if err := removeListing(ctx, s.ES, s.ESListingsIndex, listingID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("listing_id", listingID).Warn("search deindex failed")
	}
	return nil
}

// Delete soft-deletes the owner's listing.
func (s *ListingService) Delete(ctx context.Context, actorID, listingID string) error {
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return mapNotFound(err)
	}
	if l.OwnerID != actorID {
		return ErrUnauthorized
	}
	if l.Status == entity.ListingDeleted {
		return nil
	}
	if err := s.Listings.SetStatus(ctx, listingID, entity.ListingDeleted); err != nil {
		return err
	}
	if err := removeListing(ctx, s.ES, s.ESListingsIndex, listingID); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("listing_id", listingID).Warn("search deindex failed")
	}
	return nil
}

// UploadPhoto stores a listing photo in GCS and records its public URL.
func (s *ListingService) UploadPhoto(ctx context.Context, actorID, listingID string, r io.Reader, filename, contentType string) (string, error) {
	l, err := s.Listings.GetByID(ctx, listingID)
	if err != nil {
		return "", mapNotFound(err)
	}
	if l.OwnerID != actorID {
		return "", ErrUnauthorized
	}
	if s.GCS == nil || s.GCSBucket == "" {
		return "", ErrInvalidAction
	}
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("listings", listingID, id+ext))
	url, err := helpers.UploadImageToGCS(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return "", err
	}
	if err := s.Listings.SetImageURL(ctx, listingID, url); err != nil {
		return "", err
	}
	return url, nil
}
