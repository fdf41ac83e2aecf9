package repository

import (
	"context"

	"github.com/adityawp/campusmarket/internal/domain/entity"
)

// ListingRepository defines listing persistence operations.
type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	SetStatus(ctx context.Context, id string, status entity.ListingStatus) error
	SetImageURL(ctx context.Context, id, url string) error

	// ListActive returns active listings, newest first.
	ListActive(ctx context.Context, limit, offset int) ([]entity.Listing, error)
	// ModerationQueue returns pending and active listings, newest first,
	// joined with owner display fields.
	ModerationQueue(ctx context.Context, limit, offset int) ([]entity.ModeratedListing, error)
	CountByStatus(ctx context.Context, status entity.ListingStatus) (int64, error)
}
