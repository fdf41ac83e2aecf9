package application_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

func newListingService(listings *MockListingRepo) *app.ListingService {
	return app.NewListingService(listings, nil, "", nil, "", nil)
}

func TestListing_CreateStartsPending(t *testing.T) {
	listings := new(MockListingRepo)
	svc := newListingService(listings)

	listings.On("Create", mock.Anything, mock.MatchedBy(func(l *entity.Listing) bool {
		return l.Status == entity.ListingPending && l.Title == "Calc textbook"
	})).Return(nil)

	l, err := svc.Create(context.Background(), "u1", app.CreateListingInput{Title: "  Calc textbook ", Price: 25, Category: "books"})
	assert.NoError(t, err)
	assert.Equal(t, entity.ListingPending, l.Status)
}

func TestListing_GetHidesDeleted(t *testing.T) {
	listings := new(MockListingRepo)
	svc := newListingService(listings)

	listings.On("GetByID", mock.Anything, "gone").Return(&entity.Listing{ID: "gone", Status: entity.ListingDeleted}, nil)

	_, err := svc.Get(context.Background(), "gone")
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestListing_ListActiveClampsPaging(t *testing.T) {
	listings := new(MockListingRepo)
	svc := newListingService(listings)

	listings.On("ListActive", mock.Anything, 20, 0).Return([]entity.Listing{}, nil)

	_, err := svc.ListActive(context.Background(), -5, -1)
	assert.NoError(t, err)
	_, err = svc.ListActive(context.Background(), 1000, 0)
	assert.NoError(t, err)
	listings.AssertNumberOfCalls(t, "ListActive", 2)
}

func TestListing_MarkSoldOwnerOnly(t *testing.T) {
	listings := new(MockListingRepo)
	svc := newListingService(listings)
	ctx := context.Background()

	listings.On("GetByID", mock.Anything, "l1").Return(&entity.Listing{ID: "l1", OwnerID: "owner", Status: entity.ListingActive}, nil)

	err := svc.MarkSold(ctx, "stranger", "l1")
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	listings.On("SetStatus", mock.Anything, "l1", entity.ListingSold).Return(nil)
	assert.NoError(t, svc.MarkSold(ctx, "owner", "l1"))
}

func TestListing_MarkSoldRequiresActive(t *testing.T) {
	listings := new(MockListingRepo)
	svc := newListingService(listings)

	listings.On("GetByID", mock.Anything, "l1").Return(&entity.Listing{ID: "l1", OwnerID: "owner", Status: entity.ListingPending}, nil)

	err := svc.MarkSold(context.Background(), "owner", "l1")
	assert.ErrorIs(t, err, app.ErrInvalidAction)
}

func TestListing_DeleteIsIdempotent(t *testing.T) {
	listings := new(MockListingRepo)
	svc := newListingService(listings)

	listings.On("GetByID", mock.Anything, "l1").Return(&entity.Listing{ID: "l1", OwnerID: "owner", Status: entity.ListingDeleted}, nil)

	assert.NoError(t, svc.Delete(context.Background(), "owner", "l1"))
	listings.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestListing_NotFoundMapsThrough(t *testing.T) {
	listings := new(MockListingRepo)
	svc := newListingService(listings)

	listings.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, app.ErrNotFound)
}
