package application_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/domain/repository"
)

func newModerationService(users *MockUserRepo, listings *MockListingRepo, community *MockCommunityRepo) *app.ModerationService {
	return app.NewModerationService(users, listings, community, nil, nil, nil, "")
}

var admin = entity.Actor{ID: "admin-1", Role: entity.RoleAdmin}
var member = entity.Actor{ID: "user-1", Role: entity.RoleMember}

func TestModeration_NonAdminRejectedEverywhere(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)
	ctx := context.Background()

	_, err := svc.ModerationQueue(ctx, member, 10, 0)
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	err = svc.SetListingStatus(ctx, member, "l1", entity.ActionApprove)
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	_, err = svc.ListUsers(ctx, member, "", "")
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	err = svc.BanUser(ctx, member, "u2")
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	err = svc.UnbanUser(ctx, member, "u2")
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	err = svc.SetTrustPenalty(ctx, member, "u2", 5)
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	_, err = svc.ReportQueue(ctx, member, 10, 0)
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	_, err = svc.Stats(ctx, member)
	assert.ErrorIs(t, err, app.ErrUnauthorized)

	// The store must never be touched on a rejected call.
	users.AssertNotCalled(t, "SetBlacklistUntil", mock.Anything, mock.Anything, mock.Anything)
	listings.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestModeration_ApprovePendingListing(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)
	ctx := context.Background()

	l := &entity.Listing{ID: "l1", OwnerID: "u1", Title: "Bike", Status: entity.ListingPending}
	listings.On("GetByID", mock.Anything, "l1").Return(l, nil)
	listings.On("SetStatus", mock.Anything, "l1", entity.ListingActive).Return(nil)
	community.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == "u1" && n.Body == "Bike"
	})).Return(nil)
	users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1", Email: "u1@x.test", Name: "U"}, nil)

	err := svc.SetListingStatus(ctx, admin, "l1", entity.ActionApprove)
	assert.NoError(t, err)
	listings.AssertExpectations(t)
	community.AssertExpectations(t)
}

func TestModeration_ApproveActiveListingIsIdempotent(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	l := &entity.Listing{ID: "l1", Status: entity.ListingActive}
	listings.On("GetByID", mock.Anything, "l1").Return(l, nil)

	err := svc.SetListingStatus(context.Background(), admin, "l1", entity.ActionApprove)
	assert.NoError(t, err)
	listings.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestModeration_ApproveSoldListingRejected(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	l := &entity.Listing{ID: "l1", Status: entity.ListingSold}
	listings.On("GetByID", mock.Anything, "l1").Return(l, nil)

	err := svc.SetListingStatus(context.Background(), admin, "l1", entity.ActionApprove)
	assert.ErrorIs(t, err, app.ErrInvalidAction)
}

func TestModeration_DeleteIsIdempotentAndTerminal(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)
	ctx := context.Background()

	deleted := &entity.Listing{ID: "l1", Status: entity.ListingDeleted}
	listings.On("GetByID", mock.Anything, "l1").Return(deleted, nil)
	assert.NoError(t, svc.SetListingStatus(ctx, admin, "l1", entity.ActionDelete))
	listings.AssertNotCalled(t, "SetStatus", mock.Anything, mock.Anything, mock.Anything)

	// A deleted listing can never be approved again.
	err := svc.SetListingStatus(ctx, admin, "l1", entity.ActionApprove)
	assert.ErrorIs(t, err, app.ErrInvalidAction)
}

func TestModeration_DeleteActiveListing(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	l := &entity.Listing{ID: "l1", OwnerID: "u1", Title: "Lamp", Status: entity.ListingActive}
	listings.On("GetByID", mock.Anything, "l1").Return(l, nil)
	listings.On("SetStatus", mock.Anything, "l1", entity.ListingDeleted).Return(nil)
	community.On("CreateNotification", mock.Anything, mock.Anything).Return(nil)
	users.On("GetByID", mock.Anything, "u1").Return(&entity.User{ID: "u1"}, nil)

	err := svc.SetListingStatus(context.Background(), admin, "l1", entity.ActionDelete)
	assert.NoError(t, err)
	listings.AssertExpectations(t)
}

func TestModeration_UnknownActionRejected(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	listings.On("GetByID", mock.Anything, "l1").Return(&entity.Listing{ID: "l1", Status: entity.ListingPending}, nil)

	err := svc.SetListingStatus(context.Background(), admin, "l1", entity.ModerationAction("promote"))
	assert.ErrorIs(t, err, app.ErrInvalidAction)
}

func TestModeration_ListingNotFound(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	listings.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	err := svc.SetListingStatus(context.Background(), admin, "missing", entity.ActionApprove)
	assert.ErrorIs(t, err, app.ErrNotFound)
}

func TestModeration_BanSetsOneYearWindow(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	var captured *time.Time
	users.On("SetBlacklistUntil", mock.Anything, "u2", mock.Anything).Run(func(args mock.Arguments) {
		captured = args.Get(2).(*time.Time)
	}).Return(nil)
	users.On("GetByID", mock.Anything, "u2").Return(&entity.User{ID: "u2", Email: "u2@x.test"}, nil)

	before := time.Now().AddDate(1, 0, 0)
	err := svc.BanUser(context.Background(), admin, "u2")
	after := time.Now().AddDate(1, 0, 0)

	assert.NoError(t, err)
	if assert.NotNil(t, captured) {
		assert.False(t, captured.Before(before))
		assert.False(t, captured.After(after))
	}
}

func TestModeration_BanAgainResetsWindow(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	var captures []time.Time
	users.On("SetBlacklistUntil", mock.Anything, "u2", mock.Anything).Run(func(args mock.Arguments) {
		captures = append(captures, *args.Get(2).(*time.Time))
	}).Return(nil)
	users.On("GetByID", mock.Anything, "u2").Return(&entity.User{ID: "u2"}, nil)

	assert.NoError(t, svc.BanUser(context.Background(), admin, "u2"))
	assert.NoError(t, svc.BanUser(context.Background(), admin, "u2"))

	// Second ban replaces the window rather than stacking another year.
	if assert.Len(t, captures, 2) {
		limit := time.Now().AddDate(1, 0, 1)
		assert.True(t, captures[1].Before(limit))
	}
}

func TestModeration_UnbanClearsWindow(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	users.On("SetBlacklistUntil", mock.Anything, "u2", (*time.Time)(nil)).Return(nil)

	assert.NoError(t, svc.UnbanUser(context.Background(), admin, "u2"))
	users.AssertExpectations(t)
}

func TestModeration_TrustPenalty(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)
	ctx := context.Background()

	err := svc.SetTrustPenalty(ctx, admin, "u2", -1)
	assert.ErrorIs(t, err, app.ErrInvalidAction)
	users.AssertNotCalled(t, "SetTrustPenalty", mock.Anything, mock.Anything, mock.Anything)

	users.On("SetTrustPenalty", mock.Anything, "u2", 15).Return(nil)
	assert.NoError(t, svc.SetTrustPenalty(ctx, admin, "u2", 15))
	users.AssertExpectations(t)
}

func TestModeration_ListUsersSortPassthrough(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	users.On("List", mock.Anything, repository.UserSort{Field: "trust_score_penalty", Desc: true}).
		Return([]entity.UserSummary{{ID: "u1"}}, nil)

	out, err := svc.ListUsers(context.Background(), admin, "trust_score_penalty", "DESC")
	assert.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestModeration_QueueClampsLimit(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	listings.On("ModerationQueue", mock.Anything, 50, 0).Return([]entity.ModeratedListing{}, nil)

	_, err := svc.ModerationQueue(context.Background(), admin, 0, -3)
	assert.NoError(t, err)
	_, err = svc.ModerationQueue(context.Background(), admin, 500, 0)
	assert.NoError(t, err)
	listings.AssertNumberOfCalls(t, "ModerationQueue", 2)
}

func TestModeration_StatsAggregatesLiveCounts(t *testing.T) {
	users := new(MockUserRepo)
	listings := new(MockListingRepo)
	community := new(MockCommunityRepo)
	svc := newModerationService(users, listings, community)

	users.On("Count", mock.Anything).Return(int64(10), nil)
	listings.On("CountByStatus", mock.Anything, entity.ListingActive).Return(int64(4), nil)
	listings.On("CountByStatus", mock.Anything, entity.ListingPending).Return(int64(2), nil)
	listings.On("CountByStatus", mock.Anything, entity.ListingSold).Return(int64(3), nil)
	community.On("CountReports", mock.Anything).Return(int64(1), nil)

	st, err := svc.Stats(context.Background(), admin)
	assert.NoError(t, err)
	assert.Equal(t, entity.Stats{
		TotalUsers:      10,
		ActiveListings:  4,
		PendingListings: 2,
		SoldListings:    3,
		OpenReports:     1,
	}, st)
}
