package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/adityawp/campusmarket/internal/domain/entity"
)

func TestListingCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from entity.ListingStatus
		to   entity.ListingStatus
		ok   bool
	}{
		{"pending to active", entity.ListingPending, entity.ListingActive, true},
		{"active to sold", entity.ListingActive, entity.ListingSold, true},
		{"pending to deleted", entity.ListingPending, entity.ListingDeleted, true},
		{"active to deleted", entity.ListingActive, entity.ListingDeleted, true},
		{"sold to deleted", entity.ListingSold, entity.ListingDeleted, true},
		{"active to active", entity.ListingActive, entity.ListingActive, false},
		{"sold to active", entity.ListingSold, entity.ListingActive, false},
		{"pending to sold", entity.ListingPending, entity.ListingSold, false},
		{"deleted is terminal", entity.ListingDeleted, entity.ListingActive, false},
		{"deleted stays deleted", entity.ListingDeleted, entity.ListingDeleted, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			l := &entity.Listing{Status: tc.from}
			assert.Equal(t, tc.ok, l.CanTransition(tc.to))
		})
	}
}

func TestUserBanned(t *testing.T) {
	now := time.Now()

	u := &entity.User{}
	assert.False(t, u.Banned(now), "no window means not banned")

	future := now.Add(time.Hour)
	u.BlacklistUntil = &future
	assert.True(t, u.Banned(now))

	past := now.Add(-time.Hour)
	u.BlacklistUntil = &past
	assert.False(t, u.Banned(now), "expired window lifts the ban without a write")
}

func TestActorIsAdmin(t *testing.T) {
	assert.True(t, entity.Actor{Role: entity.RoleAdmin}.IsAdmin())
	assert.False(t, entity.Actor{Role: entity.RoleMember}.IsAdmin())
	assert.False(t, entity.Actor{}.IsAdmin())
}

func TestVerificationCodeExpired(t *testing.T) {
	now := time.Now()
	v := &entity.VerificationCode{ExpiresAt: now.Add(time.Minute)}
	assert.False(t, v.Expired(now))
	assert.True(t, v.Expired(now.Add(2*time.Minute)))
}
