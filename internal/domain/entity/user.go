package entity

import (
	"time"
)

type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// User is the aggregate root for the account domain.
// Passwords are stored as bcrypt hashes in Password.
type User struct {
	ID                 string
	Email              string
	Username           string
	Password           string
	Name               string
	AvatarURL          string
	Role               Role
	BlacklistUntil     *time.Time
	FailedPaymentCount int
	TrustScorePenalty  int
	IsVerified         bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Banned reports whether the user is inside an active blacklist window.
func (u *User) Banned(now time.Time) bool {
	return u.BlacklistUntil != nil && now.Before(*u.BlacklistUntil)
}

func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }

// Actor identifies the caller of a privileged operation. Role is taken from
// the authenticated session, not from the request payload.
type Actor struct {
	ID   string
	Role Role
}

func (a Actor) IsAdmin() bool { return a.Role == RoleAdmin }

// UserSummary is the safe projection returned by admin user listings.
// It never carries the password hash.
type UserSummary struct {
	ID                 string     `json:"id"`
	Email              string     `json:"email"`
	Username           string     `json:"username"`
	Name               string     `json:"name"`
	Role               Role       `json:"role"`
	BlacklistUntil     *time.Time `json:"blacklist_until,omitempty"`
	FailedPaymentCount int        `json:"failed_payment_count"`
	TrustScorePenalty  int        `json:"trust_score_penalty"`
	CreatedAt          time.Time  `json:"created_at"`
}
