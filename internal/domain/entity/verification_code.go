package entity

import "time"

type RecoveryPurpose string

const (
	RecoverPassword RecoveryPurpose = "password"
	RecoverUsername RecoveryPurpose = "username"
)

// VerificationCode binds an email to a one-time code. At most one live code
// exists per email; issuing a new one replaces the old. Consumption deletes
// the row.
type VerificationCode struct {
	Email     string
	Code      string
	Purpose   RecoveryPurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

func (v *VerificationCode) Expired(now time.Time) bool {
	return now.After(v.ExpiresAt)
}
