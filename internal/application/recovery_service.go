package application

import (
	"context"
	"crypto/subtle"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	repo "github.com/adityawp/campusmarket/internal/domain/repository"
	"github.com/adityawp/campusmarket/pkg/helpers"
	"github.com/adityawp/campusmarket/pkg/mailer"
	tpl "github.com/adityawp/campusmarket/pkg/mailer/templates"
)

// RecoveryService issues and validates one-time recovery codes and tracks
// failed-payment counters. Responses never reveal whether an email exists.
type RecoveryService struct {
	Users   repo.UserRepository
	Codes   repo.VerificationCodeRepository
	Logger  *logrus.Logger
	Pub     *helpers.RabbitPublisher
	CodeTTL time.Duration
}

func NewRecoveryService(users repo.UserRepository, codes repo.VerificationCodeRepository, logger *logrus.Logger, pub *helpers.RabbitPublisher, codeTTL time.Duration) *RecoveryService {
	if codeTTL <= 0 {
		codeTTL = 15 * time.Minute
	}
	return &RecoveryService{Users: users, Codes: codes, Logger: logger, Pub: pub, CodeTTL: codeTTL}
}

// RequestCode issues a one-time code for the email. Re-requesting before
// expiry replaces the previous code, so at most one is live per address.
// Unknown emails return success without persisting or sending anything.
func (s *RecoveryService) RequestCode(ctx context.Context, email string, purpose entity.RecoveryPurpose) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if purpose != entity.RecoverPassword && purpose != entity.RecoverUsername {
		return ErrInvalidAction
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		// Anti-enumeration: identical outcome for unknown addresses.
		if s.Logger != nil {
			s.Logger.WithField("purpose", string(purpose)).Info("recovery requested for unknown email")
		}
		return nil
	}

	code, err := helpers.GenOTPCode()
	if err != nil {
		return err
	}
	v := &entity.VerificationCode{
		Email:     email,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(s.CodeTTL),
	}
	if err := s.Codes.Upsert(ctx, v); err != nil {
		return err
	}

	s.enqueueEmail(ctx, email, tpl.RecoveryCode, map[string]any{
		"Name":      u.Name,
		"Code":      code,
		"ExpiresIn": s.CodeTTL.String(),
	})
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "purpose": string(purpose)}).Info("recovery code issued")
	}
	return nil
}

// ConfirmPasswordReset validates the code and updates the credential. The
// code is consumed on success; mismatch, expiry and absence are all the same
// generic failure.
func (s *RecoveryService) ConfirmPasswordReset(ctx context.Context, email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	v, err := s.validateCode(ctx, email, code, entity.RecoverPassword)
	if err != nil {
		return err
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return ErrInvalidCode
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(ctx, u.ID, hash); err != nil {
		return err
	}
	_ = s.Codes.Delete(ctx, v.Email) // consume exactly once
	if s.Logger != nil {
		s.Logger.WithField("user_id", u.ID).Info("password reset via recovery code")
	}
	return nil
}

// RecoverUsername validates the code and emails the account's username.
func (s *RecoveryService) RecoverUsername(ctx context.Context, email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	v, err := s.validateCode(ctx, email, code, entity.RecoverUsername)
	if err != nil {
		return err
	}

	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return ErrInvalidCode
	}
	_ = s.Codes.Delete(ctx, v.Email)
	s.enqueueEmail(ctx, email, tpl.UsernameReminder, map[string]any{
		"Name":     u.Name,
		"Username": u.Username,
	})
	return nil
}

// RecordFailedPayment increments the user's failed-payment counter. The
// counter feeds no automatic ban; moderation reads it as a signal only.
func (s *RecoveryService) RecordFailedPayment(ctx context.Context, userID string) error {
	return mapNotFound(s.Users.IncrementFailedPayments(ctx, userID))
}

func (s *RecoveryService) validateCode(ctx context.Context, email, code string, purpose entity.RecoveryPurpose) (*entity.VerificationCode, error) {
	v, err := s.Codes.GetByEmail(ctx, email)
	if err != nil || v == nil {
		return nil, ErrInvalidCode
	}
	if v.Purpose != purpose {
		return nil, ErrInvalidCode
	}
	if v.Expired(time.Now()) {
		_ = s.Codes.Delete(ctx, email)
		return nil, ErrInvalidCode
	}
	if subtle.ConstantTimeCompare([]byte(v.Code), []byte(code)) != 1 {
		return nil, ErrInvalidCode
	}
	return v, nil
}

func (s *RecoveryService) enqueueEmail(ctx context.Context, to, kind string, data map[string]any) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{To: to, Template: kind, Data: data}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("to", to).Warn("email enqueue failed")
	}
}
