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

func newRecoveryService(users *MockUserRepo, codes *MockCodeRepo) *app.RecoveryService {
	return app.NewRecoveryService(users, codes, nil, nil, 15*time.Minute)
}

func TestRecovery_RequestCodeUnknownEmailStaysSilent(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	users.On("GetByEmail", mock.Anything, "ghost@campus.test").Return(nil, repository.ErrNotFound)

	err := svc.RequestCode(context.Background(), "Ghost@Campus.Test ", entity.RecoverPassword)
	assert.NoError(t, err)
	codes.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestRecovery_RequestCodeIssuesAndReplaces(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	users.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.User{ID: "u1", Email: "a@campus.test", Name: "A"}, nil)

	var issued []*entity.VerificationCode
	codes.On("Upsert", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		issued = append(issued, args.Get(1).(*entity.VerificationCode))
	}).Return(nil)

	assert.NoError(t, svc.RequestCode(context.Background(), "a@campus.test", entity.RecoverPassword))
	assert.NoError(t, svc.RequestCode(context.Background(), "a@campus.test", entity.RecoverPassword))

	// Both go through Upsert on the same email key, so the second replaces
	// the first instead of coexisting with it.
	if assert.Len(t, issued, 2) {
		assert.Equal(t, issued[0].Email, issued[1].Email)
		assert.Len(t, issued[0].Code, 6)
		assert.True(t, issued[0].ExpiresAt.After(time.Now()))
	}
}

func TestRecovery_RequestCodeBadPurpose(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	err := svc.RequestCode(context.Background(), "a@campus.test", entity.RecoveryPurpose("pin"))
	assert.ErrorIs(t, err, app.ErrInvalidAction)
}

func TestRecovery_ConfirmPasswordReset(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)
	ctx := context.Background()

	codes.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.VerificationCode{
		Email:     "a@campus.test",
		Code:      "123456",
		Purpose:   entity.RecoverPassword,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}, nil)
	users.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.User{ID: "u1"}, nil)
	users.On("UpdatePassword", mock.Anything, "u1", mock.Anything).Return(nil)
	codes.On("Delete", mock.Anything, "a@campus.test").Return(nil)

	err := svc.ConfirmPasswordReset(ctx, "a@campus.test", "123456", "newpassword1")
	assert.NoError(t, err)
	codes.AssertCalled(t, "Delete", mock.Anything, "a@campus.test")
}

func TestRecovery_ConfirmRejectsWrongCode(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	codes.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.VerificationCode{
		Email:     "a@campus.test",
		Code:      "123456",
		Purpose:   entity.RecoverPassword,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}, nil)

	err := svc.ConfirmPasswordReset(context.Background(), "a@campus.test", "654321", "newpassword1")
	assert.ErrorIs(t, err, app.ErrInvalidCode)
	users.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestRecovery_ConfirmRejectsExpiredCodeAndConsumesIt(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	codes.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.VerificationCode{
		Email:     "a@campus.test",
		Code:      "123456",
		Purpose:   entity.RecoverPassword,
		ExpiresAt: time.Now().Add(-time.Minute),
	}, nil)
	codes.On("Delete", mock.Anything, "a@campus.test").Return(nil)

	err := svc.ConfirmPasswordReset(context.Background(), "a@campus.test", "123456", "newpassword1")
	assert.ErrorIs(t, err, app.ErrInvalidCode)
	codes.AssertCalled(t, "Delete", mock.Anything, "a@campus.test")
}

func TestRecovery_ConfirmRejectsPurposeMismatch(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	// Code issued for username recovery cannot reset a password.
	codes.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.VerificationCode{
		Email:     "a@campus.test",
		Code:      "123456",
		Purpose:   entity.RecoverUsername,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}, nil)

	err := svc.ConfirmPasswordReset(context.Background(), "a@campus.test", "123456", "newpassword1")
	assert.ErrorIs(t, err, app.ErrInvalidCode)
}

func TestRecovery_ConfirmRejectsMissingCode(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	codes.On("GetByEmail", mock.Anything, "a@campus.test").Return(nil, repository.ErrNotFound)

	err := svc.ConfirmPasswordReset(context.Background(), "a@campus.test", "123456", "newpassword1")
	assert.ErrorIs(t, err, app.ErrInvalidCode)
}

func TestRecovery_RecoverUsernameConsumesCode(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	codes.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.VerificationCode{
		Email:     "a@campus.test",
		Code:      "123456",
		Purpose:   entity.RecoverUsername,
		ExpiresAt: time.Now().Add(10 * time.Minute),
	}, nil)
	users.On("GetByEmail", mock.Anything, "a@campus.test").Return(&entity.User{ID: "u1", Username: "alice"}, nil)
	codes.On("Delete", mock.Anything, "a@campus.test").Return(nil)

	err := svc.RecoverUsername(context.Background(), "a@campus.test", "123456")
	assert.NoError(t, err)
	codes.AssertCalled(t, "Delete", mock.Anything, "a@campus.test")
}

func TestRecovery_RecordFailedPayment(t *testing.T) {
	users := new(MockUserRepo)
	codes := new(MockCodeRepo)
	svc := newRecoveryService(users, codes)

	users.On("IncrementFailedPayments", mock.Anything, "u1").Return(nil)
	assert.NoError(t, svc.RecordFailedPayment(context.Background(), "u1"))

	users.On("IncrementFailedPayments", mock.Anything, "missing").Return(repository.ErrNotFound)
	err := svc.RecordFailedPayment(context.Background(), "missing")
	assert.ErrorIs(t, err, app.ErrNotFound)
}
