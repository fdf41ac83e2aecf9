package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/pkg/response"
	"github.com/adityawp/campusmarket/pkg/validation"
)

// AuthHandler covers the account recovery endpoints. Every init response has
// the same shape whether or not the address belongs to an account.
type AuthHandler struct {
	Svc    *app.RecoveryService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *app.RecoveryService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

// RecoverInit POST /api/auth/recover/init {email, purpose}
func (h *AuthHandler) RecoverInit(c *gin.Context) {
	var req struct {
		Email   string `json:"email" binding:"required,email"`
		Purpose string `json:"purpose" binding:"required,oneof=password username"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.RequestCode(c.Request.Context(), req.Email, entity.RecoveryPurpose(req.Purpose)); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	// Same body for known and unknown emails.
	response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "if the account exists, a code was sent", nil)
}

// RecoverPassword POST /api/auth/recover/password {email, code, new_password}
func (h *AuthHandler) RecoverPassword(c *gin.Context) {
	var req struct {
		Email       string `json:"email" binding:"required,email"`
		Code        string `json:"code" binding:"required,otp"`
		NewPassword string `json:"new_password" binding:"required,pwd"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.ConfirmPasswordReset(c.Request.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"reset": true}, "password updated", nil)
}

// RecoverUsername POST /api/auth/recover/username {email, code}
func (h *AuthHandler) RecoverUsername(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
		Code  string `json:"code" binding:"required,otp"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	if err := h.Svc.RecoverUsername(c.Request.Context(), req.Email, req.Code); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"sent": true}, "username sent", nil)
}
