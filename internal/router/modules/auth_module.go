package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/campusmarket/internal/container"
	handlers "github.com/adityawp/campusmarket/internal/interface/http"
	"github.com/adityawp/campusmarket/internal/interface/middleware"
)

// AuthModule exposes the account recovery endpoints. All three are public;
// the init route gets the tightest limiter since it triggers outbound mail.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	recoverInitLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)
	recoverConfirmLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/recover/init", recoverInitLimiter, m.Handler.RecoverInit)
	rg.POST("/auth/recover/password", recoverConfirmLimiter, m.Handler.RecoverPassword)
	rg.POST("/auth/recover/username", recoverConfirmLimiter, m.Handler.RecoverUsername)
}
