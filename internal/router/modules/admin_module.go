package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/campusmarket/internal/container"
	handlers "github.com/adityawp/campusmarket/internal/interface/http"
	"github.com/adityawp/campusmarket/internal/interface/middleware"
	"github.com/adityawp/campusmarket/pkg/helpers"
)

// AdminModule registers the moderation console under /api/admin. RequireAdmin
// is an early 403 for non-admin sessions; the services check the actor role
// again so no path around the middleware skips the check.
type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	admin.Use(middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.GET("/listings", m.Handler.ListingQueue)
		admin.POST("/listings/moderate", m.Handler.ModerateListing)

		admin.GET("/users", m.Handler.ListUsers)
		admin.POST("/users/moderate", m.Handler.ModerateUser)
		admin.POST("/users/trust-penalty", m.Handler.SetTrustPenalty)

		admin.GET("/reports", m.Handler.Reports)
		admin.GET("/stats", m.Handler.Stats)
	}
}
