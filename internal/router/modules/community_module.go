package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/campusmarket/internal/container"
	handlers "github.com/adityawp/campusmarket/internal/interface/http"
	"github.com/adityawp/campusmarket/internal/interface/middleware"
	"github.com/adityawp/campusmarket/pkg/helpers"
)

// CommunityModule registers reviews, reports, notifications and messaging.
// Reviews are public to read; everything else needs a session.
type CommunityModule struct {
	Handler *handlers.CommunityHandler
	JWT     *helpers.JWTManager
}

func NewCommunityModule(h *handlers.CommunityHandler, jwt *helpers.JWTManager) *CommunityModule {
	return &CommunityModule{Handler: h, JWT: jwt}
}

func (m *CommunityModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/listings/:id/reviews", browseLimiter, m.Handler.ListReviews)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/listings/:id/reviews", m.Handler.LeaveReview)
		auth.POST("/listings/:id/report", m.Handler.ReportListing)

		auth.GET("/notifications", m.Handler.Notifications)
		auth.POST("/notifications/:id/read", m.Handler.MarkNotificationRead)

		auth.POST("/messages", m.Handler.SendMessage)
		auth.GET("/messages/:userID", m.Handler.Conversation)
	}
}
