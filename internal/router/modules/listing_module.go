package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/campusmarket/internal/container"
	handlers "github.com/adityawp/campusmarket/internal/interface/http"
	"github.com/adityawp/campusmarket/internal/interface/middleware"
	"github.com/adityawp/campusmarket/pkg/helpers"
)

// ListingModule registers the marketplace browse and sell routes.
// Browsing and search stay public; everything that mutates requires auth.
type ListingModule struct {
	Handler *handlers.ListingHandler
	JWT     *helpers.JWTManager
}

func NewListingModule(h *handlers.ListingHandler, jwt *helpers.JWTManager) *ListingModule {
	return &ListingModule{Handler: h, JWT: jwt}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), nil)

	rg.GET("/listings", browseLimiter, m.Handler.List)
	rg.GET("/listings/search", browseLimiter, m.Handler.Search)
	rg.GET("/listings/:id", browseLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/listings", m.Handler.Create)
		auth.POST("/listings/:id/photo", m.Handler.UploadPhoto)
		auth.POST("/listings/:id/sold", m.Handler.MarkSold)
		auth.DELETE("/listings/:id", m.Handler.Delete)
	}
}
