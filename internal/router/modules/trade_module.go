package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adityawp/campusmarket/internal/container"
	handlers "github.com/adityawp/campusmarket/internal/interface/http"
	"github.com/adityawp/campusmarket/internal/interface/middleware"
	"github.com/adityawp/campusmarket/pkg/helpers"
)

// TradeModule registers bids, offers, orders and group orders. Every route
// requires a session; bid listings are readable by any logged-in user.
type TradeModule struct {
	Handler *handlers.TradeHandler
	JWT     *helpers.JWTManager
}

func NewTradeModule(h *handlers.TradeHandler, jwt *helpers.JWTManager) *TradeModule {
	return &TradeModule{Handler: h, JWT: jwt}
}

func (m *TradeModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/listings/:id/bids", m.Handler.PlaceBid)
		auth.GET("/listings/:id/bids", m.Handler.ListBids)
		auth.POST("/listings/:id/offers", m.Handler.MakeOffer)
		auth.GET("/listings/:id/offers", m.Handler.ListOffers)
		auth.POST("/offers/:id/accept", m.Handler.AcceptOffer)
		auth.POST("/offers/:id/decline", m.Handler.DeclineOffer)

		auth.GET("/orders", m.Handler.MyOrders)
		auth.POST("/orders/:id/paid", m.Handler.MarkOrderPaid)
		auth.POST("/orders/:id/failed", m.Handler.MarkOrderFailed)

		auth.POST("/listings/:id/group-orders", m.Handler.CreateGroupOrder)
		auth.POST("/group-orders/:id/join", m.Handler.JoinGroupOrder)
		auth.POST("/group-orders/:id/leave", m.Handler.LeaveGroupOrder)
	}
}
