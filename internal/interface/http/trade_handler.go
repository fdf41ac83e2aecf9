package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/pkg/response"
	"github.com/adityawp/campusmarket/pkg/validation"
)

type TradeHandler struct {
	Svc    *app.TradeService
	Logger *logrus.Logger
}

func NewTradeHandler(svc *app.TradeService, logger *logrus.Logger) *TradeHandler {
	return &TradeHandler{Svc: svc, Logger: logger}
}

type amountRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

type offerRequest struct {
	Amount  float64 `json:"amount" binding:"required,gt=0"`
	Message string  `json:"message" binding:"max=500"`
}

type groupOrderRequest struct {
	TargetCount int `json:"target_count" binding:"required,min=2"`
}

// PlaceBid POST /api/listings/:id/bids
func (h *TradeHandler) PlaceBid(c *gin.Context) {
	var req amountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	b, err := h.Svc.PlaceBid(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Amount)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, b, "bid placed", nil)
}

// ListBids GET /api/listings/:id/bids
func (h *TradeHandler) ListBids(c *gin.Context) {
	bids, err := h.Svc.ListBids(c.Request.Context(), c.Param("id"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, bids, "bids", map[string]any{"count": len(bids)})
}

// MakeOffer POST /api/listings/:id/offers
func (h *TradeHandler) MakeOffer(c *gin.Context) {
	var req offerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	o, err := h.Svc.MakeOffer(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Amount, req.Message)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, o, "offer sent", nil)
}

// ListOffers GET /api/listings/:id/offers. Seller only.
func (h *TradeHandler) ListOffers(c *gin.Context) {
	offers, err := h.Svc.ListOffers(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, offers, "offers", map[string]any{"count": len(offers)})
}

// AcceptOffer POST /api/offers/:id/accept. Creates the order.
func (h *TradeHandler) AcceptOffer(c *gin.Context) {
	order, err := h.Svc.AcceptOffer(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, order, "offer accepted", nil)
}

// DeclineOffer POST /api/offers/:id/decline
func (h *TradeHandler) DeclineOffer(c *gin.Context) {
	if err := h.Svc.DeclineOffer(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"declined": true}, "offer declined", nil)
}

// MyOrders GET /api/orders
func (h *TradeHandler) MyOrders(c *gin.Context) {
	orders, err := h.Svc.MyOrders(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, orders, "orders", map[string]any{"count": len(orders)})
}

// MarkOrderPaid POST /api/orders/:id/paid
func (h *TradeHandler) MarkOrderPaid(c *gin.Context) {
	if err := h.Svc.MarkOrderPaid(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"paid": true}, "order paid", nil)
}

// MarkOrderFailed POST /api/orders/:id/failed. Bumps the buyer's
// failed-payment counter for moderation to review.
func (h *TradeHandler) MarkOrderFailed(c *gin.Context) {
	if err := h.Svc.MarkOrderFailed(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"failed": true}, "payment failure recorded", nil)
}

// CreateGroupOrder POST /api/listings/:id/group-orders
func (h *TradeHandler) CreateGroupOrder(c *gin.Context) {
	var req groupOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	g, err := h.Svc.CreateGroupOrder(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.TargetCount)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, g, "group order opened", nil)
}

// JoinGroupOrder POST /api/group-orders/:id/join
func (h *TradeHandler) JoinGroupOrder(c *gin.Context) {
	g, err := h.Svc.JoinGroupOrder(c.Request.Context(), c.GetString("userID"), c.Param("id"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, g, "joined group order", nil)
}

// LeaveGroupOrder POST /api/group-orders/:id/leave
func (h *TradeHandler) LeaveGroupOrder(c *gin.Context) {
	if err := h.Svc.LeaveGroupOrder(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"left": true}, "left group order", nil)
}
