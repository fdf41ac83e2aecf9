package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/pkg/response"
	"github.com/adityawp/campusmarket/pkg/validation"
)

type CommunityHandler struct {
	Svc    *app.CommunityService
	Logger *logrus.Logger
}

func NewCommunityHandler(svc *app.CommunityService, logger *logrus.Logger) *CommunityHandler {
	return &CommunityHandler{Svc: svc, Logger: logger}
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

type reportRequest struct {
	Reason string `json:"reason" binding:"required,min=3,max=500"`
}

type messageRequest struct {
	RecipientID string `json:"recipient_id" binding:"required,uuid"`
	ListingID   string `json:"listing_id" binding:"omitempty,uuid"`
	Body        string `json:"body" binding:"required,max=2000"`
}

// LeaveReview POST /api/listings/:id/reviews
func (h *CommunityHandler) LeaveReview(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rv, err := h.Svc.LeaveReview(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Rating, req.Comment)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, rv, "review posted", nil)
}

// ListReviews GET /api/listings/:id/reviews
func (h *CommunityHandler) ListReviews(c *gin.Context) {
	reviews, err := h.Svc.ListReviews(c.Request.Context(), c.Param("id"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, reviews, "reviews", map[string]any{"count": len(reviews)})
}

// ReportListing POST /api/listings/:id/report
func (h *CommunityHandler) ReportListing(c *gin.Context) {
	var req reportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rp, err := h.Svc.ReportListing(c.Request.Context(), c.GetString("userID"), c.Param("id"), req.Reason)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, rp, "report filed", nil)
}

// Notifications GET /api/notifications?unread=true
func (h *CommunityHandler) Notifications(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"
	items, err := h.Svc.Notifications(c.Request.Context(), c.GetString("userID"), unreadOnly)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, items, "notifications", map[string]any{"count": len(items)})
}

// MarkNotificationRead POST /api/notifications/:id/read
func (h *CommunityHandler) MarkNotificationRead(c *gin.Context) {
	if err := h.Svc.MarkNotificationRead(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"read": true}, "notification read", nil)
}

// SendMessage POST /api/messages
func (h *CommunityHandler) SendMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	m, err := h.Svc.SendMessage(c.Request.Context(), c.GetString("userID"), req.RecipientID, req.ListingID, req.Body)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, m, "message sent", nil)
}

// Conversation GET /api/messages/:userID?limit=
func (h *CommunityHandler) Conversation(c *gin.Context) {
	msgs, err := h.Svc.Conversation(c.Request.Context(), c.GetString("userID"), c.Param("userID"), queryInt(c, "limit", 50))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, msgs, "conversation", map[string]any{"count": len(msgs)})
}
