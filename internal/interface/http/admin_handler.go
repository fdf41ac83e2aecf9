package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/internal/interface/middleware"
	"github.com/adityawp/campusmarket/pkg/response"
)

// AdminHandler exposes the moderation engine. Target ids and actions arrive
// as query parameters; responses are success envelopes or terse errors.
type AdminHandler struct {
	Svc    *app.ModerationService
	Logger *logrus.Logger
}

func NewAdminHandler(svc *app.ModerationService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Logger: logger}
}

func queryInt(c *gin.Context, key string, def int) int {
	if v := c.Query(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// ListingQueue GET /api/admin/listings?limit=&offset=
func (h *AdminHandler) ListingQueue(c *gin.Context) {
	queue, err := h.Svc.ModerationQueue(c.Request.Context(), middleware.Actor(c),
		queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	out := make([]gin.H, 0, len(queue))
	for _, m := range queue {
		out = append(out, gin.H{
			"id":          m.ID,
			"title":       m.Title,
			"price":       m.Price,
			"category":    m.Category,
			"status":      m.Status,
			"owner_name":  m.OwnerName,
			"owner_email": m.OwnerEmail,
			"created_at":  m.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "moderation queue", gin.H{"count": len(out)})
}

// ModerateListing POST /api/admin/listings/moderate?id=<uuid>&action=approve|delete
func (h *AdminHandler) ModerateListing(c *gin.Context) {
	id := c.Query("id")
	action := c.Query("action")
	if id == "" || action == "" {
		response.Error[any](c, http.StatusBadRequest, "id and action are required", nil)
		return
	}
	err := h.Svc.SetListingStatus(c.Request.Context(), middleware.Actor(c), id, entity.ModerationAction(action))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": id, "action": action}, "listing moderated", nil)
}

// ListUsers GET /api/admin/users?sort=created_at&order=desc
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers(c.Request.Context(), middleware.Actor(c),
		c.DefaultQuery("sort", "created_at"), c.DefaultQuery("order", "desc"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, users, "users", gin.H{"count": len(users)})
}

// ModerateUser POST /api/admin/users/moderate?id=<uuid>&action=ban|unban
func (h *AdminHandler) ModerateUser(c *gin.Context) {
	id := c.Query("id")
	action := c.Query("action")
	if id == "" || action == "" {
		response.Error[any](c, http.StatusBadRequest, "id and action are required", nil)
		return
	}

	ctx := c.Request.Context()
	actor := middleware.Actor(c)
	var err error
	switch action {
	case "ban":
		err = h.Svc.BanUser(ctx, actor, id)
	case "unban":
		err = h.Svc.UnbanUser(ctx, actor, id)
	default:
		response.Error[any](c, http.StatusBadRequest, "unknown action", nil)
		return
	}
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"id": id, "action": action}, "user moderated", nil)
}

// SetTrustPenalty POST /api/admin/users/trust-penalty {user_id, penalty}
func (h *AdminHandler) SetTrustPenalty(c *gin.Context) {
	var req struct {
		UserID  string `json:"user_id" binding:"required,uuid"`
		Penalty int    `json:"penalty" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", nil)
		return
	}
	if err := h.Svc.SetTrustPenalty(c.Request.Context(), middleware.Actor(c), req.UserID, req.Penalty); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"user_id": req.UserID, "penalty": req.Penalty}, "trust penalty set", nil)
}

// Reports GET /api/admin/reports?limit=&offset=
func (h *AdminHandler) Reports(c *gin.Context) {
	reports, err := h.Svc.ReportQueue(c.Request.Context(), middleware.Actor(c),
		queryInt(c, "limit", 50), queryInt(c, "offset", 0))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	out := make([]gin.H, 0, len(reports))
	for _, r := range reports {
		out = append(out, gin.H{
			"id":             r.ID,
			"listing_id":     r.ListingID,
			"listing_title":  r.ListingTitle,
			"listing_status": r.ListingStatus,
			"reporter_id":    r.ReporterID,
			"reason":         r.Reason,
			"created_at":     r.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, out, "report queue", gin.H{"count": len(out)})
}

// Stats GET /api/admin/stats
func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.Svc.Stats(c.Request.Context(), middleware.Actor(c))
	if err != nil {
		code, msg := statusFor(err)
		response.Error[any](c, code, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, st, "stats", nil)
}
