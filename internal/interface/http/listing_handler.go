package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	app "github.com/adityawp/campusmarket/internal/application"
	"github.com/adityawp/campusmarket/pkg/response"
	"github.com/adityawp/campusmarket/pkg/validation"
)

type ListingHandler struct {
	Svc    *app.ListingService
	Logger *logrus.Logger
}

func NewListingHandler(svc *app.ListingService, logger *logrus.Logger) *ListingHandler {
	return &ListingHandler{Svc: svc, Logger: logger}
}

type createListingRequest struct {
	Title       string  `json:"title" binding:"required,min=3,max=140"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required"`
}

// Create POST /api/listings. New listings start out pending and stay off the
// public feed until a moderator approves them.
func (h *ListingHandler) Create(c *gin.Context) {
	var req createListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	l, err := h.Svc.Create(c.Request.Context(), c.GetString("userID"), app.CreateListingInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
	})
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusCreated, l, "listing submitted for review", nil)
}

// Get GET /api/listings/:id
func (h *ListingHandler) Get(c *gin.Context) {
	l, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, l, "listing", nil)
}

// List GET /api/listings?limit=&offset=
func (h *ListingHandler) List(c *gin.Context) {
	limit := queryInt(c, "limit", 20)
	offset := queryInt(c, "offset", 0)
	items, err := h.Svc.ListActive(c.Request.Context(), limit, offset)
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, items, "active listings", map[string]any{"limit": limit, "offset": offset, "count": len(items)})
}

// Search GET /api/listings/search?q=&size=
func (h *ListingHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "missing query", nil)
		return
	}
	hits, err := h.Svc.Search(c.Request.Context(), q, queryInt(c, "size", 20))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", map[string]any{"count": len(hits)})
}

// MarkSold POST /api/listings/:id/sold
func (h *ListingHandler) MarkSold(c *gin.Context) {
	if err := h.Svc.MarkSold(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"sold": true}, "listing marked sold", nil)
}

// Delete DELETE /api/listings/:id
func (h *ListingHandler) Delete(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.GetString("userID"), c.Param("id")); err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "listing deleted", nil)
}

// UploadPhoto POST /api/listings/:id/photo, multipart "file" field.
func (h *ListingHandler) UploadPhoto(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "missing file", nil)
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "unreadable file", nil)
		return
	}
	defer f.Close()

	url, err := h.Svc.UploadPhoto(c.Request.Context(), c.GetString("userID"), c.Param("id"), f, fh.Filename, fh.Header.Get("Content-Type"))
	if err != nil {
		st, msg := statusFor(err)
		response.Error[any](c, st, msg, nil)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"image_url": url}, "photo uploaded", nil)
}
