package handlers

import (
	"errors"
	"net/http"

	app "github.com/adityawp/campusmarket/internal/application"
	repo "github.com/adityawp/campusmarket/internal/domain/repository"
)

// statusFor maps service errors to HTTP status codes. Anything unknown is a
// generic action failure; store error details never reach the client.
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, app.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, app.ErrNotFound), errors.Is(err, app.ErrUserNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, app.ErrInvalidAction),
		errors.Is(err, app.ErrListingNotOpen),
		errors.Is(err, app.ErrOwnListing):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, repo.ErrAlreadyJoined), errors.Is(err, repo.ErrGroupOrderClosed):
		return http.StatusConflict, err.Error()
	case errors.Is(err, app.ErrInvalidCode):
		return http.StatusBadRequest, "invalid or expired code"
	case errors.Is(err, app.ErrUserBanned):
		return http.StatusForbidden, "account suspended"
	case errors.Is(err, app.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	default:
		return http.StatusInternalServerError, "action failed"
	}
}
