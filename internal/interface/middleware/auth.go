package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/adityawp/campusmarket/internal/domain/entity"
	"github.com/adityawp/campusmarket/pkg/helpers"
	"github.com/adityawp/campusmarket/pkg/response"
)

// Auth validates the access token and ensures an active session exists in
// Redis. It sets userID, userRole, userName and userEmail in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing access token", nil)
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, "invalid access token", nil)
			return
		}

		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
			response.AbortError(c, http.StatusUnauthorized, "session not found", nil)
			return
		}

		c.Set("userID", data["user_id"])
		c.Set("userRole", data["role"])
		c.Set("userName", data["name"])
		c.Set("userEmail", data["email"])
		c.Next()
	}
}

// Actor builds the caller identity from context values set by Auth.
func Actor(c *gin.Context) entity.Actor {
	return entity.Actor{
		ID:   c.GetString("userID"),
		Role: entity.Role(c.GetString("userRole")),
	}
}

// RequireAdmin rejects non-admin sessions at the boundary. The moderation
// engine checks the actor's role again on every operation.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if entity.Role(c.GetString("userRole")) != entity.RoleAdmin {
			response.AbortError(c, http.StatusForbidden, "admin role required", nil)
			return
		}
		c.Next()
	}
}
