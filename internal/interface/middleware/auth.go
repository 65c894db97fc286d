package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/danukusuma/campgrounds-api/pkg/helpers"
	"github.com/danukusuma/campgrounds-api/pkg/response"
)

const CtxUserIDKey = "userID"

// Auth validates the access token cookie and ensures an active session
// exists in Redis. It sets userID and userName in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Error[any](c, http.StatusUnauthorized, "authentication required", nil)
			c.Abort()
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Error[any](c, http.StatusUnauthorized, "invalid access token", nil)
			c.Abort()
			return
		}

		if rdb != nil {
			key := "user:session:" + claims.UserID
			data, err := rdb.HGetAll(c.Request.Context(), key).Result()
			if err != nil || len(data) == 0 || data["sid"] != claims.SessionID {
				response.Error[any](c, http.StatusUnauthorized, "session not found", nil)
				c.Abort()
				return
			}
			c.Set("userName", data["username"])
		}

		c.Set(CtxUserIDKey, claims.UserID)
		c.Next()
	}
}
