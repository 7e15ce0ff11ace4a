package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/arvotech/corporate-app/utils"
	"github.com/gin-gonic/gin"
)

// AuthMiddleware validates the Bearer token and rejects blacklisted tokens
// and tokens issued before a forced logout of their user.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("Authorization")
		if token == "" {
			token = c.Query("token")
		}

		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token not found"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(token, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid token format"))
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(token, "Bearer ")
		claims, err := utils.ParseToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, err)
			c.Abort()
			return
		}

		if utils.IsTokenBlacklisted(tokenString) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token has been revoked"))
			c.Abort()
			return
		}

		if claims.IssuedAt != nil && utils.IsForcedOut(claims.UserID, claims.IssuedAt.Time) {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("session terminated by administrator"))
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("token", tokenString)
		if claims.ExpiresAt != nil {
			c.Set("expires_at", claims.ExpiresAt.Unix())
		}
		c.Next()
	}
}
