package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio/internal/auth"
)

// AdminGateMiddleware guards mutating admin routes with the session cookie.
// It only tests for cookie presence: the token is unsigned, so there is
// nothing to verify server-side. This mirrors the /api/auth/check contract.
func AdminGateMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.CookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "unauthorized",
			})
			return
		}
		c.Next()
	}
}
