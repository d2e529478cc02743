package httpserver

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"taskhub/internal/auth"
	"taskhub/internal/session"
	"taskhub/pkg/metrics"
)

// AuthMiddleware validates the session token and checks that its session
// record is still live in redis. On success the user id and jti are placed
// on the request context for handlers.
func AuthMiddleware(jwtSecret string, sessions *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractToken(c.Request)
		if tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "authentication required",
			})
			return
		}

		userID, jti, err := auth.ParseToken(tokenStr, jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid or expired session",
			})
			return
		}

		// A revoked session has no redis record even if the JWT is valid.
		if _, err := sessions.Lookup(c.Request.Context(), jti); err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "session expired",
			})
			return
		}

		c.Set("user_id", userID)
		c.Set("session_jti", jti)
		c.Next()
	}
}

// MetricsMiddleware records per-route request latency.
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.RecordHTTPRequestDuration(
			c.Request.Method,
			path,
			strconv.Itoa(c.Writer.Status()),
			time.Since(start),
		)
	}
}
