package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const authorizationHeader = "Authorization"
const bearerPrefix = "Bearer "

// OptionalAuth classifies the request and continues unconditionally.
//
// It never writes a response: no token, a malformed token, or an
// invalid/expired token all classify as anonymous so that read-only
// personalization endpoints remain reachable without a session.
func OptionalAuth(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		id := m.Classify(c.GetHeader(authorizationHeader), time.Now())
		if id.Kind != KindAnonymous {
			ctx := WithIdentity(c.Request.Context(), id)
			c.Request = c.Request.WithContext(ctx)
		}

		c.Next()
	}
}

// RequireUser admits only fully authenticated, non-guest sessions.
//
// Guests get a 403 with requiresRegistration so clients can prompt account
// creation instead of showing a generic auth failure.
func RequireUser(m *Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		raw := strings.TrimSpace(c.GetHeader(authorizationHeader))
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required. Please create an account to continue.",
			})
			return
		}

		tok := strings.TrimSpace(strings.TrimPrefix(raw, bearerPrefix))
		if !strings.HasPrefix(raw, bearerPrefix) || tok == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token format"})
			return
		}

		claims, err := m.Verify(tok, time.Now())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if claims.IsGuest {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":                "This action requires a registered account",
				"requiresRegistration": true,
			})
			return
		}

		ctx := WithIdentity(c.Request.Context(), Identity{
			Kind:   KindAuthenticated,
			UserID: claims.UserID,
			Email:  claims.Email,
			Name:   claims.Name,
		})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
