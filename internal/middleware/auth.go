package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/apptrackr/backend/internal/auth"
)

// Context keys set by Authenticate.
const (
	ContextUserID = "userID"
	ContextDemo   = "demoUser"
)

// Authenticate is the gate in front of every protected route: it pulls the
// JWT out of the auth cookie, verifies it, and attaches the caller identity
// to the request context. Anything short of a valid credential is a 401.
func Authenticate(m *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(auth.CookieName)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Authentication invalid"})
			return
		}

		claims, err := m.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Authentication invalid"})
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextDemo, claims.Demo)
		c.Next()
	}
}

// UserID returns the authenticated caller's id. Only meaningful behind
// Authenticate.
func UserID(c *gin.Context) uint {
	id, _ := c.Get(ContextUserID)
	uid, _ := id.(uint)
	return uid
}

// IsDemo reports whether the caller is the shared read-only demo account.
func IsDemo(c *gin.Context) bool {
	v, _ := c.Get(ContextDemo)
	demo, _ := v.(bool)
	return demo
}

// RequireWritable blocks mutating routes for the demo account.
func RequireWritable() gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsDemo(c) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"msg": "Demo user, read only"})
			return
		}
		c.Next()
	}
}
