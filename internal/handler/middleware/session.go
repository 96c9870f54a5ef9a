package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionIDKey = "session_id"
	sessionHeader   = "X-Session-ID"
)

// SessionMiddleware resolves the cart session for the request. An
// authenticated user's session is their user ID, so the cart follows
// the account across devices. Anonymous browsers carry an opaque
// X-Session-ID header; a request without one gets a fresh ID, echoed
// back in the response header so the client can keep it.
//
// Must run after the auth middleware on routes that accept tokens.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if userID, ok := GetUserID(c); ok {
			c.Set(ctxSessionIDKey, userID)
			c.Next()
			return
		}

		sessionID := c.GetHeader(sessionHeader)
		if sessionID == "" {
			sessionID = uuid.NewString()
		}
		c.Header(sessionHeader, sessionID)
		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (string, bool) {
	sessionID, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := sessionID.(string)
	return id, ok
}

// RequireSession aborts when no session could be resolved. Kept as a
// separate guard so handlers can assume GetSessionID succeeds.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetSessionID(c); !ok {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Session required",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
