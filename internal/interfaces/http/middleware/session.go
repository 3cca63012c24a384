// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	SessionIDKey        = "session_id"
	SessionCookie       = "session_id"
	sessionCookieMaxAge = 60 * 60 * 24 * 30
)

// Session makes sure every request carries a session id cookie. The id scopes
// the visitor's cart slot.
func Session(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookie)
		if err != nil || !validSessionID(sessionID) {
			sessionID = uuid.New().String()
		}

		// sliding expiry
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(SessionCookie, sessionID, sessionCookieMaxAge, "/", "", secure, true)
		c.Set(SessionIDKey, sessionID)
		c.Next()
	}
}

// GetSessionID returns the session id set by Session
func GetSessionID(c *gin.Context) string {
	return c.GetString(SessionIDKey)
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
