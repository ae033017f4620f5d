package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	BrowserCookieName = "sf_browser"
	BrowserIDKey      = "browserID"
)

// BrowserSession makes sure every browser carries an opaque sf_browser id.
// It addresses the Redis cart and the detail-token registry; it is not authentication.
func BrowserSession(ttl time.Duration, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(BrowserCookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = newBrowserID()
			http.SetCookie(c.Writer, &http.Cookie{
				Name:     BrowserCookieName,
				Value:    id,
				Path:     "/",
				MaxAge:   int(ttl.Seconds()),
				HttpOnly: true,
				Secure:   secure,
				SameSite: http.SameSiteLaxMode,
			})
		}
		c.Set(BrowserIDKey, id)
		c.Next()
	}
}

// BrowserID returns the id set by BrowserSession, or "" outside it.
func BrowserID(c *gin.Context) string {
	return c.GetString(BrowserIDKey)
}

func newBrowserID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
