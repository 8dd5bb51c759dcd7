package middleware

import (
	"net/http"

	"contacts_admin/internal/apiclient"
	"contacts_admin/internal/session"

	"github.com/gin-gonic/gin"
)

const (
	AuthTokenKey = "authToken"
	RequestIDKey = "requestID"
)

// LoginPath is where unauthenticated visitors are sent. It is absolute so the
// redirect works from any route depth.
const LoginPath = "/auth/login"

// SessionGuard lets a request through only when the browser presents a
// session credential. Otherwise it issues a single redirect to LoginPath and
// renders nothing. A nil store treats every request as unauthenticated.
func SessionGuard(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := store.Load(c.Request)
		if !ok {
			c.Redirect(http.StatusSeeOther, LoginPath)
			c.Abort()
			return
		}

		admit(c, token)
		c.Next()
	}
}

// LoadSession admits a request that presents a session credential and lets
// every other request through untouched. Public pages use it to know who is
// signed in.
func LoadSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, ok := store.Load(c.Request); ok {
			admit(c, token)
		}
		c.Next()
	}
}

func admit(c *gin.Context, token string) {
	c.Set(AuthTokenKey, token)
	c.Request = c.Request.WithContext(apiclient.WithToken(c.Request.Context(), token))
}

// IsAuthenticated reports whether SessionGuard or LoadSession admitted this request.
func IsAuthenticated(c *gin.Context) bool {
	_, ok := c.Get(AuthTokenKey)
	return ok
}
