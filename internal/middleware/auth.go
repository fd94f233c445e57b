package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/session"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
)

const sessionKey = "currentSession"

// SessionRequired reconstructs the session from the cookie and puts it into
// the request context. No valid session means 401; there is nothing to
// refresh or recover.
func SessionRequired(mgr *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := mgr.Get(c)
		if s == nil {
			util.Error(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		c.Set(sessionKey, s)
		c.Next()
	}
}

// CurrentSession returns the session placed by SessionRequired, or nil when
// the route is unprotected.
func CurrentSession(c *gin.Context) *session.Session {
	v, ok := c.Get(sessionKey)
	if !ok {
		return nil
	}
	s, ok := v.(*session.Session)
	if !ok {
		return nil
	}
	return s
}
