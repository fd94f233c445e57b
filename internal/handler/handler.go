// Package handler contains one thin handler per dashboard capability:
// load session, build a gateway from its credentials, make one call, map
// the result or error to JSON.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/middleware"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/session"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/zoho"
)

// clientFromSession builds a request-scoped gateway from the session the
// auth middleware loaded. Writes 401 and returns nils when it is absent.
func clientFromSession(c *gin.Context, log logging.Logger) (*zoho.Client, *session.Session) {
	s := middleware.CurrentSession(c)
	if s == nil || s.Tokens.AccessToken == "" {
		util.Error(c, http.StatusUnauthorized, "unauthorized")
		return nil, nil
	}
	return zoho.NewClient(s.Tokens.AccessToken, s.DataCenter, s.APIDomain, log), s
}
