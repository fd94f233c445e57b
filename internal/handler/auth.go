package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/session"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/zoho"
)

// AuthHandler drives the OAuth flow: redirect out, exchange the code on the
// way back, and tear the session down on logout.
type AuthHandler struct {
	OAuth    *zoho.OAuth
	Sessions *session.Manager
	Log      logging.Logger
}

func NewAuthHandler(oauth *zoho.OAuth, sessions *session.Manager, log logging.Logger) *AuthHandler {
	return &AuthHandler{OAuth: oauth, Sessions: sessions, Log: log}
}

// Start redirects the browser to Zoho's authorization page.
func (h *AuthHandler) Start(c *gin.Context) {
	state := uuid.NewString()
	c.Redirect(http.StatusFound, h.OAuth.AuthCodeURL(state))
}

// Callback completes the flow: exchange the code, fetch the identity,
// write the session cookie, land on the dashboard. Any failure redirects
// back to the login page with an error tag.
func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errParam := c.Query("error"); errParam != "" {
		c.Redirect(http.StatusFound, "/login?error=access_denied")
		return
	}

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/login?error=no_code")
		return
	}

	// Zoho appends the issuing data center as ?location= on the callback.
	tokens, dc, err := h.OAuth.Exchange(ctx, code, c.Query("location"))
	if err != nil {
		h.Log.Error(ctx, "oauth callback: exchange failed", "err", err)
		c.Redirect(http.StatusFound, "/login?error=callback_failed")
		return
	}

	client := zoho.NewClient(tokens.AccessToken, dc, tokens.APIDomain, h.Log)
	user, err := client.UserDetails(ctx)
	if err != nil {
		h.Log.Error(ctx, "oauth callback: user details failed", "err", err)
		c.Redirect(http.StatusFound, "/login?error=callback_failed")
		return
	}

	if _, err := h.Sessions.Create(c, *user, *tokens, dc, tokens.APIDomain); err != nil {
		h.Log.Error(ctx, "oauth callback: create session failed", "err", err)
		c.Redirect(http.StatusFound, "/login?error=callback_failed")
		return
	}

	h.Log.Info(ctx, "login ok", "email", user.Email, "dc", dc.Code)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout deletes the cookie. The tokens themselves simply age out upstream.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.Sessions.Clear(c)
	util.Success(c, util.Response{"message": "logged out"})
}
