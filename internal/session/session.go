// Package session stores the authenticated session in a signed, host-only,
// expiring cookie. The browser owns the session: there is no server-side
// copy and no recovery once the cookie is gone.
package session

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/util"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/zoho"
)

// CookieName is the session cookie. httpOnly, path "/", max-age equal to the
// credential's expiry.
const CookieName = "zoho-session"

// Session is everything a request needs to call upstream on the user's
// behalf. Tokens and DataCenter always come from the same login: a token is
// only valid against the data center that issued it.
type Session struct {
	User       zoho.User       `json:"user"`
	Tokens     zoho.TokenSet   `json:"tokens"`
	ExpiresAt  int64           `json:"expiresAt"` // unix seconds, absolute
	DataCenter zoho.DataCenter `json:"dataCenter"`
	APIDomain  string          `json:"apiDomain,omitempty"`
}

// Expired reports whether the absolute expiry has passed. Expiry is
// terminal; no refresh is attempted.
func (s *Session) Expired() bool {
	return time.Now().Unix() > s.ExpiresAt
}

type claims struct {
	Session Session `json:"session"`
	jwt.RegisteredClaims
}

// Manager signs sessions into the cookie and reconstructs them per request.
// The access and refresh tokens inside the claims are sealed with
// AES-256-GCM so the cookie never carries them in clear text.
type Manager struct {
	Secret     string
	EncryptKey string
	Secure     bool // set the Secure cookie flag (release mode)
}

func NewManager(secret, encryptKey string, secure bool) *Manager {
	return &Manager{Secret: secret, EncryptKey: encryptKey, Secure: secure}
}

// Create computes the absolute expiry from the credential's lifetime, signs
// the session and sets the cookie.
func (m *Manager) Create(c *gin.Context, user zoho.User, tokens zoho.TokenSet, dc zoho.DataCenter, apiDomain string) (*Session, error) {
	now := time.Now()
	s := Session{
		User:       user,
		Tokens:     tokens,
		ExpiresAt:  now.Add(time.Duration(tokens.ExpiresIn) * time.Second).Unix(),
		DataCenter: dc,
		APIDomain:  apiDomain,
	}

	sealed := s
	var err error
	if sealed.Tokens.AccessToken, err = m.seal(s.Tokens.AccessToken); err != nil {
		return nil, fmt.Errorf("seal access token: %w", err)
	}
	if sealed.Tokens.RefreshToken, err = m.seal(s.Tokens.RefreshToken); err != nil {
		return nil, fmt.Errorf("seal refresh token: %w", err)
	}

	cl := claims{
		Session: sealed,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Unix(s.ExpiresAt, 0)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &cl).SignedString([]byte(m.Secret))
	if err != nil {
		return nil, fmt.Errorf("sign session: %w", err)
	}

	m.setCookie(c, token, int(tokens.ExpiresIn))
	return &s, nil
}

// Get reconstructs the session from the cookie. A missing, malformed,
// tampered or expired cookie reads as nil; the bad cookie is deleted.
func (m *Manager) Get(c *gin.Context) *Session {
	raw, err := c.Cookie(CookieName)
	if err != nil || raw == "" {
		return nil
	}

	parsed, err := jwt.ParseWithClaims(raw, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(m.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		m.Clear(c)
		return nil
	}

	cl, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		m.Clear(c)
		return nil
	}

	s := cl.Session
	if s.Expired() {
		m.Clear(c)
		return nil
	}

	if s.Tokens.AccessToken, err = m.open(s.Tokens.AccessToken); err != nil {
		m.Clear(c)
		return nil
	}
	if s.Tokens.RefreshToken, err = m.open(s.Tokens.RefreshToken); err != nil {
		m.Clear(c)
		return nil
	}

	return &s
}

// Clear deletes the cookie unconditionally.
func (m *Manager) Clear(c *gin.Context) {
	m.setCookie(c, "", -1)
}

func (m *Manager) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *Manager) seal(plain string) (string, error) {
	if plain == "" {
		return "", nil
	}
	b, err := util.EncryptAES(m.EncryptKey, []byte(plain))
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func (m *Manager) open(sealed string) (string, error) {
	if sealed == "" {
		return "", nil
	}
	b, err := base64.RawURLEncoding.DecodeString(sealed)
	if err != nil {
		return "", err
	}
	plain, err := util.DecryptAES(m.EncryptKey, b)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}
