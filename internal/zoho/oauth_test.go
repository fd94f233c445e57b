package zoho

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
)

func testOAuth(accountsURL string) *OAuth {
	return &OAuth{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURI:  "http://localhost/callback",
		Scope:        "profile",
		DefaultDC:    DataCenter{Code: "test", Name: "Test", Accounts: accountsURL},
		HTTPClient:   http.DefaultClient,
		Log:          logging.New("error"),
	}
}

func TestExchange_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth/v2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "client-id", r.PostForm.Get("client_id"))
		assert.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"access_token": "at-123",
			"refresh_token": "rt-456",
			"expires_in": 3600,
			"token_type": "Bearer",
			"api_domain": "https://api.example.test"
		}`))
	}))
	defer srv.Close()

	o := testOAuth(srv.URL)
	tokens, dc, err := o.Exchange(context.Background(), "the-code", "")
	require.NoError(t, err)

	assert.Equal(t, "test", dc.Code)
	assert.Equal(t, "at-123", tokens.AccessToken)
	assert.Equal(t, "rt-456", tokens.RefreshToken)
	assert.Equal(t, int64(3600), tokens.ExpiresIn)
	assert.Equal(t, "Bearer", tokens.TokenType)
	assert.Equal(t, "https://api.example.test", tokens.APIDomain)
}

func TestExchange_UpstreamRejects(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_code"}`))
	}))
	defer srv.Close()

	o := testOAuth(srv.URL)
	_, _, err := o.Exchange(context.Background(), "bad-code", "")
	require.Error(t, err)

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Equal(t, http.StatusBadRequest, authErr.Status)
	assert.Contains(t, authErr.Body, "invalid_code")
}

func TestExchange_ErrorInsideOKBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer srv.Close()

	o := testOAuth(srv.URL)
	_, _, err := o.Exchange(context.Background(), "code", "")

	var authErr *AuthError
	require.True(t, errors.As(err, &authErr))
	assert.Contains(t, authErr.Body, "invalid_client")
}

func TestExchange_LocationHintFallsBackToDefault(t *testing.T) {
	t.Parallel()

	// The hint "nowhere" resolves to nothing, so the default (test) DC is
	// used. Its accounts URL is unreachable on purpose: the point is only
	// which DC is reported back.
	o := testOAuth("http://127.0.0.1:0")
	_, dc, err := o.Exchange(context.Background(), "code", "nowhere")
	require.Error(t, err)
	assert.Equal(t, "test", dc.Code)
}

func TestAuthCodeURL(t *testing.T) {
	t.Parallel()

	o := testOAuth("https://accounts.example.test")
	u := o.AuthCodeURL("state-1")

	assert.Contains(t, u, "https://accounts.example.test/oauth/v2/auth?")
	assert.Contains(t, u, "client_id=client-id")
	assert.Contains(t, u, "response_type=code")
	assert.Contains(t, u, "state=state-1")
}
