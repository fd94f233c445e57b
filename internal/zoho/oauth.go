package zoho

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/config"
	"github.com/Murugananatham/SoftMania-Client-Dashboard/internal/logging"
)

// OAuth performs the authorization-code flow against a region-selectable
// token endpoint. One POST, no retry: a failed exchange is fatal to the
// login attempt.
type OAuth struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scope        string
	DefaultDC    DataCenter

	HTTPClient *http.Client
	Log        logging.Logger
}

// NewOAuth builds the exchange from the explicit config struct; the default
// data center falls back to "us" when the configured code is unknown.
func NewOAuth(cfg config.ZohoConfig, log logging.Logger) *OAuth {
	dc, ok := DataCenterByCode(cfg.DefaultDC)
	if !ok {
		dc, _ = DataCenterByCode("us")
	}
	return &OAuth{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
		Scope:        cfg.Scope,
		DefaultDC:    dc,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
		Log:          log,
	}
}

// AuthCodeURL builds the user-facing authorization URL on the default data
// center's accounts service.
func (o *OAuth) AuthCodeURL(state string) string {
	q := url.Values{
		"response_type": {"code"},
		"client_id":     {o.ClientID},
		"redirect_uri":  {o.RedirectURI},
		"scope":         {o.Scope},
		"access_type":   {"offline"},
		"state":         {state},
	}
	return o.DefaultDC.Accounts + "/oauth/v2/auth?" + q.Encode()
}

// Exchange swaps an authorization code for tokens. The location hint (the
// "location" query parameter Zoho appends to the callback) selects the data
// center; unknown or empty hints use the configured default. The returned
// data center must be stored with the tokens: they are only valid together.
func (o *OAuth) Exchange(ctx context.Context, code, location string) (*TokenSet, DataCenter, error) {
	dc := o.DefaultDC
	if location != "" {
		if hinted, ok := DataCenterByCode(location); ok {
			dc = hinted
		}
	}

	tokens, err := o.ExchangeAt(ctx, code, dc)
	if err != nil {
		return nil, dc, err
	}
	return tokens, dc, nil
}

// ExchangeAt performs the exchange against one specific data center.
func (o *OAuth) ExchangeAt(ctx context.Context, code string, dc DataCenter) (*TokenSet, error) {
	form := url.Values{
		"grant_type":    {"authorization_code"},
		"client_id":     {o.ClientID},
		"client_secret": {o.ClientSecret},
		"redirect_uri":  {o.RedirectURI},
		"code":          {code},
	}

	tokenURL := dc.Accounts + "/oauth/v2/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := o.httpClient().Do(req)
	if err != nil {
		return nil, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read token response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		o.Log.Error(ctx, "token exchange failed",
			"status", resp.StatusCode, "dc", dc.Code, "body", string(body))
		return nil, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	var tokens TokenSet
	if err := json.Unmarshal(body, &tokens); err != nil {
		return nil, fmt.Errorf("decode token response: %w", err)
	}
	// Zoho reports OAuth errors inside a 200 body as {"error": "..."}
	if tokens.AccessToken == "" {
		return nil, &AuthError{Status: resp.StatusCode, Body: string(body)}
	}

	o.Log.Info(ctx, "token exchange ok", "dc", dc.Code, "api_domain", tokens.APIDomain)
	return &tokens, nil
}

func (o *OAuth) httpClient() *http.Client {
	if o.HTTPClient != nil {
		return o.HTTPClient
	}
	return http.DefaultClient
}
