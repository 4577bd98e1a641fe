package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	// httpClientTimeout is the timeout for HTTP requests to OAuth providers
	httpClientTimeout = 30 * time.Second

	// businessManageScope grants read/write access to Business Profile data.
	businessManageScope = "https://www.googleapis.com/auth/business.manage"
)

type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// GoogleOAuthClient performs the Business Profile connect flow: offline
// authorization, code exchange, and refresh-token exchange.
type GoogleOAuthClient struct {
	config *oauth2.Config
}

type GoogleAccountInfo struct {
	ID    string
	Email string
}

type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func NewGoogleOAuthClient(cfg GoogleOAuthConfig) *GoogleOAuthClient {
	return &GoogleOAuthClient{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes: []string{
				businessManageScope,
				"https://www.googleapis.com/auth/userinfo.email",
			},
			Endpoint: google.Endpoint,
		},
	}
}

// GetAuthURL builds the consent URL. Offline access plus forced approval so
// Google always returns a refresh token, even on re-connects.
func (c *GoogleOAuthClient) GetAuthURL(state string) string {
	return c.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.ApprovalForce,
	)
}

// ExchangeCode trades the authorization code for the full token, including
// the refresh token needed for unattended syncs.
func (c *GoogleOAuthClient) ExchangeCode(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := c.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	if token.RefreshToken == "" {
		return nil, fmt.Errorf("authorization response carried no refresh token")
	}
	return token, nil
}

// RefreshToken exchanges a refresh token for a new access token at the
// provider's token endpoint. Any non-success response surfaces as an error;
// the refresh itself is never retried.
func (c *GoogleOAuthClient) RefreshToken(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	source := c.config.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := source.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("token endpoint returned no access token")
	}
	return token, nil
}

// GetAccountInfo fetches the authorizing Google account's id and email.
func (c *GoogleOAuthClient) GetAccountInfo(ctx context.Context, accessToken string) (*GoogleAccountInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "https://www.googleapis.com/oauth2/v2/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	client := &http.Client{Timeout: httpClientTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get user info: status %d, body: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	var gInfo googleUserInfo
	if err := json.Unmarshal(body, &gInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user info: %w", err)
	}

	return &GoogleAccountInfo{ID: gInfo.ID, Email: gInfo.Email}, nil
}
