// Package google talks to the Google Business Profile API for connected
// locations: account and location discovery, review listing, and reply
// posting.
package google

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://mybusiness.googleapis.com/v4"

// ErrUnauthorized signals a 401 from the Business Profile API; callers may
// refresh the access token once and retry.
var ErrUnauthorized = errors.New("business profile request unauthorized")

// Account is one Business Profile account the user can manage.
type Account struct {
	Name        string `json:"name"` // "accounts/123"
	AccountName string `json:"accountName"`
	Type        string `json:"type"`
}

// Location is one business listing under an account.
type Location struct {
	Name         string `json:"name"` // "accounts/123/locations/456"
	LocationName string `json:"locationName"`
	Address      string `json:"address,omitempty"`
}

// Reviewer carries the review author's display fields.
type Reviewer struct {
	DisplayName string `json:"displayName"`
}

// ReviewReply is the owner's reply attached to a review, if any.
type ReviewReply struct {
	Comment    string    `json:"comment"`
	UpdateTime time.Time `json:"updateTime"`
}

// Review is the provider-shaped review record.
type Review struct {
	ReviewID    string       `json:"reviewId"`
	Reviewer    Reviewer     `json:"reviewer"`
	StarRating  string       `json:"starRating"`
	Comment     string       `json:"comment"`
	CreateTime  time.Time    `json:"createTime"`
	ReviewReply *ReviewReply `json:"reviewReply,omitempty"`
}

type listAccountsResponse struct {
	Accounts []Account `json:"accounts"`
}

type listLocationsResponse struct {
	Locations []Location `json:"locations"`
}

type listReviewsResponse struct {
	Reviews []Review `json:"reviews"`
}

// Client issues authenticated requests against the Business Profile API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    defaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListAccounts lists Business Profile accounts visible to the token.
func (c *Client) ListAccounts(ctx context.Context, accessToken string) ([]Account, error) {
	var out listAccountsResponse
	if err := c.doJSON(ctx, http.MethodGet, c.baseURL+"/accounts", accessToken, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return out.Accounts, nil
}

// ListLocations lists locations under an account resource name.
func (c *Client) ListLocations(ctx context.Context, accessToken, accountName string) ([]Location, error) {
	var out listLocationsResponse
	url := fmt.Sprintf("%s/%s/locations", c.baseURL, accountName)
	if err := c.doJSON(ctx, http.MethodGet, url, accessToken, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list locations: %w", err)
	}
	return out.Locations, nil
}

// ListReviews fetches the reviews of one location.
func (c *Client) ListReviews(ctx context.Context, accessToken, locationName string) ([]Review, error) {
	var out listReviewsResponse
	url := fmt.Sprintf("%s/%s/reviews", c.baseURL, locationName)
	if err := c.doJSON(ctx, http.MethodGet, url, accessToken, nil, &out); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return out.Reviews, nil
}

// UpdateReply creates or replaces the owner reply on a review.
func (c *Client) UpdateReply(ctx context.Context, accessToken, locationName, reviewID, comment string) error {
	url := fmt.Sprintf("%s/%s/reviews/%s/reply", c.baseURL, locationName, reviewID)
	body := map[string]string{"comment": comment}
	if err := c.doJSON(ctx, http.MethodPut, url, accessToken, body, nil); err != nil {
		return fmt.Errorf("failed to update reply: %w", err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, url, accessToken string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
