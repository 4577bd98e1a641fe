// Package messaging wraps the SMS/WhatsApp gateway used to deliver campaign
// review invitations.
package messaging

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"
)

// GatewayClient talks to a generic messaging provider over a form-encoded
// HTTP API. The same endpoint carries both SMS and WhatsApp; the channel
// field selects the transport on the provider side.
type GatewayClient struct {
	httpClient *http.Client
	apiURL     string
	apiKey     string
	sender     string
}

func NewGatewayClient(apiURL, apiKey, sender string, timeout time.Duration) *GatewayClient {
	return &GatewayClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		apiURL: apiURL,
		apiKey: apiKey,
		sender: sender,
	}
}

// SendSMS delivers a plain-text message to a phone number.
func (c *GatewayClient) SendSMS(ctx context.Context, phone, message string) error {
	return c.send(ctx, ChannelSMS, phone, message)
}

// SendWhatsApp delivers a message over WhatsApp.
func (c *GatewayClient) SendWhatsApp(ctx context.Context, phone, message string) error {
	return c.send(ctx, ChannelWhatsApp, phone, message)
}

func (c *GatewayClient) send(ctx context.Context, channel, phone, message string) error {
	data := url.Values{}
	data.Set("api_key", c.apiKey)
	data.Set("channel", channel)
	data.Set("to", phone)
	data.Set("from", c.sender)
	data.Set("message", message)

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.apiURL,
		strings.NewReader(data.Encode()),
	)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach messaging gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("messaging gateway returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
