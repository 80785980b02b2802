package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/fx"

	cfgpkg "github.com/remindyoursubs/subtrack/pkg/config"
)

// Client talks to the Resend email API (POST /emails with a bearer key).
// The API key is per-user configuration, so it travels with each call
// rather than living on the client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	from       string
}

func NewClient(cfg *cfgpkg.Config) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    cfg.Email.BaseURL,
		from:       cfg.Email.From,
	}
}

type sendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type apiError struct {
	Message string `json:"message"`
	Name    string `json:"name"`
}

// Send delivers one HTML email. Non-2xx responses are returned as errors
// with the API's message when it provides one; the caller decides what a
// failure means (the dispatcher logs and retries on a later run).
func (c *Client) Send(ctx context.Context, apiKey, to, subject, htmlBody string) error {
	payload, err := json.Marshal(sendEmailRequest{
		From:    c.from,
		To:      []string{to},
		Subject: subject,
		HTML:    htmlBody,
	})
	if err != nil {
		return fmt.Errorf("failed to encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/emails", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call email API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Message != "" {
		return fmt.Errorf("email API rejected send (status %d): %s", resp.StatusCode, apiErr.Message)
	}
	return fmt.Errorf("email API rejected send (status %d)", resp.StatusCode)
}

var Module = fx.Options(
	fx.Provide(NewClient),
)
