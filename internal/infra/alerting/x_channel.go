// Package alerting implements the external feeds reports are republished to.
package alerting

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"alertacordon/config"
	"alertacordon/internal/domain/constants"
	"alertacordon/internal/domain/service"

	"github.com/dghubble/oauth1"
)

// DefaultXEndpoint is the X API v2 create-post endpoint.
const DefaultXEndpoint = "https://api.twitter.com/2/tweets"

// XChannel posts alerts to X with OAuth 1.0a user credentials.
type XChannel struct {
	httpClient *http.Client
	endpoint   string
}

// NewXChannel builds a signing HTTP client from the four account credentials.
func NewXChannel(cfg *config.XConfig, timeout time.Duration) *XChannel {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultXEndpoint
	}

	oauthConfig := oauth1.NewConfig(cfg.AppKey, cfg.AppSecret)
	token := oauth1.NewToken(cfg.AccessToken, cfg.AccessSecret)
	base := context.WithValue(context.Background(), oauth1.HTTPClient, &http.Client{Timeout: timeout})

	return &XChannel{
		httpClient: oauthConfig.Client(base, token),
		endpoint:   endpoint,
	}
}

func (c *XChannel) Name() string { return constants.ChannelX }

type createPostRequest struct {
	Text string `json:"text"`
}

type createPostResponse struct {
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Publish creates a post with the alert status text.
func (c *XChannel) Publish(ctx context.Context, alert *service.Alert) error {
	body, err := json.Marshal(createPostRequest{Text: alert.Status})
	if err != nil {
		return fmt.Errorf("encode post: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("x post request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return fmt.Errorf("x API error: status %d: %s", resp.StatusCode, detail)
	}

	var created createPostResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if created.Data.ID == "" {
		return fmt.Errorf("x API returned no post id")
	}

	return nil
}
