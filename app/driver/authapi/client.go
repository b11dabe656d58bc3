// Package authapi is a thin HTTP driver for the external authentication
// service. It speaks the service's JSON wire contract and reports raw
// status/body pairs; translating those into domain results is the gateway's
// job.
package authapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"slidealbum-service/app/config"
)

// Auth API endpoint paths.
const (
	loginPath    = "/login"
	logoutPath   = "/logout"
	validatePath = "/validateToken"
)

// Response is the raw outcome of an auth API call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Client calls the external authentication service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new auth API client
func NewClient(cfg *config.Config, logger *slog.Logger) (*Client, error) {
	if !isValidURL(cfg.AuthAPIBaseURL) {
		return nil, fmt.Errorf("invalid auth API base URL: %s", cfg.AuthAPIBaseURL)
	}

	timeout := cfg.AuthTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	logger.Info("auth API client initialized",
		"base_url", cfg.AuthAPIBaseURL,
		"timeout", timeout)

	return &Client{
		baseURL: strings.TrimRight(cfg.AuthAPIBaseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}, nil
}

// Login posts credentials to the login endpoint.
func (c *Client) Login(ctx context.Context, username, password string) (*Response, error) {
	return c.post(ctx, loginPath, map[string]string{
		"username": username,
		"password": password,
	})
}

// Logout posts a token revocation request.
func (c *Client) Logout(ctx context.Context, token string) (*Response, error) {
	return c.post(ctx, logoutPath, map[string]string{
		"sessionToken": token,
	})
}

// ValidateToken asks the service whether the token is still valid.
func (c *Client) ValidateToken(ctx context.Context, token string) (*Response, error) {
	return c.post(ctx, validatePath, map[string]string{
		"sessionToken": token,
	})
}

func (c *Client) post(ctx context.Context, path string, body interface{}) (*Response, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call auth service %s: %w", path, err)
	}
	defer resp.Body.Close()

	// Auth API responses are small; a 1MB cap keeps a misbehaving service
	// from ballooning memory.
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read auth service response: %w", err)
	}

	c.logger.Debug("auth service call completed",
		"path", path,
		"status", resp.StatusCode)

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// HealthCheck probes the service with an empty token validation. Any HTTP
// response counts as reachable; only transport failures are reported.
func (c *Client) HealthCheck(ctx context.Context) error {
	if _, err := c.ValidateToken(ctx, ""); err != nil {
		return fmt.Errorf("auth service unreachable: %w", err)
	}
	return nil
}

// isValidURL validates if a URL is properly formatted
func isValidURL(urlStr string) bool {
	if urlStr == "" {
		return false
	}

	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return false
	}

	return parsedURL.Scheme != "" && parsedURL.Host != ""
}
