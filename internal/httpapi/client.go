// Package httpapi provides the configured REST client for the NepalAI Lab
// site backend. All content, form, and chat modules go through this client.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is used when no override is configured.
const DefaultBaseURL = "https://newapi.nepalailab.com/api/"

// DefaultTimeout bounds one request round trip. There is no retry and no
// per-request override.
const DefaultTimeout = 30 * time.Second

// apiPathSuffix is the known API path stripped from the base URL when
// deriving the media origin.
const apiPathSuffix = "/api/"

// Config holds client construction parameters.
type Config struct {
	BaseURL string
	Timeout time.Duration
	Logger  *zap.Logger
}

// DefaultConfig returns the literal defaults.
func DefaultConfig() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Timeout: DefaultTimeout,
	}
}

// Client is a JSON-over-HTTP client with a fixed base URL. It performs no
// retries and carries no authentication.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// Response is the envelope returned by Get and Post on 2xx statuses.
type Response struct {
	Data   []byte
	Status int
}

// New creates a Client from config, filling empty fields with defaults.
// The base URL is normalized to end with a single trailing slash.
func New(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/") + "/"

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// BaseURL returns the normalized base URL, always ending in "/".
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Origin returns the base URL with the API path suffix stripped, without a
// trailing slash. Relative media paths are resolved against this origin.
func (c *Client) Origin() string {
	origin := strings.TrimSuffix(c.baseURL, apiPathSuffix)
	return strings.TrimRight(origin, "/")
}

// Get issues a GET for the given resource path relative to the base URL.
func (c *Client) Get(ctx context.Context, path string) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST with the JSON-encoded body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request body: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, encoded)
}

// Health checks the backend health endpoint and returns the reported status.
func (c *Client) Health(ctx context.Context) (string, error) {
	resp, err := c.Get(ctx, "health/")
	if err != nil {
		return "", err
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(resp.Data, &payload); err != nil {
		return "", fmt.Errorf("decode health response: %w", err)
	}
	return payload.Status, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte) (*Response, error) {
	url := c.baseURL + strings.TrimPrefix(path, "/")

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// The request never produced a response: transport failure.
		c.log.Warn("request failed before reaching the server",
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrNoResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := newAPIError(resp.StatusCode, data)
		c.log.Warn("server returned an error status",
			zap.String("method", method),
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", apiErr.Detail))
		return nil, apiErr
	}

	c.log.Debug("request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode))

	return &Response{Data: data, Status: resp.StatusCode}, nil
}
