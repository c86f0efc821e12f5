// Package httpclient provides the HTTP client used for release downloads and GitHub API calls.
package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"golang.org/x/net/http/httpproxy"

	"setupvim/internal/core/ports"
	"setupvim/internal/platform/errors"
	"setupvim/internal/platform/logx"
)

// Client wraps net/http with logging, proxy resolution and strict status handling.
// It never retries; a failed request is returned to the caller as is.
type Client struct {
	httpClient *http.Client
	noRedirect *http.Client
	logger     logx.Logger
	config     Config
}

// Config holds the configuration for the HTTP client.
type Config struct {
	// Timeout is the whole-request timeout duration.
	// Default: 0 (no timeout, the CI job timeout applies)
	Timeout time.Duration

	// UserAgent is the User-Agent header value.
	// Default: "setup-vim/1.0"
	UserAgent string

	// ProxyURL forces a proxy for every scheme. When empty the proxy comes
	// from HTTP_PROXY, HTTPS_PROXY and NO_PROXY.
	ProxyURL string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:   0,
		UserAgent: "setup-vim/1.0",
	}
}

var _ ports.Fetcher = (*Client)(nil)

// New creates a new HTTP client with the given configuration.
func New(config Config, logger logx.Logger) *Client {
	if config.UserAgent == "" {
		config.UserAgent = "setup-vim/1.0"
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = proxyFunc(config.ProxyURL)

	return &Client{
		httpClient: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
		},
		noRedirect: &http.Client{
			Timeout:   config.Timeout,
			Transport: transport,
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		logger: logger.With("component", "http"),
		config: config,
	}
}

// proxyFunc resolves the proxy for each request URL.
func proxyFunc(forced string) func(*http.Request) (*url.URL, error) {
	cfg := httpproxy.FromEnvironment()
	if forced != "" {
		cfg.HTTPProxy = forced
		cfg.HTTPSProxy = forced
	}
	resolve := cfg.ProxyFunc()
	return func(req *http.Request) (*url.URL, error) {
		return resolve(req.URL)
	}
}

// Request performs an HTTP request. redirects=false returns 3xx responses as is.
func (c *Client) Request(ctx context.Context, method, rawURL string, headers map[string]string, redirects bool) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create request for %s %s", method, rawURL)
	}

	req.Header.Set("User-Agent", c.config.UserAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	c.logger.Debug("HTTP request", "method", method, "url", rawURL)

	client := c.httpClient
	if !redirects {
		client = c.noRedirect
	}

	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Warn("HTTP request failed",
			"method", method,
			"url", rawURL,
			"error", err.Error(),
			"duration_ms", duration.Milliseconds(),
		)
		return nil, errors.Wrapf(err, "%s %s failed", method, rawURL)
	}

	c.logger.Debug("HTTP response received",
		"method", method,
		"url", rawURL,
		"status", resp.StatusCode,
		"duration_ms", duration.Milliseconds(),
	)
	return resp, nil
}

// Get performs a GET request following redirects.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string) (*http.Response, error) {
	return c.Request(ctx, http.MethodGet, rawURL, headers, true)
}

// Head performs a HEAD request without following redirects.
func (c *Client) Head(ctx context.Context, rawURL string) (ports.HeadResult, error) {
	resp, err := c.Request(ctx, http.MethodHead, rawURL, nil, false)
	if err != nil {
		return ports.HeadResult{}, err
	}
	defer resp.Body.Close()

	return ports.HeadResult{
		StatusCode: resp.StatusCode,
		Location:   resp.Header.Get("Location"),
	}, nil
}

// Download streams the body of rawURL into destPath.
// A non-2xx response is an *errors.HTTPStatusError and nothing is written.
func (c *Client) Download(ctx context.Context, rawURL, destPath string) error {
	resp, err := c.Get(ctx, rawURL, nil)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := CheckStatus(resp, rawURL); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(destPath), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for %s", destPath)
	}

	f, err := os.Create(destPath)
	if err != nil {
		return errors.Wrapf(err, "failed to create %s", destPath)
	}

	n, err := io.Copy(f, resp.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		// Sin ficheros truncados en destPath
		_ = os.Remove(destPath)
		return errors.Wrapf(err, "failed to download %s", rawURL)
	}

	c.logger.Info("downloaded", "url", rawURL, "path", destPath, "bytes", n)
	return nil
}

// GetJSON performs a GET request and decodes a 2xx JSON body into out.
func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	h := map[string]string{"Accept": "application/json"}
	for k, v := range headers {
		h[k] = v
	}

	resp, err := c.Get(ctx, rawURL, h)
	if err != nil {
		return err
	}

	if err := CheckStatus(resp, rawURL); err != nil {
		resp.Body.Close()
		return err
	}

	body, err := ReadBody(resp)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(errors.ErrInvalidResponse, "failed to decode JSON from %s: %v", rawURL, err)
	}
	return nil
}

// ReadBody reads the response body and closes it.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp == nil {
		return nil, errors.New("response is nil")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response body")
	}

	return body, nil
}

// CheckStatus returns an *errors.HTTPStatusError unless the status code is 2xx.
func CheckStatus(resp *http.Response, rawURL string) error {
	if resp == nil {
		return errors.New("response is nil")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	limited := resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests
	return &errors.HTTPStatusError{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		Status:      resp.Status,
		RateLimited: limited && resp.Header.Get("X-RateLimit-Remaining") == "0",
	}
}

// String returns a human-readable representation of the client configuration.
func (c *Client) String() string {
	return fmt.Sprintf("HTTPClient{timeout=%s, user_agent=%s}", c.config.Timeout, c.config.UserAgent)
}
