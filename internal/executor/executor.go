package executor

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/studiowebux/restget/internal/logger"
)

// Options configures the shared HTTP client
type Options struct {
	// Timeout bounds a whole request; zero means no timeout
	Timeout time.Duration

	// UserAgent is sent with every request when non-empty
	UserAgent string

	// Transport replaces the default round tripper (tests, proxies)
	Transport http.RoundTripper
}

// Client is the reusable HTTP client handle. It is built once and never
// mutated afterwards, so a single *Client can be shared by any number of
// concurrent fetches.
type Client struct {
	rc *resty.Client
}

// New creates a Client from opts
func New(opts Options) *Client {
	rc := resty.New()
	rc.SetTimeout(opts.Timeout)
	rc.SetRetryCount(0)
	rc.SetLogger(logger.S)
	if opts.UserAgent != "" {
		rc.SetHeader("User-Agent", opts.UserAgent)
	}
	if opts.Transport != nil {
		rc.SetTransport(opts.Transport)
	}

	return &Client{rc: rc}
}

// Fetch issues a GET to url and returns the full response body as text.
// The body is returned byte-for-byte; status codes are not inspected.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	startTime := time.Now()

	resp, err := c.rc.R().SetContext(ctx).Get(url)
	duration := time.Since(startTime)
	if err != nil {
		logger.S.Debugw("fetch failed", "url", url, "duration", duration, "error", err)
		return "", fmt.Errorf("fetch %q: %w", url, err)
	}

	body := resp.Body()
	logger.S.Debugw("fetch completed",
		"url", url,
		"status", resp.StatusCode(),
		"size", FormatSize(len(body)),
		"duration", FormatDuration(duration.Milliseconds()),
	)

	return string(body), nil
}

// FormatDuration formats duration in milliseconds to human-readable string
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	seconds := float64(ms) / 1000.0
	return fmt.Sprintf("%.2fs", seconds)
}

// FormatSize formats byte size to human-readable string
func FormatSize(bytes int) string {
	if bytes < 1024 {
		return fmt.Sprintf("%dB", bytes)
	}
	if bytes < 1024*1024 {
		return fmt.Sprintf("%.2fKB", float64(bytes)/1024.0)
	}
	return fmt.Sprintf("%.2fMB", float64(bytes)/(1024.0*1024.0))
}
