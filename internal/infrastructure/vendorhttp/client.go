package vendorhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pix_server/internal/logging"
)

const maxErrorBody = 4 * 1024

// Error is a non-2xx vendor response. Body is kept verbatim (capped) so the
// caller can log it.
type Error struct {
	Vendor     string
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Vendor, e.StatusCode, e.Body)
}

// Client posts and fetches JSON for one vendor.
type Client struct {
	vendor string
	http   *http.Client
}

// New returns a client for vendor. A nil hc gets a client with timeout.
func New(vendor string, hc *http.Client, timeout time.Duration) *Client {
	if hc == nil {
		hc = &http.Client{Timeout: timeout}
	}
	return &Client{vendor: vendor, http: hc}
}

func (c *Client) PostJSON(ctx context.Context, rawURL string, headers map[string]string, body any, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("%s: marshal request: %w", c.vendor, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("%s: build request %s: %w", c.vendor, RedactURL(rawURL), unwrapURLError(err))
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, headers, out)
}

func (c *Client) GetJSON(ctx context.Context, rawURL string, headers map[string]string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("%s: build request %s: %w", c.vendor, RedactURL(rawURL), unwrapURLError(err))
	}
	return c.do(req, headers, out)
}

func (c *Client) do(req *http.Request, headers map[string]string, out any) error {
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if v != "" {
			req.Header.Set(k, v)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %s %s: %w", c.vendor, req.Method, RedactURL(req.URL.String()), unwrapURLError(err))
	}
	defer resp.Body.Close()

	log := logging.FromCtx(req.Context())
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		log.Error("[pix][vendor] call failed", "vendor", c.vendor, "method", req.Method, "status", resp.StatusCode, "body", string(raw), "dur_ms", time.Since(start).Milliseconds())
		return &Error{Vendor: c.vendor, StatusCode: resp.StatusCode, Body: string(raw)}
	}
	log.Info("[pix][vendor] call done", "vendor", c.vendor, "method", req.Method, "status", resp.StatusCode, "dur_ms", time.Since(start).Milliseconds())

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("%s: decode response: %w", c.vendor, err)
	}
	return nil
}

// RedactURL drops the query string and masks the path segment following a
// "token" segment. Vendors carry credentials in both places.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "[invalid url]"
	}
	segs := strings.Split(u.Path, "/")
	for i := 0; i < len(segs)-1; i++ {
		if strings.EqualFold(segs[i], "token") && segs[i+1] != "" {
			segs[i+1] = "REDACTED"
		}
	}
	redacted := url.URL{Scheme: u.Scheme, Host: u.Host, Path: strings.Join(segs, "/")}
	if u.RawQuery != "" {
		redacted.RawQuery = "REDACTED"
	}
	return redacted.String()
}

// unwrapURLError strips *url.Error, whose message embeds the full request URL.
func unwrapURLError(err error) error {
	var uErr *url.Error
	if errors.As(err, &uErr) && uErr.Err != nil {
		return uErr.Err
	}
	return err
}
