package naver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"land-collector/config"
	"land-collector/utils"
)

const (
	mapZoom = "12"
	referer = "https://new.land.naver.com/"
	secChUA = `"Chromium";v="139", "Not;A=Brand";v="99"`

	// maxBodyBytes caps how much of a portal response is read.
	maxBodyBytes = 32 << 20
)

// Client issues authenticated GET requests against the portal API.
type Client struct {
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	logger    *utils.Logger
}

// NewClient builds a Client from cfg. A non-positive REQUEST_RPS disables
// rate limiting.
func NewClient(cfg *config.Config, logger *utils.Logger) *Client {
	limit := rate.Inf
	if cfg.RequestRPS > 0 {
		limit = rate.Limit(cfg.RequestRPS)
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		userAgent: cfg.UserAgent,
		http:      &http.Client{},
		limiter:   rate.NewLimiter(limit, 1),
		logger:    logger,
	}
}

// BaseURL returns the portal origin without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

// get performs one request bounded by timeout. 401/403 come back as
// *AuthExpiredError, any other non-2xx or transport failure as *NetworkError.
func (c *Client) get(ctx context.Context, path string, params url.Values, token string, timeout time.Duration) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &NetworkError{Op: "GET " + path, Err: err}
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	endpoint := c.baseURL + path
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request %s: %w", path, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Sec-Ch-Ua", secChUA)
	req.Header.Set("Sec-Ch-Ua-Mobile", "?0")
	req.Header.Set("Sec-Ch-Ua-Platform", `"Windows"`)
	req.Header.Set("Referer", referer)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, &NetworkError{Op: "GET " + path, Err: fmt.Errorf("timed out after %v: %w", timeout, err)}
		}
		return nil, &NetworkError{Op: "GET " + path, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Op: "GET " + path, Err: fmt.Errorf("read body: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, &AuthExpiredError{Status: resp.StatusCode}
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &NetworkError{Op: "GET " + path, Status: resp.StatusCode}
	}

	c.logger.Debug("[naver] GET %s -> %d (%d bytes)", path, resp.StatusCode, len(body))
	return body, nil
}

// coord rounds to six decimals so expanded bounds do not carry float noise
// (126.905 rather than 126.90499999999999).
func coord(v float64) string {
	return strconv.FormatFloat(math.Round(v*1e6)/1e6, 'f', -1, 64)
}
