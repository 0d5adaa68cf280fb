// Package wikipedia provides a client for the MediaWiki action API
package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/bobmcallan/cleartext/internal/common"
	"github.com/bobmcallan/cleartext/internal/interfaces"
	"github.com/bobmcallan/cleartext/internal/models"
)

const (
	DefaultBaseURL   = "https://en.wikipedia.org"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
	DefaultUserAgent = "ClearText/1.0 (https://github.com/bobmcallan/cleartext)"
)

// ErrPageNotFound is returned when no page exists for the requested title.
var ErrPageNotFound = errors.New("page not found")

// Client implements the EncyclopediaClient interface against Wikipedia
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL, e.g. https://de.wikipedia.org
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithUserAgent sets the User-Agent header. Wikimedia asks for a contact address.
func WithUserAgent(userAgent string) ClientOption {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
		}
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Wikipedia client.
// No API key is required.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:   DefaultBaseURL,
		userAgent: DefaultUserAgent,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// queryResponse is the formatversion=2 shape of action=query&prop=extracts.
type queryResponse struct {
	Query struct {
		Pages []struct {
			PageID  int64  `json:"pageid"`
			Title   string `json:"title"`
			Extract string `json:"extract"`
			Missing bool   `json:"missing"`
			Invalid bool   `json:"invalid"`
		} `json:"pages"`
	} `json:"query"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// GetSummary returns the plain-text intro of the page with the given title.
// Redirects are followed. A missing or invalid title returns ErrPageNotFound.
func (c *Client) GetSummary(ctx context.Context, term string) (*models.PageSummary, error) {
	title := strings.TrimSpace(term)
	if title == "" {
		return nil, ErrPageNotFound
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("format", "json")
	params.Set("formatversion", "2")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("redirects", "1")
	params.Set("titles", title)

	reqURL := c.baseURL + "/w/api.php?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.logger.Warn().Err(err).Str("title", title).Dur("elapsed", elapsed).Msg("Wikipedia request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Str("title", title).Int("status", resp.StatusCode).Dur("elapsed", elapsed).Msg("Wikipedia non-OK response")
		return nil, fmt.Errorf("wikipedia API error: status %d for title %q", resp.StatusCode, title)
	}

	var apiResp queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if apiResp.Error != nil {
		return nil, fmt.Errorf("wikipedia API error: %s: %s", apiResp.Error.Code, apiResp.Error.Info)
	}

	if len(apiResp.Query.Pages) == 0 {
		return nil, ErrPageNotFound
	}

	page := apiResp.Query.Pages[0]
	if page.Missing || page.Invalid || page.PageID == 0 {
		c.logger.Debug().Str("title", title).Dur("elapsed", elapsed).Msg("Wikipedia page missing")
		return nil, ErrPageNotFound
	}

	c.logger.Debug().Str("title", title).Str("resolved_title", page.Title).Dur("elapsed", elapsed).Msg("Wikipedia lookup")

	return &models.PageSummary{
		Title:   page.Title,
		PageID:  page.PageID,
		Extract: page.Extract,
	}, nil
}

// Ensure Client implements EncyclopediaClient
var _ interfaces.EncyclopediaClient = (*Client)(nil)
