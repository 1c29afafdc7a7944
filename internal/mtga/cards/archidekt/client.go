// Package archidekt is a client for the public Archidekt deck API.
package archidekt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/ramonehamilton/combat-calc/internal/mtga/deck"
)

const (
	// DefaultBaseURL is the public Archidekt host.
	DefaultBaseURL = "https://archidekt.com"

	defaultRateInterval = 500 * time.Millisecond // 2 req/sec
	requestTimeout      = 30 * time.Second
	maxBodyBytes        = 8 << 20
	maxErrorBodyBytes   = 1 << 10
)

// Client fetches decks from Archidekt with rate limiting.
// Each FetchDeck call issues exactly one request; failures are not retried.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	userAgent   string
	logger      *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header sent upstream.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithRateLimit allows one request per interval. A zero interval disables
// limiting.
func WithRateLimit(interval time.Duration) Option {
	return func(c *Client) {
		if interval <= 0 {
			c.rateLimiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		c.rateLimiter = rate.NewLimiter(rate.Every(interval), 1)
	}
}

// WithLogger sets the logger. A nil logger keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewClient creates a new Archidekt API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		rateLimiter: rate.NewLimiter(rate.Every(defaultRateInterval), 1),
		userAgent:   "combat-calc/1.0",
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ deck.Source = (*Client)(nil)

// FetchDeck retrieves a deck by its Archidekt ID. Every failure is returned
// as a *FetchError.
func (c *Client) FetchDeck(ctx context.Context, deckID string) (*deck.Deck, error) {
	deckID = strings.TrimSpace(deckID)
	if deckID == "" {
		return nil, &FetchError{Err: errors.New("deck id is required")}
	}

	endpoint := fmt.Sprintf("%s/api/decks/%s/", c.baseURL, url.PathEscape(deckID))

	var resp Deck
	if err := c.doRequest(ctx, endpoint, &resp); err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			fe.DeckID = deckID
			return nil, fe
		}
		return nil, &FetchError{DeckID: deckID, Err: err}
	}

	d := resp.ToDeck()
	c.logger.Debug("Fetched deck", "deckID", deckID, "name", d.Name, "cards", len(d.Cards))
	return d, nil
}

// doRequest performs a single rate-limited GET and decodes the JSON body
// into result.
func (c *Client) doRequest(ctx context.Context, endpoint string, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(middleware.RequestIDHeader, requestID(ctx))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Deck request failed", "url", endpoint, "error", err)
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Debug("Deck request completed",
		"url", endpoint,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return &FetchError{
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected response: %s", strings.TrimSpace(string(body))),
		}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("failed to parse JSON response: %w", err)
	}

	return nil
}

// requestID reuses the inbound request ID when the fetch is made on behalf
// of an API call, so upstream logs can be correlated.
func requestID(ctx context.Context) string {
	if id := middleware.GetReqID(ctx); id != "" {
		return id
	}
	return uuid.NewString()
}
