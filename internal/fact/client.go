// Package fact fetches a short fact from an external API for the /me
// endpoint. The upstream is decorative, so failures degrade to a stub
// fact rather than surfacing an error.
package fact

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// Fallback is served when the upstream is unreachable or rate limited
// and no cached fact is available.
const Fallback = "Cats sleep for around 13 to 16 hours a day."

const (
	cacheKey     = "fact"
	maxBodyBytes = 64 << 10
)

// Client fetches facts with a TTL cache in front and a rate limiter on
// outbound calls, so a burst of /me requests costs at most one upstream
// round trip per cache window.
type Client struct {
	httpClient *http.Client
	url        string
	cache      *gocache.Cache
	limiter    *rate.Limiter
	ttl        time.Duration
}

// New creates a fact client for the given upstream URL.
func New(url string, ttl time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		url:     url,
		cache:   gocache.New(ttl, 2*ttl),
		limiter: rate.NewLimiter(rate.Every(time.Second), 2),
		ttl:     ttl,
	}
}

// factResponse is the upstream payload shape.
type factResponse struct {
	Fact string `json:"fact"`
}

// Fact returns the current fact: cached if fresh, fetched otherwise,
// and the fallback when the upstream cannot be reached.
func (c *Client) Fact(ctx context.Context) string {
	if cached, found := c.cache.Get(cacheKey); found {
		return cached.(string)
	}

	if !c.limiter.Allow() {
		return Fallback
	}

	fact, err := c.fetch(ctx)
	if err != nil {
		return Fallback
	}

	c.cache.Set(cacheKey, fact, c.ttl)
	return fact
}

// fetch performs one upstream round trip.
func (c *Client) fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}

	var payload factResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	if payload.Fact == "" {
		return "", fmt.Errorf("empty fact in response")
	}
	return payload.Fact, nil
}
