// Package metadata looks up title, description and preview image of a page
// through a microlink compatible API.
package metadata

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

	"catalog-backend/internal/cache"
	"catalog-backend/internal/logging"
	"catalog-backend/internal/metrics"
)

const DefaultEndpoint = "https://api.microlink.io"

type Metadata struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
}

type Client struct {
	endpoint   string
	httpClient *http.Client
	cache      cache.Cache
	cacheTTL   time.Duration
	log        *slog.Logger
}

type Option func(*Client)

func WithCache(c cache.Cache, ttl time.Duration) Option {
	return func(cl *Client) {
		if c != nil {
			cl.cache = c
			cl.cacheTTL = ttl
		}
	}
}

func WithHTTPClient(hc *http.Client) Option {
	return func(cl *Client) {
		if hc != nil {
			cl.httpClient = hc
		}
	}
}

func NewClient(endpoint string, log *slog.Logger, opts ...Option) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultEndpoint
	}
	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		cache:      cache.NewNoop(),
		log:        logging.OrDiscard(log),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var errUnsuccessful = errors.New("metadata service reported failure")

type response struct {
	Status string `json:"status"`
	Data   struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Image       *struct {
			URL string `json:"url"`
		} `json:"image"`
	} `json:"data"`
}

// Fetch never fails outward: any problem is logged and reported as false.
func (c *Client) Fetch(ctx context.Context, target string) (Metadata, bool) {
	target = strings.TrimSpace(target)
	if target == "" {
		return Metadata{}, false
	}

	key := "metadata:" + target
	var cached Metadata
	if cache.GetJSON(ctx, c.cache, key, &cached) {
		metrics.ObserveMetadata("cached")
		return cached, true
	}

	md, err := c.fetch(ctx, target)
	if err != nil {
		c.log.Warn("metadata fetch failed", slog.String("url", target), slog.String("error", err.Error()))
		metrics.ObserveMetadata("failure")
		return Metadata{}, false
	}
	metrics.ObserveMetadata("success")

	if err := cache.SetJSON(ctx, c.cache, key, md, c.cacheTTL); err != nil {
		c.log.Warn("metadata cache write failed", slog.String("error", err.Error()))
	}
	return md, true
}

func (c *Client) fetch(ctx context.Context, target string) (Metadata, error) {
	reqURL := c.endpoint + "?url=" + url.QueryEscape(target)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Metadata{}, fmt.Errorf("metadata create request: %w", err)
	}
	req.Header.Set("accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Metadata{}, fmt.Errorf("metadata request failed: %w", err)
	}
	defer resp.Body.Close()

	var out response
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return Metadata{}, fmt.Errorf("metadata decode response: status=%d: %w", resp.StatusCode, err)
	}
	if out.Status != "success" {
		return Metadata{}, fmt.Errorf("%w: status=%q", errUnsuccessful, out.Status)
	}

	md := Metadata{
		Title:       out.Data.Title,
		Description: out.Data.Description,
	}
	if out.Data.Image != nil {
		md.ImageURL = out.Data.Image.URL
	}
	return md, nil
}
