// Package provider is the API-Football v3 HTTP client. It issues
// authenticated GETs, unwraps the provider's response envelope and
// reports request metrics. It does not retry and does not cache;
// callers own both concerns.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

var (
	upstreamRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "football_upstream_requests_total",
		Help: "Total API-Football requests by endpoint and status",
	}, []string{"endpoint", "status"})

	upstreamRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "football_upstream_request_duration_seconds",
		Help:    "API-Football request duration in seconds by endpoint",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
	}, []string{"endpoint"})

	upstreamErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "football_upstream_errors_total",
		Help: "Total API-Football errors by class",
	}, []string{"class"})
)

// ErrorClass classifies upstream failures for observability.
type ErrorClass string

const (
	// ErrorClassClient represents 4xx upstream responses.
	ErrorClassClient ErrorClass = "client"

	// ErrorClassServer represents 5xx upstream responses.
	ErrorClassServer ErrorClass = "server"

	// ErrorClassNetwork represents transport and decode failures.
	ErrorClassNetwork ErrorClass = "network"
)

// UpstreamError is a non-2xx response from API-Football.
type UpstreamError struct {
	Status int
	Class  ErrorClass
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("api-football %s error (status %d): %s", e.Class, e.Status, e.Body)
}

// Paging is the provider's pagination block. Current and Total are both
// 1 for unpaginated endpoints.
type Paging struct {
	Current int `json:"current"`
	Total   int `json:"total"`
}

// Result is one unwrapped API-Football envelope.
type Result struct {
	// Response is the raw `response` field, usually a JSON array.
	Response json.RawMessage
	Paging   Paging
}

// Items decodes the response field as an array of raw records.
func (r Result) Items() ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(r.Response, &items); err != nil {
		return nil, fmt.Errorf("decode response items: %w", err)
	}
	return items, nil
}

// Config holds the provider client configuration.
type Config struct {
	// BaseURL of the API-Football v3 service.
	BaseURL string

	// APIKey sent as x-apisports-key on every request.
	APIKey string

	// RequestsPerSecond gates outbound calls so the provider's plan
	// quota is not burned by a cold cache.
	RequestsPerSecond float64
}

// Client is the API-Football HTTP client.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	logger     zerolog.Logger
}

// New creates an API-Football client.
func New(cfg Config, logger zerolog.Logger) *Client {
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger.With().Str("component", "provider").Logger(),
	}
}

type envelope struct {
	Response json.RawMessage `json:"response"`
	Paging   Paging          `json:"paging"`
}

// Fetch issues one GET to {base}/{endpoint}?{params} and unwraps the
// envelope. Non-2xx responses become an *UpstreamError; there is no
// retry.
func (c *Client) Fetch(ctx context.Context, endpoint string, params url.Values) (Result, error) {
	start := time.Now()
	defer func() {
		upstreamRequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, fmt.Errorf("wait for request slot: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("x-apisports-key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().
		Str("endpoint", endpoint).
		Str("params", params.Encode()).
		Msg("Fetching from API-Football")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		upstreamErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		upstreamRequestsTotal.WithLabelValues(endpoint, "network_error").Inc()
		return Result{}, fmt.Errorf("api-football request: %w", err)
	}
	defer resp.Body.Close()

	upstreamRequestsTotal.WithLabelValues(endpoint, fmt.Sprintf("%d", resp.StatusCode)).Inc()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		upstreamErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return Result{}, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		class := classifyStatus(resp.StatusCode)
		upstreamErrorsTotal.WithLabelValues(string(class)).Inc()

		c.logger.Warn().
			Str("endpoint", endpoint).
			Int("status", resp.StatusCode).
			Str("class", string(class)).
			Msg("API-Football request error")

		return Result{}, &UpstreamError{
			Status: resp.StatusCode,
			Class:  class,
			Body:   truncate(string(body), 256),
		}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		upstreamErrorsTotal.WithLabelValues(string(ErrorClassNetwork)).Inc()
		return Result{}, fmt.Errorf("decode envelope: %w", err)
	}

	return Result{Response: env.Response, Paging: env.Paging}, nil
}

// SetHTTPClient sets a custom HTTP client (for testing).
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

func classifyStatus(status int) ErrorClass {
	if status >= 500 {
		return ErrorClassServer
	}
	return ErrorClassClient
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
