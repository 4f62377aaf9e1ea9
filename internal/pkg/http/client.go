package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/piresc/taxe/internal/pkg/apierror"
	appctx "github.com/piresc/taxe/internal/pkg/context"
	"github.com/piresc/taxe/internal/pkg/logger"
)

const (
	// DefaultTimeout for API requests
	DefaultTimeout = 10 * time.Second
	// RequestIDHeader carries a per-request id the server echoes into its logs
	RequestIDHeader = "X-Request-ID"
)

// Config holds the API transport settings
type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Client talks JSON to the taxe API
type Client struct {
	baseURL    string
	httpClient *nethttp.Client
}

// RequestOption decorates an outgoing request
type RequestOption func(req *nethttp.Request)

// WithBearer authenticates with a session token
func WithBearer(token string) RequestOption {
	return func(req *nethttp.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// WithBasicAuth authenticates with an email and password, used by login
func WithBasicAuth(email, password string) RequestOption {
	return func(req *nethttp.Request) {
		req.SetBasicAuth(email, password)
	}
}

// WithQuery appends query parameters
func WithQuery(values url.Values) RequestOption {
	return func(req *nethttp.Request) {
		q := req.URL.Query()
		for k, vs := range values {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		req.URL.RawQuery = q.Encode()
	}
}

// NewClient creates a new API client
func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL: config.BaseURL,
		httpClient: &nethttp.Client{
			Timeout: config.Timeout,
		},
	}
}

// BaseURL returns the API root requests are resolved against
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) Get(ctx context.Context, endpoint string, opts ...RequestOption) ([]byte, error) {
	return c.Do(ctx, nethttp.MethodGet, endpoint, nil, opts...)
}

func (c *Client) Post(ctx context.Context, endpoint string, body interface{}, opts ...RequestOption) ([]byte, error) {
	return c.Do(ctx, nethttp.MethodPost, endpoint, body, opts...)
}

func (c *Client) Put(ctx context.Context, endpoint string, body interface{}, opts ...RequestOption) ([]byte, error) {
	return c.Do(ctx, nethttp.MethodPut, endpoint, body, opts...)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opts ...RequestOption) ([]byte, error) {
	return c.Do(ctx, nethttp.MethodDelete, endpoint, nil, opts...)
}

// Do sends a JSON request and returns the body of a 2xx response.
// A response with any other status is returned as *apierror.HTTPError and a
// request that never got a response as *apierror.TransportError.
func (c *Client) Do(ctx context.Context, method, endpoint string, body interface{}, opts ...RequestOption) ([]byte, error) {
	target := c.resolve(endpoint)

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	req, err := nethttp.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := appctx.GetRequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, requestID)
	for _, opt := range opts {
		opt(req)
	}

	logger.Debug("Making API request",
		logger.String("method", method),
		logger.String("url", req.URL.String()),
		logger.RequestID(requestID))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Warn("API request failed",
			logger.String("method", method),
			logger.String("url", target),
			logger.RequestID(requestID),
			logger.Err(err))
		return nil, &apierror.TransportError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apierror.TransportError{Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	logger.Debug("API request completed",
		logger.String("method", method),
		logger.String("url", target),
		logger.RequestID(requestID),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &apierror.HTTPError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return respBody, nil
}

func (c *Client) resolve(endpoint string) string {
	if c.baseURL == "" {
		return endpoint
	}
	return strings.TrimRight(c.baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}
