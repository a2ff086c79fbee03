package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context/ctxhttp"
	"golang.org/x/sync/errgroup"

	"github.com/tdapi/go-sdk/internal/utils"
	"github.com/tdapi/go-sdk/pkg/core"
)

const (
	// Version is the SDK version reported in the default User-Agent.
	Version = "0.1.0"

	DefaultTimeout        = 30 * time.Second
	DefaultMaxConcurrency = 4

	headerRequestID = "X-Request-ID"
	debugTag        = "client"
)

// Client issues requests against the API. It is safe for concurrent use.
type Client struct {
	// baseURL is the base URL of the API
	baseURL *url.URL

	httpClient     *http.Client
	userAgent      string
	maxConcurrency int
	logger         logrus.FieldLogger
}

// Config contains configuration options for the client.
type Config struct {
	// BaseURL is the base URL of the API
	BaseURL string

	// Timeout bounds each request. Zero means DefaultTimeout. Ignored when
	// HTTPClient is set.
	Timeout time.Duration

	// UserAgent overrides the default "tdapi-go-sdk/<Version>".
	UserAgent string

	// MaxConcurrency limits in-flight requests in DoAll. Zero means
	// DefaultMaxConcurrency.
	MaxConcurrency int

	// HTTPClient replaces the client built from Timeout.
	HTTPClient *http.Client

	// Logger receives request tracing at debug level. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

// New creates a new client with the specified configuration.
func New(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, &core.ConfigError{
			Field: "BaseURL",
			Value: config.BaseURL,
			Err:   errors.New("base URL cannot be empty"),
		}
	}

	baseURL, err := url.Parse(config.BaseURL)
	if err != nil {
		return nil, &core.ConfigError{
			Field: "BaseURL",
			Value: config.BaseURL,
			Err:   fmt.Errorf("invalid base URL: %w", err),
		}
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, &core.ConfigError{
			Field: "BaseURL",
			Value: config.BaseURL,
			Err:   fmt.Errorf("base URL must be absolute: %w", core.ErrInvalidConfig),
		}
	}
	// URL appends the request path and query to the base as text.
	if baseURL.RawQuery != "" || baseURL.Fragment != "" || baseURL.ForceQuery {
		return nil, &core.ConfigError{
			Field: "BaseURL",
			Value: config.BaseURL,
			Err:   fmt.Errorf("base URL cannot carry a query or fragment: %w", core.ErrInvalidConfig),
		}
	}

	if config.Timeout < 0 {
		return nil, &core.ConfigError{
			Field: "Timeout",
			Value: config.Timeout,
			Err:   fmt.Errorf("timeout cannot be negative: %w", core.ErrInvalidConfig),
		}
	}
	if config.MaxConcurrency < 0 {
		return nil, &core.ConfigError{
			Field: "MaxConcurrency",
			Value: config.MaxConcurrency,
			Err:   fmt.Errorf("max concurrency cannot be negative: %w", core.ErrInvalidConfig),
		}
	}

	c := &Client{
		baseURL:        baseURL,
		httpClient:     config.HTTPClient,
		userAgent:      config.UserAgent,
		maxConcurrency: config.MaxConcurrency,
		logger:         config.Logger,
	}
	if c.httpClient == nil {
		timeout := config.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		c.httpClient = &http.Client{Timeout: timeout}
	}
	if c.userAgent == "" {
		c.userAgent = "tdapi-go-sdk/" + Version
	}
	if c.maxConcurrency == 0 {
		c.maxConcurrency = DefaultMaxConcurrency
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}

	return c, nil
}

// URL returns the full URL for req: base URL, path and encoded query.
func (c *Client) URL(req *Request) string {
	u := strings.TrimSuffix(c.baseURL.String(), "/") + "/" + strings.TrimPrefix(req.Path, "/")

	query := req.Query()
	if query == "" {
		return u
	}
	return u + "?" + query
}

// Do sends req and returns the response body. Responses with a status of 400
// or above are returned as *core.ProtocolError.
func (c *Client) Do(ctx context.Context, req *Request) ([]byte, error) {
	if req == nil {
		return nil, &core.ConfigError{
			Field: "request",
			Value: req,
			Err:   errors.New("request cannot be nil"),
		}
	}

	target := c.URL(req)
	operation := http.MethodGet + " " + req.Path

	httpReq, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	requestID := uuid.NewString()
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(headerRequestID, requestID)

	log := c.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"path":       req.Path,
	})
	log.Debug("sending request")
	utils.DebugOut(debugTag, requestID+" "+operation)

	resp, err := ctxhttp.Do(ctx, c.httpClient, httpReq)
	if err != nil {
		log.WithError(err).Debug("request failed")
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", operation, err)
	}

	log = log.WithField("status", resp.StatusCode)
	if resp.StatusCode >= http.StatusBadRequest {
		log.Debug("unexpected status")
		return nil, &core.ProtocolError{
			Operation: operation,
			Code:      resp.StatusCode,
			Body:      string(body),
			Err:       core.ErrUnexpectedStatus,
		}
	}

	log.Debug("request completed")
	return body, nil
}

// DoAll sends reqs concurrently, at most MaxConcurrency at a time, and
// returns the bodies in request order. The first failure cancels the
// remaining requests and is returned.
func (c *Client) DoAll(ctx context.Context, reqs []*Request) ([][]byte, error) {
	results := make([][]byte, len(reqs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)

	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			body, err := c.Do(ctx, req)
			if err != nil {
				return err
			}
			results[i] = body
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// Close closes idle connections held by the client.
func (c *Client) Close() error {
	c.httpClient.CloseIdleConnections()
	return nil
}
