// Package githubapi is a hand-rolled client for the GitHub v3 REST API.
// It fetches users and repositories, follows offset pagination, retries
// transient failures with exponential backoff, and tracks the remote
// rate-limit budget observed on every response.
package githubapi

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/m-mizutani/ghfetch/pkg/domain/interfaces"
	"github.com/m-mizutani/ghfetch/pkg/domain/model"
	"github.com/m-mizutani/ghfetch/pkg/domain/types"
)

const (
	defaultBaseURL  = "https://api.github.com"
	defaultPageSize = 100

	connectTimeout = 5 * time.Second
	readTimeout    = 30 * time.Second

	defaultMaxRetries     = 3
	defaultInitialBackoff = 1 * time.Second
	defaultMaxBackoff     = 8 * time.Second
)

// HTTPClient is the transport seam for tests
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	token      types.GitHubToken
	baseURL    string
	httpClient HTTPClient
	pageSize   int

	maxRetries     int
	initialBackoff time.Duration
	maxBackoff     time.Duration

	rateLimit rateLimitTracker
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithBaseURL replaces the API base URL, mainly for httptest servers.
func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func WithHTTPClient(client HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = client
	}
}

func WithPageSize(size int) Option {
	return func(x *Client) {
		x.pageSize = size
	}
}

func WithMaxRetries(n int) Option {
	return func(x *Client) {
		x.maxRetries = n
	}
}

func WithBackoff(initial, max time.Duration) Option {
	return func(x *Client) {
		x.initialBackoff = initial
		x.maxBackoff = max
	}
}

// New builds a client and bootstraps the rate-limit tracker with a call to
// the /rate_limit endpoint. The token is immutable for the client lifetime.
func New(ctx context.Context, token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "token is empty")
	}

	client := &Client{
		token:          token,
		baseURL:        defaultBaseURL,
		pageSize:       defaultPageSize,
		maxRetries:     defaultMaxRetries,
		initialBackoff: defaultInitialBackoff,
		maxBackoff:     defaultMaxBackoff,
	}

	for _, opt := range options {
		opt(client)
	}

	if client.pageSize < 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pageSize must be positive", goerr.V("pageSize", client.pageSize))
	}
	if client.maxRetries < 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "maxRetries must not be negative", goerr.V("maxRetries", client.maxRetries))
	}
	if client.initialBackoff <= 0 || client.maxBackoff < client.initialBackoff {
		return nil, goerr.Wrap(types.ErrInvalidOption, "invalid backoff bounds",
			goerr.V("initial", client.initialBackoff),
			goerr.V("max", client.maxBackoff),
		)
	}

	if client.httpClient == nil {
		client.httpClient = &http.Client{
			Timeout: readTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: connectTimeout,
				}).DialContext,
			},
		}
	}

	if err := client.bootstrapRateLimit(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch initial rate limit status")
	}

	return client, nil
}

// RateLimit returns the latest observed rate-limit state. The value is a
// snapshot; see rateLimitTracker for the write semantics.
func (x *Client) RateLimit() model.RateLimit {
	return x.rateLimit.snapshot()
}
