package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"customer-lookup/internal/domain"
)

const (
	customersPath = "/customers"
	healthPath    = "/healthz"

	// DefaultTimeout bounds a directory request when no timeout is configured.
	DefaultTimeout = 10 * time.Second
)

var (
	// ErrFetchFailed is returned when the directory answers with a non-success status.
	ErrFetchFailed = errors.New("failed to fetch customers")
)

// FallbackMessage is used when a transport error carries no message of its own.
const FallbackMessage = "an error occurred while searching"

// FetchError wraps a transport-level failure.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	if e.Err == nil || e.Err.Error() == "" {
		return FallbackMessage
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// Doer sends HTTP requests. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// CustomerFetcher is the read side of the directory used by the lookup pipeline.
type CustomerFetcher interface {
	Customers(ctx context.Context, queryString string) ([]domain.Customer, error)
}

// Client talks to a customer directory exposing GET /customers.
type Client struct {
	BaseURL    string
	httpClient Doer
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the HTTP client, mostly for tests.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.httpClient = d }
}

// NewClient returns a Client whose requests time out after timeout (DefaultTimeout when <= 0).
func NewClient(baseURL string, timeout time.Duration, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	c := &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Customers fetches GET <base>/customers<queryString>. queryString is "" or starts with "?".
func (c *Client) Customers(ctx context.Context, queryString string) ([]domain.Customer, error) {
	u, err := url.JoinPath(c.BaseURL, customersPath)
	if err != nil {
		return nil, fmt.Errorf("building path: %w", err)
	}

	resp, err := c.get(ctx, u+queryString)
	if err != nil {
		return nil, &FetchError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, ErrFetchFailed
	}

	var customers []domain.Customer
	if err := json.NewDecoder(resp.Body).Decode(&customers); err != nil {
		return nil, &FetchError{Err: fmt.Errorf("decoding customers: %w", err)}
	}
	if customers == nil {
		customers = []domain.Customer{}
	}
	return customers, nil
}

// Ping checks that the directory answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	u, err := url.JoinPath(c.BaseURL, healthPath)
	if err != nil {
		return fmt.Errorf("building path: %w", err)
	}
	resp, err := c.get(ctx, u)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	return c.httpClient.Do(req)
}

var _ CustomerFetcher = (*Client)(nil)
