package eventifyapi

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/eventify/eventify-client/internal/version"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

const DefaultBaseURL = "http://localhost:5000"

type ConnectionStatus string

const (
	StatusUnknown      ConnectionStatus = "unknown"
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
)

var ErrNotAuthenticated = errors.New("eventify session is not initialized")

type Client struct {
	http   *resty.Client
	routes RouteSet

	mu     sync.RWMutex
	token  string
	status ConnectionStatus
}

type ClientOptions struct {
	BaseURL    string
	APIVersion string
	AppVersion string
	Token      string
	Timeout    time.Duration
	HTTP       *resty.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	appVersion := opts.AppVersion
	if appVersion == "" {
		appVersion = version.Version
	}
	routes, err := RoutesFor(opts.APIVersion)
	if err != nil {
		return nil, err
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = resty.New()
	}
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}
	httpClient.
		SetBaseURL(baseURL).
		SetHeader("User-Agent", fmt.Sprintf("eventify-client@%s", appVersion)).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader("X-Request-ID", uuid.NewString())
			// The backend does not always declare a JSON content type, so
			// decode SetResult targets as JSON regardless of what it sends.
			r.ForceContentType("application/json")
			return nil
		})
	return &Client{
		http:   httpClient,
		routes: routes,
		token:  opts.Token,
		status: StatusUnknown,
	}, nil
}

// SetToken installs the bearer credential used by all authenticated calls.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
}

func (c *Client) ClearToken() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.status = StatusUnknown
}

func (c *Client) Status() ConnectionStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.status
}

func (c *Client) Routes() RouteSet { return c.routes }

func (c *Client) setStatus(status ConnectionStatus) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.status = status
}

func (c *Client) requireToken() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.token == "" {
		return "", ErrNotAuthenticated
	}
	return c.token, nil
}

// newRequest prepares an authenticated request. The caller still picks the
// verb and path.
func (c *Client) newRequest(ctx context.Context) (*resty.Request, error) {
	token, err := c.requireToken()
	if err != nil {
		return nil, err
	}
	return c.http.R().SetContext(ctx).SetAuthToken(token), nil
}

// finish collapses transport failures and non-2xx replies into a single
// error return and tracks connection status the way each call observes it.
func (c *Client) finish(resp *resty.Response, err error) error {
	if err != nil {
		c.setStatus(StatusDisconnected)
		return fmt.Errorf("eventify request: %w", err)
	}
	if resp.IsError() {
		c.setStatus(StatusDisconnected)
		return newAPIError(resp.StatusCode(), resp.Body())
	}
	c.setStatus(StatusConnected)
	return nil
}
