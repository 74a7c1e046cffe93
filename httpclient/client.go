package httpclient

import (
	"context"
	"net/http"

	"github.com/kbukum/gofetch/errors"
	"github.com/kbukum/gofetch/httpclient/endpoint"
	"github.com/kbukum/gofetch/httpclient/parser"
)

// Client issues GET requests against a base URL through an interceptor chain.
// It is safe for concurrent use; the only shared state is whatever the
// installed interceptors keep.
type Client struct {
	name     string
	base     endpoint.URL
	chain    *Chain
	pipeline Executor
	closer   func()
}

// NewClient creates a client that sends every request through interceptors,
// in order, and then exec.
func NewClient(base endpoint.URL, exec Executor, interceptors ...Interceptor) *Client {
	chain := NewChain(interceptors...)
	return &Client{
		name:     defaultName,
		base:     base,
		chain:    chain,
		pipeline: chain.Then(exec),
	}
}

// Get requests base+path. The returned error, if any, is the interceptor's
// own error or an *errors.AppError of kind AbortError, NetworkError or
// PayloadError. Non-2xx statuses are not errors.
func (c *Client) Get(ctx context.Context, path endpoint.Path) (Response, error) {
	if path.IsZero() {
		return Response{}, errors.InvalidPath("", "path is required")
	}
	if c.base.IsZero() {
		return Response{}, errors.InvalidURL("", "client has no base URL")
	}
	u := c.base.Join(path)
	req := Request{
		URL:         u,
		OriginalURL: u,
		Method:      MethodGet,
		Header:      make(http.Header),
		Metadata:    Metadata{},
	}
	return c.pipeline.Execute(ctx, req)
}

// BaseURL returns the base URL.
func (c *Client) BaseURL() endpoint.URL { return c.base }

// Name returns the configured client name.
func (c *Client) Name() string { return c.name }

// Interceptors returns the installed interceptors in order.
func (c *Client) Interceptors() []Interceptor { return c.chain.Interceptors() }

// Close releases idle connections held by a transport created by New.
func (c *Client) Close() {
	if c.closer != nil {
		c.closer()
	}
}

// --- Construction from config ---

type options struct {
	interceptors []Interceptor
	parsers      []Parser
	parsersSet   bool
	transport    Doer
	middleware   []ExecutorMiddleware
}

// Option configures New.
type Option func(*options)

// WithInterceptors appends interceptors after the ones derived from config.
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(o *options) { o.interceptors = append(o.interceptors, interceptors...) }
}

// WithParsers replaces the parsers selected by Config.Parsers.
func WithParsers(parsers ...Parser) Option {
	return func(o *options) {
		o.parsers = parsers
		o.parsersSet = true
	}
}

// WithTransport sends requests through d instead of an *http.Client built
// from config. Timeout, TLS and redirect settings are then d's concern.
func WithTransport(d Doer) Option {
	return func(o *options) { o.transport = d }
}

// WithExecutorMiddleware wraps the executor, first middleware outermost.
func WithExecutorMiddleware(mw ...ExecutorMiddleware) Option {
	return func(o *options) { o.middleware = append(o.middleware, mw...) }
}

// New builds a client from configuration. Config headers and auth are
// installed as the first interceptors, followed by those from
// WithInterceptors.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	base, err := endpoint.NewURL(cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	transport := o.transport
	var closer func()
	if transport == nil {
		hc, err := newHTTPClient(cfg)
		if err != nil {
			return nil, errors.InvalidConfig(err.Error())
		}
		transport = hc
		closer = hc.CloseIdleConnections
	}

	parsers := o.parsers
	if !o.parsersSet {
		if len(cfg.Parsers) > 0 {
			if parsers, err = parser.ByName(cfg.Parsers...); err != nil {
				return nil, errors.InvalidConfig(err.Error())
			}
		} else {
			parsers = parser.Default()
		}
	}

	var exec Executor = NewExecutor(transport, NewResolver(parsers...), WithMaxBodyBytes(cfg.MaxBodyBytes))
	if len(o.middleware) > 0 {
		exec = ChainExecutor(o.middleware...)(exec)
	}

	var interceptors []Interceptor
	if len(cfg.Headers) > 0 {
		interceptors = append(interceptors, Headers(cfg.Headers))
	}
	if cfg.Auth != nil && cfg.Auth.Type != AuthNone {
		interceptors = append(interceptors, cfg.Auth.Interceptor())
	}
	interceptors = append(interceptors, o.interceptors...)

	c := NewClient(base, exec, interceptors...)
	c.name = cfg.Name
	c.closer = closer
	return c, nil
}
