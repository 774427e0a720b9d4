package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/proxy"
)

// DefaultTimeout is the per-request timeout used when none is configured.
const DefaultTimeout = 10 * time.Second

// maxBody caps how much of a response body is read.
const maxBody = 1 << 20

// TokenSource supplies an optional bearer token. An empty token means no
// Authorization header is sent.
type TokenSource interface {
	Token() (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() (string, error)

func (f TokenFunc) Token() (string, error) { return f() }

// Options configures a Client.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Proxy   string // http://, https:// or socks5:// proxy URL
	TLS     TLSOptions
	Tokens  TokenSource
	Logger  *zap.Logger
}

// Client performs GET requests against the joke API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	headers    map[string]string
	tokens     TokenSource
	logger     *zap.Logger
}

// New creates a new API client.
func New(opts Options) (*Client, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: scheme and host are required", opts.BaseURL)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	transport, err := buildTransport(opts.Proxy, opts.TLS)
	if err != nil {
		return nil, fmt.Errorf("configuring transport: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Client{
		baseURL: base,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("too many redirects")
				}
				return nil
			},
		},
		headers: map[string]string{
			"Content-Type": "application/json",
			"Accept":       "application/json",
		},
		tokens: opts.Tokens,
		logger: logger.Named("api"),
	}, nil
}

// Timeout returns the configured per-request timeout.
func (c *Client) Timeout() time.Duration {
	return c.httpClient.Timeout
}

// Get issues a GET for endpoint (a path, optionally with a query string)
// relative to the base URL and returns the response body.
func (c *Client) Get(ctx context.Context, endpoint string) ([]byte, error) {
	target, err := c.resolve(endpoint)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Detail: err.Error(), Err: err}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Detail: "creating request", Err: err}
	}
	for k, v := range c.headers {
		httpReq.Header.Set(k, v)
	}
	requestID := uuid.New().String()
	httpReq.Header.Set("X-Request-ID", requestID)
	c.applyAuth(httpReq)

	log := c.logger.With(zap.String("request_id", requestID), zap.String("url", target))

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		log.Error("network error", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, &Error{Kind: KindNetwork, Detail: networkDetail(err), Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		log.Error("reading response", zap.Error(err), zap.Int("status", resp.StatusCode))
		return nil, &Error{Kind: KindNetwork, Status: resp.StatusCode, Detail: "reading response", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("response error",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", excerpt(body)),
		)
		return nil, &Error{Kind: KindResponse, Status: resp.StatusCode, Detail: string(excerpt(body))}
	}

	log.Debug("request completed",
		zap.Int("status", resp.StatusCode),
		zap.Int("size", len(body)),
		zap.Duration("duration", time.Since(start)),
	)
	return body, nil
}

// GetJSON issues a GET and decodes the JSON response into v.
func (c *Client) GetJSON(ctx context.Context, endpoint string, v any) error {
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		c.logger.Error("decoding response", zap.String("endpoint", endpoint), zap.Error(err))
		return &Error{Kind: KindResponse, Status: http.StatusOK, Detail: "malformed JSON body", Err: err}
	}
	return nil
}

func (c *Client) resolve(endpoint string) (string, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if ref.IsAbs() {
		return ref.String(), nil
	}
	// Join onto the base path instead of replacing it so a base like
	// https://host/v1 keeps its prefix.
	u := *c.baseURL
	u.Path = strings.TrimSuffix(u.Path, "/") + "/" + strings.TrimPrefix(ref.Path, "/")
	u.RawPath = ""
	u.RawQuery = ref.RawQuery
	return u.String(), nil
}

func (c *Client) applyAuth(req *http.Request) {
	if c.tokens == nil {
		return
	}
	token, err := c.tokens.Token()
	if err != nil {
		c.logger.Warn("reading auth token", zap.Error(err))
		return
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// buildTransport creates an http.Transport configured with proxy and TLS
// settings.
func buildTransport(proxyURL string, tlsOpts TLSOptions) (http.RoundTripper, error) {
	tlsConfig, err := tlsOpts.build()
	if err != nil {
		return nil, err
	}
	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		TLSClientConfig:     tlsConfig,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}
	if proxyURL == "" {
		return transport, nil
	}

	parsed, err := url.Parse(proxyURL)
	if err != nil {
		return nil, fmt.Errorf("parsing proxy URL: %w", err)
	}

	switch parsed.Scheme {
	case "socks5", "socks5h":
		var auth *proxy.Auth
		if parsed.User != nil {
			password, _ := parsed.User.Password()
			auth = &proxy.Auth{
				User:     parsed.User.Username(),
				Password: password,
			}
		}
		dialer, err := proxy.SOCKS5("tcp", parsed.Host, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("creating SOCKS5 dialer: %w", err)
		}
		transport.Proxy = nil
		transport.DialContext = func(ctx context.Context, network, addr string) (net.Conn, error) {
			if cd, ok := dialer.(proxy.ContextDialer); ok {
				return cd.DialContext(ctx, network, addr)
			}
			return dialer.Dial(network, addr)
		}
	case "http", "https":
		transport.Proxy = http.ProxyURL(parsed)
	default:
		return nil, fmt.Errorf("unsupported proxy scheme: %s", parsed.Scheme)
	}
	return transport, nil
}

func networkDetail(err error) string {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "request timed out"
	}
	if errors.Is(err, context.Canceled) {
		return "request canceled"
	}
	return err.Error()
}

func excerpt(body []byte) []byte {
	const n = 256
	if len(body) > n {
		return body[:n]
	}
	return body
}
