package bark

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"barkgo/pkg/logx"
)

// DefaultServerURL is the public Bark endpoint.
const DefaultServerURL = "https://api.day.app"

// defaultTimeout bounds each call end-to-end when no custom HTTP client
// is supplied.
const defaultTimeout = 10 * time.Second

// Client sends notifications to a single registered device.
// It holds no mutable state after New returns.
type Client struct {
	key        string
	serverURL  string
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	log        logx.Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithServerURL points the client at a self-hosted Bark server.
func WithServerURL(serverURL string) Option {
	return func(c *Client) { c.serverURL = serverURL }
}

// WithHTTPClient replaces the underlying HTTP client entirely.
// The caller is then responsible for any timeout on it.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

// WithTimeout overrides the default per-call timeout.
// Ignored when WithHTTPClient is also used.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithLogger installs a logger for debug-level request/response traces.
// The device key never appears in log output.
func WithLogger(log logx.Logger) Option {
	return func(c *Client) { c.log = log }
}

// New creates a client for the device identified by key.
func New(key string, opts ...Option) (*Client, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}

	c := &Client{
		key:       key,
		serverURL: DefaultServerURL,
		timeout:   defaultTimeout,
		log:       logx.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.serverURL == "" {
		c.serverURL = DefaultServerURL
	}
	c.serverURL = strings.TrimRight(c.serverURL, "/")
	c.baseURL = c.serverURL + "/" + c.key

	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: c.timeout}
	}
	return c, nil
}

// ServerURL returns the server the client was built against.
func (c *Client) ServerURL() string { return c.serverURL }

// Send pushes n as a path-encoded GET request:
// /{key}[/{title}[/{subtitle}]]/{body} with the remaining options as
// query parameters.
func (c *Client) Send(ctx context.Context, n Notification) (Response, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}

	endpoint := c.endpoint(n)
	if q := n.queryParams(); len(q) > 0 {
		endpoint += "?" + q.Encode()
	}
	return c.do(ctx, http.MethodGet, endpoint, nil)
}

// SendPost pushes n as a JSON POST body to /{key}. Booleans stay
// booleans on this path; the server accepts both forms.
func (c *Client) SendPost(ctx context.Context, n Notification) (Response, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return nil, &ValidationError{Reason: fmt.Sprintf("encode notification: %v", err)}
	}
	return c.do(ctx, http.MethodPost, c.baseURL, payload)
}

func (c *Client) do(ctx context.Context, method, endpoint string, payload []byte) (Response, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		// Only a malformed URL gets here; that is caller input, not transport.
		return nil, &ValidationError{Reason: fmt.Sprintf("build request: %v", err)}
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	c.log.Debug("bark request",
		logx.String("method", method),
		logx.String("url", redactKey(endpoint, c.key)),
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Debug("bark transport failure", logx.Err(err), logx.Duration("elapsed", time.Since(start)))
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	parsed, err := decodeResponse(resp)
	c.log.Debug("bark response",
		logx.Int("status", resp.StatusCode),
		logx.Duration("elapsed", time.Since(start)),
		logx.Err(err),
	)
	return parsed, err
}

// endpoint builds the path-encoded GET target. PathEscape keeps literal
// slashes inside segments from being read as separators.
func (c *Client) endpoint(n Notification) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	for _, seg := range n.pathSegments() {
		b.WriteString("/")
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}

func redactKey(endpoint, key string) string {
	return strings.Replace(endpoint, "/"+key, "/<key>", 1)
}
