package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	httpinterceptor "github.com/healthsecure/medichain-service/pkg/http/interceptor"
	"github.com/healthsecure/medichain-service/pkg/option"
	"go.uber.org/ratelimit"
)

const defaultTimeout = 15 * time.Second

// Option wraps an apply method to bind optional arguments to the client.
type Option interface {
	apply(*Client)
}

type optionFunc func(*Client)

func (o optionFunc) apply(c *Client) {
	o(c)
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return optionFunc(func(c *Client) {
		c.httpClient = httpClient
	})
}

// WithTimeout overrides the per-request deadline of the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return optionFunc(func(c *Client) {
		c.httpClient.Timeout = timeout
	})
}

// WithRateLimit throttles outgoing requests to the given rate per second.
func WithRateLimit(perSecond int) Option {
	return optionFunc(func(c *Client) {
		transport := c.httpClient.Transport
		if transport == nil {
			transport = http.DefaultTransport
		}
		c.httpClient.Transport = httpinterceptor.NewRateLimiterTransport(
			option.WithHTTPInterceptorRateLimiterTransport(transport),
			option.WithHTTPInterceptorRateLimiterRateLimiter(ratelimit.New(perSecond, ratelimit.Per(time.Second))),
		)
	})
}

// Client is an authenticated API client. It injects the bearer token from its
// session store and transparently refreshes the session once when a request
// comes back 401.
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    SessionStore

	// refreshMu serializes refresh attempts so concurrent 401s trigger a
	// single token rotation.
	refreshMu sync.Mutex
}

// New creates a Client talking to baseURL, with session state held in the
// given store.
func New(baseURL string, session SessionStore, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
		session:    session,
	}
	for _, o := range options {
		o.apply(c)
	}
	return c
}

// Session exposes the injected session store.
func (c *Client) Session() SessionStore {
	return c.session
}

// fetchWithAuth performs an authenticated request. The body is a byte slice
// so the request can be replayed safely. On 401 it attempts exactly one
// refresh-and-retry; if the refresh fails the original 401 response is
// returned untouched. At most two requests ever hit the wire.
func (c *Client) fetchWithAuth(ctx context.Context, method, path string, body []byte, headers http.Header) (*http.Response, error) {
	res, err := c.do(ctx, method, path, body, headers, c.session.AccessToken())
	if err != nil {
		return nil, err
	}

	if res.StatusCode != http.StatusUnauthorized {
		return res, nil
	}

	// Without a refresh token there is nothing to recover with: the 401
	// goes back to the caller as received.
	if c.session.RefreshToken() == "" {
		return res, nil
	}

	if !c.RefreshAccessToken(ctx) {
		return res, nil
	}

	// The retry reads the token fresh from the store: the refresh has
	// rotated it since the first attempt. A transport failure on the retry
	// propagates; the session itself is still live.
	retry, err := c.do(ctx, method, path, body, headers, c.session.AccessToken())
	if err != nil {
		res.Body.Close()
		return nil, err
	}

	res.Body.Close()
	return retry, nil
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, headers http.Header, accessToken string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}

	for key, values := range headers {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	if body != nil && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	return c.httpClient.Do(req)
}

// RefreshAccessToken exchanges the stored refresh token for a new access
// token. It is fail-closed: any failure clears the whole session and the
// method reports false. When the server does not rotate the refresh token,
// the old one is retained.
func (c *Client) RefreshAccessToken(ctx context.Context) bool {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// A missing refresh token is a precondition violation, not a failed
	// exchange: report failure without a network call.
	refreshToken := c.session.RefreshToken()
	if refreshToken == "" {
		return false
	}

	payload, err := json.Marshal(map[string]string{"refresh": refreshToken})
	if err != nil {
		c.session.Clear()
		return false
	}

	res, err := c.do(ctx, http.MethodPost, "/auth/token/refresh/", payload, nil, "")
	if err != nil {
		c.session.Clear()
		return false
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		c.session.Clear()
		return false
	}

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err = json.NewDecoder(res.Body).Decode(&pair); err != nil || pair.Access == "" {
		c.session.Clear()
		return false
	}

	if pair.Refresh != "" {
		c.session.SetTokens(pair.Access, pair.Refresh)
	} else {
		c.session.SetAccessToken(pair.Access)
	}
	return true
}

// requestJSON marshals the payload, performs an authenticated request and
// decodes a 2xx response into out. Non-2xx responses are mapped onto the
// client error taxonomy.
func (c *Client) requestJSON(ctx context.Context, method, path string, payload, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return err
		}
	}

	res, err := c.fetchWithAuth(ctx, method, path, body, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if err = c.checkResponse(res); err != nil {
		return err
	}

	if out == nil || res.StatusCode == http.StatusNoContent {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}

// checkResponse converts a non-2xx response into an error. A 401 surviving
// fetchWithAuth means the refresh path failed and the session is gone.
func (c *Client) checkResponse(res *http.Response) error {
	if res.StatusCode >= 200 && res.StatusCode <= 299 {
		return nil
	}

	body, _ := io.ReadAll(res.Body)

	if res.StatusCode == http.StatusUnauthorized {
		return ErrSessionExpired
	}

	if res.StatusCode == http.StatusBadRequest {
		var fields map[string][]string
		if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
			return &ValidationError{Fields: fields}
		}
	}

	var message struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	_ = json.Unmarshal(body, &message)
	msg := message.Error
	if msg == "" {
		msg = message.Detail
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	return &APIError{StatusCode: res.StatusCode, Message: msg}
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	return c.requestJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	return c.requestJSON(ctx, http.MethodPost, path, payload, out)
}

func (c *Client) put(ctx context.Context, path string, payload, out any) error {
	return c.requestJSON(ctx, http.MethodPut, path, payload, out)
}

func (c *Client) patch(ctx context.Context, path string, payload, out any) error {
	return c.requestJSON(ctx, http.MethodPatch, path, payload, out)
}

func (c *Client) String() string {
	return fmt.Sprintf("client{baseURL: %s}", c.baseURL)
}
