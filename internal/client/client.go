// Package client implements the RecipeNest API client and the typed
// resource repositories (auth, recipes, favorites) layered on top of it.
// Responses flow back untransformed; the client never caches or retries.
package client

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/recipenest/client-go/internal/apierror"
	"github.com/recipenest/client-go/internal/session"
	"github.com/recipenest/client-go/internal/types"
)

// maxResponseBytes bounds how much of a response body is read. Recipe
// images travel inline as data URIs, so payloads can be large but not
// unbounded.
const maxResponseBytes = 16 << 20

// Client wraps outbound HTTP calls to the RecipeNest API: it joins paths
// onto the configured base URL, attaches the bearer token for
// authenticated calls and normalizes every failure into the apierror
// taxonomy.
type Client struct {
	base     *url.URL
	http     *http.Client
	sessions session.Store
	logger   *zap.Logger

	Auth      *AuthService
	Recipes   *RecipeService
	Favorites *FavoriteService
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithLogger attaches a structured logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a client for the API at baseURL. The session store is
// consulted on every authenticated call; sessions written by Register and
// Login land in the same store.
func New(baseURL string, store session.Store, opts ...Option) (*Client, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: unsupported scheme", baseURL)
	}

	c := &Client{
		base:     base,
		http:     &http.Client{Timeout: 15 * time.Second},
		sessions: store,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{client: c}
	c.Recipes = &RecipeService{client: c}
	c.Favorites = &FavoriteService{client: c}
	return c, nil
}

// errorBody is the structured error payload the server returns. FastAPI
// style uses "detail"; gin style uses "error". Both are accepted.
type errorBody struct {
	Detail string `json:"detail"`
	Error  string `json:"error"`
}

// do performs one API call. body is JSON-encoded when non-nil; the
// response is decoded into out when non-nil. With requiresAuth set, the
// call fails fast with ErrAuthRequired when no usable session is stored,
// without touching the network.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, requiresAuth bool) error {
	var token string
	if requiresAuth {
		sess, err := c.sessions.Load()
		if err != nil {
			if errors.Is(err, session.ErrNoSession) {
				return apierror.ErrAuthRequired
			}
			return err
		}
		if tokenExpired(sess.Token) {
			return fmt.Errorf("stored token expired: %w", apierror.ErrAuthRequired)
		}
		token = sess.Token
	}

	target := c.base.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &apierror.NetworkError{Op: method + " " + path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return &apierror.NetworkError{Op: method + " " + path, Err: err}
	}

	c.logger.Debug("api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode >= 400 {
		if resp.StatusCode == http.StatusNotFound {
			return apierror.ErrNotFound
		}
		return &apierror.RemoteError{
			Status:  resp.StatusCode,
			Message: remoteMessage(data, resp.StatusCode),
		}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return &apierror.SchemaError{Path: path, Err: err}
		}
	}
	return nil
}

// remoteMessage extracts the server's structured error field, falling back
// to a generic description when the body carries none.
func remoteMessage(data []byte, status int) string {
	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Detail != "" {
			return body.Detail
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return http.StatusText(status)
}

// tokenExpired reports whether tok is a JWT whose expiry has passed. The
// signature is not verified here; the server remains the authority. Tokens
// that do not parse are left for the server to reject.
func tokenExpired(tok string) bool {
	var claims types.TokenClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tok, &claims); err != nil {
		return false
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}

// ImageDataURI encodes raw image bytes as a data URI suitable for the
// recipe image field.
func ImageDataURI(mimeType string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(data))
}
