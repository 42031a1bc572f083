package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rmsplatform/rms/internal/client/authstore"
	"github.com/rmsplatform/rms/internal/client/branding"
	"github.com/rmsplatform/rms/internal/common"
)

const (
	brandingPath = "/api/v1/cms/public/branding"
	registerPath = "/api/v1/auth/register"
	loginPath    = "/api/v1/auth/login"
	profilePath  = "/api/v1/users/me"
	healthPath   = "/healthz"
)

// HTTPClient is the concrete Client over net/http.
type HTTPClient struct {
	baseURL string
	http    *http.Client
}

// authTransport signs every outbound request with the current bearer token.
// The token source is consulted per request, so a login or logout in the
// same process takes effect immediately.
type authTransport struct {
	tokens TokenSource
	next   http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.tokens.Token(req.Context()); token != "" {
		req = req.Clone(req.Context())
		req.Header.Set(common.AuthHeaderName, common.BearerScheme+" "+token)
	}
	return t.next.RoundTrip(req)
}

func NewHTTPClient(baseURL string, tokens TokenSource) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout:   15 * time.Second,
			Transport: &authTransport{tokens: tokens, next: http.DefaultTransport},
		},
	}
}

func (c *HTTPClient) do(ctx context.Context, method, path string, body any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.mapTransportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.mapStatusError(resp.StatusCode)
	}
	return raw, nil
}

func (c *HTTPClient) mapTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	// url.Error wraps connection refusals and DNS failures.
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func (c *HTTPClient) mapStatusError(status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrUnauthorized
	case status >= 500:
		return ErrUnavailable
	default:
		return fmt.Errorf("%w: status %d", ErrBadResponse, status)
	}
}

// FetchBranding gets the public branding document. The response may be a
// bare record or a {"data": ...} envelope; both are handled by the explicit
// decoder, and anything else is a detectable ErrBadResponse.
func (c *HTTPClient) FetchBranding(ctx context.Context) (branding.Record, error) {
	raw, err := c.do(ctx, http.MethodGet, brandingPath, nil)
	if err != nil {
		return branding.Record{}, err
	}

	rec, err := branding.DecodeRecord(raw)
	if err != nil {
		return branding.Record{}, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	return rec, nil
}

func (c *HTTPClient) Register(ctx context.Context, firstName, lastName, email string, password []byte) error {
	body := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  string(password),
	}
	_, err := c.do(ctx, http.MethodPost, registerPath, body)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, email string, password []byte) (*LoginResult, error) {
	body := map[string]string{"email": email, "password": string(password)}

	raw, err := c.do(ctx, http.MethodPost, loginPath, body)
	if err != nil {
		return nil, err
	}

	var env struct {
		Data *LoginResult `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return nil, fmt.Errorf("%w: login payload", ErrBadResponse)
	}
	if env.Data.Token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrBadResponse)
	}
	return env.Data, nil
}

func (c *HTTPClient) Profile(ctx context.Context) (*authstore.User, error) {
	raw, err := c.do(ctx, http.MethodGet, profilePath, nil)
	if err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, patch authstore.UserPatch) (*authstore.User, error) {
	body := map[string]any{}
	setIf := func(key string, v *string) {
		if v != nil {
			body[key] = *v
		}
	}
	setIf("firstName", patch.FirstName)
	setIf("lastName", patch.LastName)
	setIf("email", patch.Email)
	setIf("avatar", patch.Avatar)

	raw, err := c.do(ctx, http.MethodPatch, profilePath, body)
	if err != nil {
		return nil, err
	}
	return decodeUser(raw)
}

func decodeUser(raw []byte) (*authstore.User, error) {
	var env struct {
		Data *authstore.User `json:"data"`
	}
	if err := json.Unmarshal(raw, &env); err != nil || env.Data == nil {
		return nil, fmt.Errorf("%w: user payload", ErrBadResponse)
	}
	return env.Data, nil
}

func (c *HTTPClient) Ping(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, healthPath, nil)
	return err
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
