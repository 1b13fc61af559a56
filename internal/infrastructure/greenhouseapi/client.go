// Package greenhouseapi is the typed REST client for the greenhouse backend.
//
// Each resource family has its own API type with one method per server
// operation. Requests carry JSON bodies, a bearer token when one is available
// and an X-Request-ID header. Non-2xx responses surface as *APIError and
// transport failures as *TransportError.
package greenhouseapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/greenhouse/console/internal/core/ports"
)

const (
	headerRequestID = "X-Request-ID"
	maxErrorBody    = 64 << 10
)

// Configuration is what a request needs to reach the backend.
type Configuration struct {
	BasePath string
	// AccessToken is evaluated on every request.
	AccessToken ports.TokenProvider
}

// ConfigurationSource yields the configuration for a single request.
type ConfigurationSource interface {
	Create(ctx context.Context) (Configuration, error)
}

// StaticConfiguration is a ConfigurationSource that never changes.
type StaticConfiguration Configuration

func (s StaticConfiguration) Create(context.Context) (Configuration, error) {
	return Configuration(s), nil
}

// APIClient bundles the per-family APIs over one transport.
type APIClient struct {
	Auth           *AuthAPI
	Plants         *PlantsAPI
	Seeds          *SeedsAPI
	Journal        *JournalAPI
	GrowthStages   *GrowthStagesAPI
	Clients        *ClientsAPI
	Employees      *EmployeesAPI
	Administrators *AdministratorsAPI
	Users          *UsersAPI

	t *transport
}

// NewAPIClient builds every family API. A nil httpClient means
// http.DefaultClient, which imposes no timeout of its own.
func NewAPIClient(src ConfigurationSource, httpClient *http.Client) *APIClient {
	t := newTransport(src, httpClient)
	return &APIClient{
		Auth:           &AuthAPI{t: t},
		Plants:         &PlantsAPI{t: t},
		Seeds:          &SeedsAPI{t: t},
		Journal:        &JournalAPI{t: t},
		GrowthStages:   &GrowthStagesAPI{t: t},
		Clients:        &ClientsAPI{t: t},
		Employees:      &EmployeesAPI{t: t},
		Administrators: &AdministratorsAPI{t: t},
		Users:          &UsersAPI{t: t},
		t:              t,
	}
}

// OnUnauthorized registers fn to run whenever the backend rejects a bearer
// token with 401. Login and registration are exempt: there a 401 means bad
// credentials, not a dead session. Call it before the client is shared.
func (c *APIClient) OnUnauthorized(fn func(ctx context.Context)) {
	c.t.onUnauthorized = fn
}

type transport struct {
	src  ConfigurationSource
	http *http.Client

	onUnauthorized func(ctx context.Context)
}

func newTransport(src ConfigurationSource, httpClient *http.Client) *transport {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &transport{src: src, http: httpClient}
}

// do sends one request. in is JSON-encoded when non-nil; out is decoded from
// a 2xx body when non-nil.
func (t *transport) do(ctx context.Context, method, path string, query url.Values, in, out any) error {
	return t.send(ctx, method, path, query, in, out, true)
}

// exchange is do for credential exchanges, which never report a 401 to the
// unauthorized hook.
func (t *transport) exchange(ctx context.Context, method, path string, in, out any) error {
	return t.send(ctx, method, path, nil, in, out, false)
}

func (t *transport) send(ctx context.Context, method, path string, query url.Values, in, out any, guarded bool) error {
	cfg, err := t.src.Create(ctx)
	if err != nil {
		return fmt.Errorf("api configuration: %w", err)
	}

	endpoint := strings.TrimRight(cfg.BasePath, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set(headerRequestID, uuid.NewString())

	bearer := false
	if cfg.AccessToken != nil {
		token, err := cfg.AccessToken.Token(ctx)
		if err != nil {
			return fmt.Errorf("read access token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
			bearer = true
		}
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return &TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if resp.StatusCode == http.StatusUnauthorized && guarded && bearer && t.onUnauthorized != nil {
			t.onUnauthorized(ctx)
		}
		return newAPIError(resp.StatusCode, raw)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

// setString adds key=v to q when v is non-nil.
func setString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

func setInt(q url.Values, key string, v *int32) {
	if v != nil {
		q.Set(key, fmt.Sprintf("%d", *v))
	}
}

func itemPath(base, id string) string {
	return base + "/" + url.PathEscape(id)
}
