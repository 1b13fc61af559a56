// Package apiconfig builds the per-request configuration consumed by the
// greenhouse API client.
package apiconfig

import (
	"context"
	"fmt"
	"strings"

	"github.com/sethvargo/go-envconfig"

	"github.com/greenhouse/console/internal/core/ports"
	"github.com/greenhouse/console/internal/infrastructure/greenhouseapi"
)

// DefaultBaseURL is used when neither environment variable is set.
const DefaultBaseURL = "http://localhost:5097"

type baseURLEnv struct {
	Primary  string `env:"GREENHOUSE_API_URL"`
	Fallback string `env:"API_BASE_URL"`
}

// Factory resolves the base URL and token provider on every Create call.
type Factory struct {
	lookuper envconfig.Lookuper
	tokens   ports.TokenProvider
}

// NewFactory returns a Factory reading the process environment. tokens is the
// token getter strategy, normally the token store.
func NewFactory(tokens ports.TokenProvider) *Factory {
	return NewFactoryWithLookuper(envconfig.OsLookuper(), tokens)
}

// NewFactoryWithLookuper lets tests and alternate deployments supply the
// environment source.
func NewFactoryWithLookuper(l envconfig.Lookuper, tokens ports.TokenProvider) *Factory {
	return &Factory{lookuper: l, tokens: tokens}
}

// Create satisfies greenhouseapi.ConfigurationSource.
func (f *Factory) Create(ctx context.Context) (greenhouseapi.Configuration, error) {
	base, err := f.BaseURL(ctx)
	if err != nil {
		return greenhouseapi.Configuration{}, err
	}
	return greenhouseapi.Configuration{BasePath: base, AccessToken: f.tokens}, nil
}

// BaseURL returns GREENHOUSE_API_URL, else API_BASE_URL, else DefaultBaseURL.
func (f *Factory) BaseURL(ctx context.Context) (string, error) {
	var env baseURLEnv
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &env, Lookuper: f.lookuper}); err != nil {
		return "", fmt.Errorf("resolve api base url: %w", err)
	}
	for _, candidate := range []string{env.Primary, env.Fallback} {
		if v := strings.TrimSpace(candidate); v != "" {
			return v, nil
		}
	}
	return DefaultBaseURL, nil
}
