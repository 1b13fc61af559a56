package ports

import "context"

// TokenProvider yields the bearer token to attach to an outgoing request.
// An empty string means the request goes out unauthenticated.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenProviderFunc adapts a plain function to TokenProvider.
type TokenProviderFunc func(ctx context.Context) (string, error)

func (f TokenProviderFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// TokenStore persists the bearer token between requests.
type TokenStore interface {
	TokenProvider
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}

type rememberKey struct{}

// WithRemember marks ctx so that a remember-aware TokenStore writes to
// persistent storage (true) or session-only storage (false).
func WithRemember(ctx context.Context, remember bool) context.Context {
	return context.WithValue(ctx, rememberKey{}, remember)
}

// RememberFromContext reports the flag set by WithRemember, if any.
func RememberFromContext(ctx context.Context) (remember, ok bool) {
	remember, ok = ctx.Value(rememberKey{}).(bool)
	return remember, ok
}
