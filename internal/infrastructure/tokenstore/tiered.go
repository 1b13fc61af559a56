package tokenstore

import (
	"context"
	"errors"

	"github.com/greenhouse/console/internal/core/ports"
)

func rememberFrom(ctx context.Context, fallback bool) bool {
	if v, ok := ports.RememberFromContext(ctx); ok {
		return v
	}
	return fallback
}

// Tiered pairs session-only and persistent storage. Reads prefer the session
// copy; clearing wipes both so a logout never leaves a remembered token behind.
type Tiered struct {
	session         ports.TokenStore
	persistent      ports.TokenStore
	rememberDefault bool
}

func NewTiered(session, persistent ports.TokenStore, rememberDefault bool) *Tiered {
	return &Tiered{session: session, persistent: persistent, rememberDefault: rememberDefault}
}

func (t *Tiered) Token(ctx context.Context) (string, error) {
	tok, err := t.session.Token(ctx)
	if err != nil {
		return "", err
	}
	if tok != "" {
		return tok, nil
	}
	return t.persistent.Token(ctx)
}

func (t *Tiered) SetToken(ctx context.Context, token string) error {
	if rememberFrom(ctx, t.rememberDefault) {
		if err := t.session.ClearToken(ctx); err != nil {
			return err
		}
		return t.persistent.SetToken(ctx, token)
	}
	if err := t.persistent.ClearToken(ctx); err != nil {
		return err
	}
	return t.session.SetToken(ctx, token)
}

func (t *Tiered) ClearToken(ctx context.Context) error {
	return errors.Join(t.session.ClearToken(ctx), t.persistent.ClearToken(ctx))
}
