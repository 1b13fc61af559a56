package greenhouseapi

import (
	"context"
	"net/http"

	"github.com/greenhouse/console/internal/core/ports"
)

// AuthAPI covers login, registration and the current-user endpoint.
type AuthAPI struct{ t *transport }

var _ ports.AuthAPI = (*AuthAPI)(nil)

func (a *AuthAPI) Login(ctx context.Context, req ports.LoginRequest) (*ports.AuthResponseDto, error) {
	var out ports.AuthResponseDto
	if err := a.t.exchange(ctx, http.MethodPost, "/api/auth/login", req.LoginDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *AuthAPI) Register(ctx context.Context, req ports.RegisterRequest) (*ports.AuthResponseDto, error) {
	var out ports.AuthResponseDto
	if err := a.t.exchange(ctx, http.MethodPost, "/api/auth/register", req.RegisterDto, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the account the bearer token belongs to.
func (a *AuthAPI) Me(ctx context.Context) (*ports.UserDto, error) {
	var out ports.UserDto
	if err := a.t.do(ctx, http.MethodGet, "/api/auth/me", nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
