package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

type UserService struct {
	users ports.UsersAPI
	auth  ports.AuthAPI
	c     caller
}

func NewUserService(users ports.UsersAPI, auth ports.AuthAPI, logger zerolog.Logger) *UserService {
	return &UserService{users: users, auth: auth, c: newCaller("user", logger)}
}

func (s *UserService) ListUsers(ctx context.Context, role *string) ([]domain.AuthUser, error) {
	return call(ctx, s.c, "ListUsers", "Failed to fetch the user list", func(ctx context.Context) ([]domain.AuthUser, error) {
		dtos, err := s.users.ListUsers(ctx, ports.UsersListParams{Role: role})
		if err != nil {
			return nil, err
		}
		return mapAll(dtos, toAuthUser), nil
	})
}

// CurrentUser calls the whoami endpoint. It does not evict the session on a
// 401; SessionController.CurrentUser does.
func (s *UserService) CurrentUser(ctx context.Context) (*domain.AuthUser, error) {
	return call(ctx, s.c, "CurrentUser", "Failed to fetch the current user", func(ctx context.Context) (*domain.AuthUser, error) {
		dto, err := s.auth.Me(ctx)
		if err != nil {
			return nil, err
		}
		u := toAuthUser(*dto)
		return &u, nil
	})
}

// DeleteUser is not supported by the backend and always fails with
// domain.ErrNotImplemented.
func (s *UserService) DeleteUser(_ context.Context, id string) error {
	s.c.log.Error().Str("op", "DeleteUser").Str("id", id).Msg("user deletion is not implemented")
	return domain.ErrNotImplemented
}
