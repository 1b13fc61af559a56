package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
	"github.com/greenhouse/console/internal/pkg/metrics"
)

// claim names the backend may use for the username and role.
var (
	usernameClaims = []string{"username", "unique_name", "name", "sub"}
	roleClaims     = []string{"role", "http://schemas.microsoft.com/ws/2008/06/identity/claims/role"}
)

// SessionController drives login, registration and logout on top of the
// token store. It owns the Anonymous → Authenticating → Authenticated state
// machine and notifies observers of every transition; navigation is left to
// those observers.
type SessionController struct {
	auth     ports.AuthAPI
	tokens   ports.TokenStore
	validate *validator.Validate
	log      zerolog.Logger

	mu          sync.Mutex
	state       domain.SessionState
	observers   []func(domain.SessionTransition)
	logoutHooks []func()
}

// NewSessionController starts Authenticated when a token is already stored,
// Anonymous otherwise.
func NewSessionController(auth ports.AuthAPI, tokens ports.TokenStore, logger zerolog.Logger) *SessionController {
	s := &SessionController{
		auth:     auth,
		tokens:   tokens,
		validate: validator.New(),
		log:      logger.With().Str("component", "session").Logger(),
		state:    domain.SessionAnonymous,
	}
	if s.IsAuthenticated(context.Background()) {
		s.state = domain.SessionAuthenticated
	}
	return s
}

// Subscribe registers an observer for state transitions.
func (s *SessionController) Subscribe(fn func(domain.SessionTransition)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// OnLogout registers a hook run on every logout, e.g. cache invalidation.
func (s *SessionController) OnLogout(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutHooks = append(s.logoutHooks, fn)
}

// State is the current state. Outside a login in flight it agrees with
// IsAuthenticated.
func (s *SessionController) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SessionController) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: identifier and password are required", domain.ErrInvalidInput)
	}

	s.transition(domain.SessionAuthenticating, domain.RoleUnknown)
	s.log.Debug().Str("identifier", in.Identifier).Msg("logging in")

	resp, err := s.auth.Login(ctx, ports.LoginRequest{LoginDto: ports.LoginDto{Login: in.Identifier, Password: in.Password}})
	if err != nil {
		s.settle(ctx)
		err = loginError(err)
		s.log.Error().Err(err).Msg("login failed")
		return nil, err
	}
	return s.establish(ctx, resp, in.Identifier, in.Remember)
}

func (s *SessionController) Register(ctx context.Context, in ports.RegisterInput) (*ports.LoginResult, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	s.transition(domain.SessionAuthenticating, domain.RoleUnknown)
	s.log.Debug().Str("username", in.Username).Msg("registering")

	dto := ports.RegisterDto{Username: in.Username, Email: in.Email, Password: in.Password}
	if in.FullName != "" {
		dto.FullName = &in.FullName
	}
	if in.Role != domain.RoleUnknown {
		role := in.Role
		dto.Role = &role
	}

	resp, err := s.auth.Register(ctx, ports.RegisterRequest{RegisterDto: dto})
	if err != nil {
		s.settle(ctx)
		err = registerError(err)
		s.log.Error().Err(err).Msg("registration failed")
		return nil, err
	}
	return s.establish(ctx, resp, in.Username, in.Remember)
}

// establish persists the token and completes the transition to Authenticated.
func (s *SessionController) establish(ctx context.Context, resp *ports.AuthResponseDto, fallbackName string, remember bool) (*ports.LoginResult, error) {
	if resp == nil || resp.Token == "" {
		s.settle(ctx)
		return nil, &Failure{Op: "Login", Message: "server returned no token"}
	}

	if err := s.tokens.SetToken(ports.WithRemember(ctx, remember), resp.Token); err != nil {
		s.settle(ctx)
		s.log.Error().Err(err).Msg("failed to persist token")
		return nil, fmt.Errorf("persist token: %w", err)
	}

	username, role := decodeToken(resp.Token)
	if username == "" {
		username = deref(resp.Username)
	}
	if username == "" {
		username = fallbackName
	}
	if role == domain.RoleUnknown && resp.Role != nil {
		role = *resp.Role
	}

	s.transition(domain.SessionAuthenticated, role)
	s.log.Info().Str("username", username).Str("role", role.String()).Msg("session established")

	return &ports.LoginResult{Username: username, Token: resp.Token, Role: role}, nil
}

// Logout clears the stored token, runs logout hooks and moves to Anonymous.
// The transition happens even when clearing storage fails.
func (s *SessionController) Logout(ctx context.Context) error {
	err := s.tokens.ClearToken(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to clear token")
	}

	s.mu.Lock()
	hooks := append([]func(){}, s.logoutHooks...)
	s.mu.Unlock()
	for _, h := range hooks {
		h()
	}

	s.transition(domain.SessionAnonymous, domain.RoleUnknown)
	s.log.Info().Msg("logged out")
	return err
}

// IsAuthenticated reports whether a non-empty token is stored. It does not
// validate the token.
func (s *SessionController) IsAuthenticated(ctx context.Context) bool {
	tok, err := s.tokens.Token(ctx)
	return err == nil && tok != ""
}

// Evict ends a session the server no longer accepts. It is a no-op when no
// token is stored, so repeated 401s log out once.
func (s *SessionController) Evict(ctx context.Context) {
	if !s.IsAuthenticated(ctx) {
		return
	}
	s.log.Warn().Msg("token rejected by server, evicting session")
	metrics.SessionEvictionsTotal.Inc()
	_ = s.Logout(ctx)
}

// CurrentUser asks the server who the token belongs to. A 401 evicts the
// session before the error is returned.
func (s *SessionController) CurrentUser(ctx context.Context) (*domain.AuthUser, error) {
	dto, err := s.auth.Me(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			s.Evict(ctx)
		}
		return nil, err
	}
	u := toAuthUser(*dto)
	return &u, nil
}

// Role decodes the role from the stored token.
func (s *SessionController) Role(ctx context.Context) domain.Role {
	tok, err := s.tokens.Token(ctx)
	if err != nil || tok == "" {
		return domain.RoleUnknown
	}
	_, role := decodeToken(tok)
	return role
}

// settle ends a failed attempt in the state the stored token supports: a
// token kept from an earlier login stays Authenticated, otherwise Anonymous.
func (s *SessionController) settle(ctx context.Context) {
	if s.IsAuthenticated(ctx) {
		s.transition(domain.SessionAuthenticated, s.Role(ctx))
		return
	}
	s.transition(domain.SessionAnonymous, domain.RoleUnknown)
}

func (s *SessionController) transition(to domain.SessionState, role domain.Role) {
	s.mu.Lock()
	from := s.state
	s.state = to
	observers := append([]func(domain.SessionTransition){}, s.observers...)
	s.mu.Unlock()

	metrics.SessionTransitionsTotal.WithLabelValues(string(to)).Inc()
	t := domain.SessionTransition{From: from, To: to, Role: role}
	for _, fn := range observers {
		fn(t)
	}
}

// decodeToken reads the username and role claims without verifying the
// signature; the server remains the authority on validity.
func decodeToken(token string) (string, domain.Role) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", domain.RoleUnknown
	}

	var username string
	for _, k := range usernameClaims {
		if v, ok := claims[k].(string); ok && v != "" {
			username = v
			break
		}
	}

	role := domain.RoleUnknown
	for _, k := range roleClaims {
		switch v := claims[k].(type) {
		case string:
			role = domain.ParseRole(v)
		case float64:
			role = domain.RoleFromCode(int(v))
		}
		if role != domain.RoleUnknown {
			break
		}
	}
	return username, role
}

func loginError(err error) error {
	if errors.Is(err, domain.ErrServerUnreachable) {
		return domain.ErrServerUnreachable
	}
	var se serverError
	if errors.As(err, &se) {
		switch se.HTTPStatus() {
		case http.StatusBadRequest, http.StatusUnauthorized, http.StatusNotFound:
			return domain.ErrInvalidCredentials
		}
	}
	return normalize("Login", "Login failed, please try again", err)
}

func registerError(err error) error {
	if errors.Is(err, domain.ErrServerUnreachable) {
		return domain.ErrServerUnreachable
	}
	return normalize("Register", "Registration failed, please try again", err)
}
