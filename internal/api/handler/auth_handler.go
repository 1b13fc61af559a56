package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/greenhouse/console/internal/core/domain"
	"github.com/greenhouse/console/internal/core/ports"
)

type AuthHandler struct {
	session ports.SessionController
	nav     *Navigator
}

func NewAuthHandler(session ports.SessionController, nav *Navigator) *AuthHandler {
	return &AuthHandler{session: session, nav: nav}
}

type authResponse struct {
	Username string      `json:"username,omitempty"`
	Role     domain.Role `json:"role"`
	Redirect string      `json:"redirect"`
}

// Register creates an account on the backend and signs the console in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.RegisterInput  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req ports.RegisterInput
	if err := bindValid(c, &req); err != nil {
		return err
	}

	res, err := h.session.Register(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, authResponse{Username: res.Username, Role: res.Role, Redirect: h.nav.Target()})
}

// Login signs the console in and stores the bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      ports.LoginInput  true  "Credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req ports.LoginInput
	if err := bindValid(c, &req); err != nil {
		return err
	}

	res, err := h.session.Login(c.Request().Context(), req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Username: res.Username, Role: res.Role, Redirect: h.nav.Target()})
}

// Logout drops the stored token. Storage failures are reported but the
// session still ends.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, authResponse{Redirect: h.nav.Target()})
}

// Me returns the account behind the stored token.
func (h *AuthHandler) Me(c echo.Context) error {
	user, err := h.session.CurrentUser(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Home redirects to the role home page, or to the login page without a session.
func (h *AuthHandler) Home(c echo.Context) error {
	ctx := c.Request().Context()
	if !h.session.IsAuthenticated(ctx) {
		return c.Redirect(http.StatusSeeOther, domain.LoginPath)
	}
	return c.Redirect(http.StatusSeeOther, h.session.Role(ctx).HomePath())
}
