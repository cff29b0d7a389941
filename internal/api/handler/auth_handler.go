package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/api/metrics"
	"github.com/autohaus/dealership/internal/core/auth"
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

// CookieOptions controls the session cookie attributes.
type CookieOptions struct {
	Secure bool
}

// AuthHandler serves the session endpoints of one role.
type AuthHandler struct {
	authService ports.AuthService
	role        domain.Role
	cookies     CookieOptions
	now         func() time.Time
}

func NewAuthHandler(authService ports.AuthService, role domain.Role, cookies CookieOptions) *AuthHandler {
	return &AuthHandler{authService: authService, role: role, cookies: cookies, now: time.Now}
}

// Signup creates a storefront account and starts a session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	if _, err := h.authService.Signup(ctx, h.role, ports.SignupInput{Email: req.Email, Name: req.Name, Password: req.Password}); err != nil {
		return err
	}
	metrics.AccountsCreatedTotal.WithLabelValues(string(h.role)).Inc()

	session, err := h.authService.Login(ctx, h.role, req.Email, req.Password)
	if err != nil {
		return err
	}
	h.setSession(c, session)
	return c.JSON(http.StatusCreated, userEnvelope{User: toAccountResponse(session.Account)})
}

// Login verifies credentials and sets the session cookie.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  userEnvelope
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Failure      429   {object}  errorBody
// @Router       /api/auth/login [post]
// @Router       /api/admin/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	session, err := h.authService.Login(c.Request().Context(), h.role, req.Email, req.Password)
	if err != nil {
		result := "error"
		if errors.Is(err, domain.ErrInvalidCredentials) {
			result = "invalid_credentials"
		}
		metrics.LoginAttemptsTotal.WithLabelValues(string(h.role), result).Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues(string(h.role), "success").Inc()

	h.setSession(c, session)
	return c.JSON(http.StatusOK, userEnvelope{User: toAccountResponse(session.Account)})
}

// Logout clears the session cookie. It succeeds without a session.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
// @Router       /api/admin/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(h.cookie("", time.Unix(0, 0), -1))
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out"})
}

// Me returns the account behind the current session.
//
// @Summary      Current account
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userEnvelope
// @Failure      401  {object}  errorBody
// @Router       /api/auth/me [get]
// @Router       /api/admin/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	who, err := currentIdentity(c)
	if err != nil {
		return err
	}
	account, err := h.authService.Me(c.Request().Context(), who)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return domain.ErrUnauthenticated
		}
		return err
	}
	return c.JSON(http.StatusOK, userEnvelope{User: toAccountResponse(account)})
}

// ChangePassword replaces the password of the current account.
//
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      changePasswordRequest  true  "Current and new password"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorBody
// @Failure      401   {object}  errorBody
// @Router       /api/auth/password [put]
// @Router       /api/admin/auth/password [put]
func (h *AuthHandler) ChangePassword(c echo.Context) error {
	who, err := currentIdentity(c)
	if err != nil {
		return err
	}
	var req changePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.authService.ChangePassword(c.Request().Context(), who, req.CurrentPassword, req.NewPassword); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "password updated"})
}

func (h *AuthHandler) setSession(c echo.Context, s *ports.Session) {
	maxAge := int(s.ExpiresAt.Sub(h.now()).Seconds())
	c.SetCookie(h.cookie(s.Token, s.ExpiresAt, maxAge))
}

func (h *AuthHandler) cookie(value string, expires time.Time, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     auth.CookieName(h.role),
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
