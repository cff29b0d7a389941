package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/autohaus/dealership/internal/api/metrics"
	"github.com/autohaus/dealership/internal/core/domain"
	"github.com/autohaus/dealership/internal/core/ports"
)

// AccountHandler lets admins manage users and other admins.
type AccountHandler struct {
	authService ports.AuthService
}

func NewAccountHandler(authService ports.AuthService) *AccountHandler {
	return &AccountHandler{authService: authService}
}

type accountList struct {
	Accounts []accountResponse `json:"accounts"`
}

// ListUsers
//
// @Summary      List storefront users
// @Tags         admin-accounts
// @Produce      json
// @Success      200  {object}  accountList
// @Router       /api/admin/users [get]
func (h *AccountHandler) ListUsers(c echo.Context) error {
	return h.list(c, domain.RoleUser)
}

// ListAdmins
//
// @Summary      List admins
// @Tags         admin-accounts
// @Produce      json
// @Success      200  {object}  accountList
// @Router       /api/admin/admins [get]
func (h *AccountHandler) ListAdmins(c echo.Context) error {
	return h.list(c, domain.RoleAdmin)
}

// CreateAdmin registers another back-office account.
//
// @Summary      Create admin
// @Tags         admin-accounts
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Admin details"
// @Success      201   {object}  userEnvelope
// @Failure      400   {object}  errorBody
// @Failure      409   {object}  errorBody
// @Router       /api/admin/admins [post]
func (h *AccountHandler) CreateAdmin(c echo.Context) error {
	var req signupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	account, err := h.authService.Signup(c.Request().Context(), domain.RoleAdmin, ports.SignupInput{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	metrics.AccountsCreatedTotal.WithLabelValues(string(domain.RoleAdmin)).Inc()
	return c.JSON(http.StatusCreated, userEnvelope{User: toAccountResponse(account)})
}

// DeleteUser
//
// @Summary      Delete user
// @Tags         admin-accounts
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorBody
// @Router       /api/admin/users/{id} [delete]
func (h *AccountHandler) DeleteUser(c echo.Context) error {
	if err := h.authService.DeleteAccount(c.Request().Context(), domain.RoleUser, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteAdmin removes an admin; their sessions stop resolving immediately.
//
// @Summary      Delete admin
// @Tags         admin-accounts
// @Param        id   path  string  true  "Admin id"
// @Success      204
// @Failure      400  {object}  errorBody
// @Failure      404  {object}  errorBody
// @Router       /api/admin/admins/{id} [delete]
func (h *AccountHandler) DeleteAdmin(c echo.Context) error {
	who, err := currentIdentity(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if id == who.ID {
		return domain.Validation("admins cannot delete their own account")
	}
	if err := h.authService.DeleteAccount(c.Request().Context(), domain.RoleAdmin, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *AccountHandler) list(c echo.Context, role domain.Role) error {
	accounts, err := h.authService.ListAccounts(c.Request().Context(), role)
	if err != nil {
		return err
	}
	out := make([]accountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = toAccountResponse(a)
	}
	return c.JSON(http.StatusOK, accountList{Accounts: out})
}
