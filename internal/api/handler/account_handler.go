package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// AccountHandler exposes the identity directory and role management.
type AccountHandler struct {
	service ports.AccountService
}

func NewAccountHandler(service ports.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// Me returns the caller's own account.
//
// @Summary      Get the caller's account
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  accountResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/accounts/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	account, err := h.service.Get(c.Request().Context(), accountID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}

// List returns every account, credentials omitted. Admin only.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  accountResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, toAccountResponse(a))
	}
	return c.JSON(http.StatusOK, out)
}

// ListClinicians returns the id and display name of every clinician-admin.
// Feeds the booking form's clinician selector.
//
// @Summary      List clinicians
// @Tags         accounts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  clinicianResponse
// @Router       /v1/clinicians [get]
func (h *AccountHandler) ListClinicians(c echo.Context) error {
	clinicians, err := h.service.ListClinicians(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]clinicianResponse, 0, len(clinicians))
	for _, cl := range clinicians {
		out = append(out, clinicianResponse{ID: cl.ID, Username: cl.Username})
	}
	return c.JSON(http.StatusOK, out)
}

// UpdateRole promotes or demotes an account. Admin only; an admin cannot
// change their own role.
//
// @Summary      Update an account's role
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Account id"
// @Param        body  body      updateRoleRequest  true  "New role"
// @Success      200   {object}  accountResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/accounts/{id}/role [put]
func (h *AccountHandler) UpdateRole(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	account, err := h.service.UpdateRole(c.Request().Context(), accountID, c.Param("id"), req.Role)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAccountResponse(account))
}
