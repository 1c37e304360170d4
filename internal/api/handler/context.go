package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the identity claims injected by the Auth middleware and
// fast-fails before any service call: both values must be present, their
// absence means the middleware did not run or the token was malformed.
func ctxClaims(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get("account_id").(string)
	role, _ = c.Get("role").(string)
	if accountID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, role, nil
}
