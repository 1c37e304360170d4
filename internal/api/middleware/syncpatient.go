package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// SyncPatient lazily provisions the clinical patient record for
// standard-role callers on their first protected access. Clinician-admins
// are never auto-converted into patients. A sync failure is logged and the
// request proceeds without a patient record; EnsureSynced itself is
// idempotent, so repeat invocations are no-ops.
func SyncPatient(patients ports.PatientService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			accountID, _ := c.Get("account_id").(string)

			if role == domain.RoleStandard && accountID != "" {
				if err := patients.EnsureSynced(c.Request().Context(), accountID); err != nil {
					log.Warn().Err(err).Str("account_id", accountID).Msg("patient sync failed")
				}
			}

			return next(c)
		}
	}
}
