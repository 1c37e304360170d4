package ports

import (
	"context"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// AuthService implements registration and login. Registration always creates
// a standard-role account; promotion to clinician-admin is a separate,
// admin-only operation.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.Account, error)
	Login(ctx context.Context, username, password string) (string, *domain.Account, error)
}
