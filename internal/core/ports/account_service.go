package ports

import (
	"context"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// AccountService exposes the identity directory and role management.
type AccountService interface {
	Get(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context) ([]*domain.Account, error)
	ListClinicians(ctx context.Context) ([]*domain.Clinician, error)
	// UpdateRole promotes or demotes an account. callerID guards against
	// an admin changing their own role.
	UpdateRole(ctx context.Context, callerID, targetID, role string) (*domain.Account, error)
}
