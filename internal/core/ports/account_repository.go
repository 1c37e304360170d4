package ports

import (
	"context"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// AccountRepository defines persistence for authentication accounts. The
// read side doubles as the identity directory consumed by the scheduling
// and sync services.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	// List returns every account. Credential hashes stay out of JSON via
	// the domain struct tags; callers need no extra stripping.
	List(ctx context.Context) ([]*domain.Account, error)
	// ListClinicians returns the id and display name of every admin account.
	ListClinicians(ctx context.Context) ([]*domain.Clinician, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.Account, error)
	UpdateProfilePhoto(ctx context.Context, id, photoRef string) error
}
