package ports

import (
	"context"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// PatientRepository defines persistence for clinical patient records.
type PatientRepository interface {
	// Insert persists a new patient. Inserting an id that already exists
	// returns domain.ErrPatientExists (unique _id constraint); the sync
	// service relies on this for race-free idempotency.
	Insert(ctx context.Context, p *domain.Patient) error
	FindByID(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	// Search matches the term case-insensitively as a substring of the
	// first or last name.
	Search(ctx context.Context, term string) ([]*domain.Patient, error)
	Update(ctx context.Context, p *domain.Patient) (*domain.Patient, error)
	Delete(ctx context.Context, id string) error
}
