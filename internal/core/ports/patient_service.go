package ports

import (
	"context"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// PatientInput carries the fields staff can set on a patient record.
type PatientInput struct {
	FirstName string
	LastName  string
	Phone     string
	Email     string
}

// PatientService manages clinical patient records, including the lazy
// account-to-patient synchronisation.
type PatientService interface {
	// EnsureSynced guarantees a patient record exists for the account.
	// Idempotent; a vanished account is a silent no-op.
	EnsureSynced(ctx context.Context, accountID string) error
	// Create registers a walk-in patient with no backing account.
	Create(ctx context.Context, input PatientInput) (*domain.Patient, error)
	Get(ctx context.Context, id string) (*domain.Patient, error)
	List(ctx context.Context) ([]*domain.Patient, error)
	Update(ctx context.Context, id string, input PatientInput) (*domain.Patient, error)
	// Delete removes the patient and cascades to their appointments.
	Delete(ctx context.Context, id string) error
}
