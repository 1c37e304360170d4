package ports

import (
	"context"
	"time"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// AppointmentRecord is the write-side shape of an appointment: patient and
// clinician as raw references, before read-time resolution.
type AppointmentRecord struct {
	ID          string
	PatientID   string
	ClinicianID string
	ScheduledAt time.Time
}

// AppointmentRepository defines persistence for appointments. Every read
// resolves the referenced patient eagerly; a dangling reference is never
// exposed to callers.
type AppointmentRepository interface {
	Insert(ctx context.Context, rec *AppointmentRecord) (string, error)
	// FindByID returns the appointment with its patient resolved, or
	// domain.ErrAppointmentNotFound.
	FindByID(ctx context.Context, id string) (*domain.Appointment, error)
	// Update replaces the three mutable fields. domain.ErrAppointmentNotFound
	// when the id does not exist.
	Update(ctx context.Context, rec *AppointmentRecord) error
	// Delete removes the appointment, domain.ErrAppointmentNotFound when absent.
	Delete(ctx context.Context, id string) error
	ListByPatient(ctx context.Context, patientID string) ([]*domain.Appointment, error)
	ListByClinician(ctx context.Context, clinicianID string) ([]*domain.Appointment, error)
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	// DeleteByPatient removes every appointment of a patient (cascade on
	// patient removal). Returns the number deleted.
	DeleteByPatient(ctx context.Context, patientID string) (int64, error)
}
