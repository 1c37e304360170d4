package ports

import (
	"context"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// AppointmentInput carries the data for creating or replacing an
// appointment. Date and Time follow the clinic's dd/mm/yyyy + HH:MM
// convention and are normalised by the service.
type AppointmentInput struct {
	PatientID   string
	ClinicianID string
	Date        string
	Time        string
}

// AppointmentDetail is the edit-view shape: the appointment plus its
// schedule re-rendered in the same convention the forms submit.
type AppointmentDetail struct {
	Appointment *domain.Appointment
	Date        string
	Time        string
}

// ViewRequest identifies the caller for a schedule listing.
type ViewRequest struct {
	Role      string
	AccountID string
	Search    string
}

// ViewResult is the single repurposing list of the schedule page: either
// appointments or patient search results, never both.
type ViewResult struct {
	Mode         domain.ViewMode
	Appointments []*domain.Appointment
	Patients     []*domain.Patient
}

// Report is the clinic-wide overview available to admins: every
// appointment and every patient.
type Report struct {
	Appointments []*domain.Appointment
	Patients     []*domain.Patient
}

// ScheduleService owns the appointment lifecycle and the role-scoped
// schedule view.
type ScheduleService interface {
	Create(ctx context.Context, input AppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, id string) (*AppointmentDetail, error)
	Update(ctx context.Context, id string, input AppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, id string) error
	ListView(ctx context.Context, req ViewRequest) (*ViewResult, error)
	// Report returns the clinic-wide appointment and patient listing.
	Report(ctx context.Context) (*Report, error)
}
