package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/api/metrics"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// ScheduleService owns the appointment lifecycle and the role-scoped
// schedule view. No other component mutates appointment state.
type ScheduleService struct {
	appointments ports.AppointmentRepository
	patients     ports.PatientRepository
	accounts     ports.AccountRepository
	logger       zerolog.Logger
}

func NewScheduleService(
	appointments ports.AppointmentRepository,
	patients ports.PatientRepository,
	accounts ports.AccountRepository,
	logger zerolog.Logger,
) *ScheduleService {
	return &ScheduleService{
		appointments: appointments,
		patients:     patients,
		accounts:     accounts,
		logger:       logger,
	}
}

// Create books a new appointment. The patient reference must resolve and the
// clinician reference must name an admin account; the date/time pair is
// normalised before anything is persisted.
func (s *ScheduleService) Create(ctx context.Context, input ports.AppointmentInput) (*domain.Appointment, error) {
	rec, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}

	id, err := s.appointments.Insert(ctx, rec)
	if err != nil {
		s.logger.Error().Err(err).Str("patient_id", input.PatientID).Msg("failed to create appointment")
		return nil, err
	}

	metrics.AppointmentsCreatedTotal.Inc()
	s.logger.Info().
		Str("appointment_id", id).
		Str("patient_id", input.PatientID).
		Str("clinician_id", input.ClinicianID).
		Msg("appointment created")

	return s.fetch(ctx, id)
}

// Get returns the appointment for editing, with the schedule re-rendered in
// the dd/mm/yyyy + HH:MM convention the forms submit.
func (s *ScheduleService) Get(ctx context.Context, id string) (*ports.AppointmentDetail, error) {
	appt, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.AppointmentDetail{
		Appointment: appt,
		Date:        domain.FormatScheduleDate(appt.ScheduledAt),
		Time:        domain.FormatScheduleTime(appt.ScheduledAt),
	}, nil
}

// Update replaces the three mutable fields. Calling it twice with identical
// arguments succeeds both times.
func (s *ScheduleService) Update(ctx context.Context, id string, input ports.AppointmentInput) (*domain.Appointment, error) {
	rec, err := s.validate(ctx, input)
	if err != nil {
		return nil, err
	}
	rec.ID = id

	if err := s.appointments.Update(ctx, rec); err != nil {
		return nil, err
	}

	s.logger.Info().Str("appointment_id", id).Msg("appointment updated")
	return s.fetch(ctx, id)
}

// Delete removes an appointment. domain.ErrAppointmentNotFound when the id
// does not exist; never a silent success.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("appointment_id", id).Msg("appointment deleted")
	return nil
}

// ListView resolves the caller's view shape once and executes it: standard
// callers get their own appointments, clinicians their own agenda, and a
// clinician search term switches the whole response to a patient lookup.
func (s *ScheduleService) ListView(ctx context.Context, req ports.ViewRequest) (*ports.ViewResult, error) {
	spec := domain.ResolveView(req.Role, req.AccountID, req.Search)

	switch spec.Mode {
	case domain.ViewPatientSearch:
		patients, err := s.patients.Search(ctx, spec.Search)
		if err != nil {
			return nil, err
		}
		result := "miss"
		if len(patients) > 0 {
			result = "hit"
		}
		metrics.PatientSearchesTotal.WithLabelValues(result).Inc()
		return &ports.ViewResult{Mode: spec.Mode, Patients: patients}, nil

	case domain.ViewOwnAgenda:
		appts, err := s.appointments.ListByClinician(ctx, spec.ClinicianID)
		if err != nil {
			return nil, err
		}
		if err := s.resolveClinicians(ctx, appts); err != nil {
			return nil, err
		}
		return &ports.ViewResult{Mode: spec.Mode, Appointments: appts}, nil

	case domain.ViewOwnAppointments:
		appts, err := s.appointments.ListByPatient(ctx, spec.PatientID)
		if err != nil {
			return nil, err
		}
		if err := s.resolveClinicians(ctx, appts); err != nil {
			return nil, err
		}
		return &ports.ViewResult{Mode: spec.Mode, Appointments: appts}, nil

	default:
		return nil, fmt.Errorf("unknown view mode %d", spec.Mode)
	}
}

// Report returns the clinic-wide overview backing the admin report page:
// every appointment (patients resolved) plus every patient record.
func (s *ScheduleService) Report(ctx context.Context) (*ports.Report, error) {
	appts, err := s.appointments.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.resolveClinicians(ctx, appts); err != nil {
		return nil, err
	}

	patients, err := s.patients.List(ctx)
	if err != nil {
		return nil, err
	}

	return &ports.Report{Appointments: appts, Patients: patients}, nil
}

// validate normalises the schedule and checks both references before any
// write happens.
func (s *ScheduleService) validate(ctx context.Context, input ports.AppointmentInput) (*ports.AppointmentRecord, error) {
	scheduledAt, err := domain.ParseSchedule(input.Date, input.Time)
	if err != nil {
		return nil, err
	}

	if _, err := s.patients.FindByID(ctx, input.PatientID); err != nil {
		if errors.Is(err, domain.ErrPatientNotFound) {
			return nil, domain.ErrPatientRef
		}
		return nil, err
	}

	clinician, err := s.accounts.FindByID(ctx, input.ClinicianID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, domain.ErrClinicianRef
		}
		return nil, err
	}
	if !clinician.IsAdmin() {
		return nil, domain.ErrClinicianRef
	}

	return &ports.AppointmentRecord{
		PatientID:   input.PatientID,
		ClinicianID: input.ClinicianID,
		ScheduledAt: scheduledAt,
	}, nil
}

// fetch loads a populated appointment and fills in the clinician name.
func (s *ScheduleService) fetch(ctx context.Context, id string) (*domain.Appointment, error) {
	appt, err := s.appointments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.resolveClinicians(ctx, []*domain.Appointment{appt}); err != nil {
		return nil, err
	}
	return appt, nil
}

// resolveClinicians denormalises clinician display names at read time, so a
// clinician rename never leaves stale names on stored appointments.
func (s *ScheduleService) resolveClinicians(ctx context.Context, appts []*domain.Appointment) error {
	if len(appts) == 0 {
		return nil
	}

	clinicians, err := s.accounts.ListClinicians(ctx)
	if err != nil {
		return err
	}
	names := make(map[string]string, len(clinicians))
	for _, c := range clinicians {
		names[c.ID] = c.Username
	}

	for _, a := range appts {
		a.ClinicianName = names[a.ClinicianID]
	}
	return nil
}
