package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/api/metrics"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// PatientService manages clinical patient records and the lazy
// account-to-patient synchronisation.
type PatientService struct {
	patients     ports.PatientRepository
	accounts     ports.AccountRepository
	appointments ports.AppointmentRepository
	logger       zerolog.Logger
}

func NewPatientService(
	patients ports.PatientRepository,
	accounts ports.AccountRepository,
	appointments ports.AppointmentRepository,
	logger zerolog.Logger,
) *PatientService {
	return &PatientService{
		patients:     patients,
		accounts:     accounts,
		appointments: appointments,
		logger:       logger,
	}
}

// EnsureSynced guarantees exactly one patient record for the account. The
// record shares the account's id, takes the username as given name, and is
// marked with the auto-provision family name. Idempotency rests on the
// unique _id insert, not on the existence check: a concurrent duplicate
// insert reports domain.ErrPatientExists and is treated as already synced.
// An account that vanished mid-request is a silent no-op so the caller can
// proceed without a patient record.
func (s *PatientService) EnsureSynced(ctx context.Context, accountID string) error {
	if _, err := s.patients.FindByID(ctx, accountID); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrPatientNotFound) {
		return err
	}

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.logger.Warn().Str("account_id", accountID).Msg("sync skipped, account vanished")
			return nil
		}
		return err
	}

	now := time.Now().UTC()
	patient := &domain.Patient{
		ID:        account.ID,
		FirstName: account.Username,
		LastName:  domain.SyncedFamilyName,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.patients.Insert(ctx, patient); err != nil {
		if errors.Is(err, domain.ErrPatientExists) {
			// lost the race to another request; the record exists, done
			return nil
		}
		return err
	}

	metrics.PatientsSyncedTotal.Inc()
	s.logger.Info().Str("account_id", accountID).Msg("patient record synchronised")
	return nil
}

// Create registers a walk-in patient with no backing account.
func (s *PatientService) Create(ctx context.Context, input ports.PatientInput) (*domain.Patient, error) {
	now := time.Now().UTC()
	patient := &domain.Patient{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Email:     input.Email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.patients.Insert(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.Info().Str("patient_id", patient.ID).Msg("walk-in patient created")
	return patient, nil
}

func (s *PatientService) Get(ctx context.Context, id string) (*domain.Patient, error) {
	return s.patients.FindByID(ctx, id)
}

func (s *PatientService) List(ctx context.Context) ([]*domain.Patient, error) {
	return s.patients.List(ctx)
}

func (s *PatientService) Update(ctx context.Context, id string, input ports.PatientInput) (*domain.Patient, error) {
	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patient.FirstName = input.FirstName
	patient.LastName = input.LastName
	patient.Phone = input.Phone
	patient.Email = input.Email
	patient.UpdatedAt = time.Now().UTC()

	return s.patients.Update(ctx, patient)
}

// Delete removes the patient and cascades to their appointments, so no
// orphaned appointment with a dangling reference survives.
func (s *PatientService) Delete(ctx context.Context, id string) error {
	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}

	removed, err := s.appointments.DeleteByPatient(ctx, id)
	if err != nil {
		return err
	}

	s.logger.Info().
		Str("patient_id", id).
		Int64("appointments_removed", removed).
		Msg("patient deleted")
	return nil
}
