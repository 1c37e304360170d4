package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories shared by the service tests. They mirror the
// behaviour of the real Mongo repositories, including the sentinel errors.
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

type stubAccountRepo struct {
	accounts map[string]*domain.Account
	findErr  error
	photoLog []string // photo refs written, in order
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{accounts: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) add(a *domain.Account) {
	clone := *a
	r.accounts[a.ID] = &clone
}

func (r *stubAccountRepo) Create(_ context.Context, a *domain.Account) (*domain.Account, error) {
	for _, existing := range r.accounts {
		if existing.Username == a.Username {
			return nil, domain.ErrAccountExists
		}
	}
	clone := *a
	if clone.ID == "" {
		clone.ID = fmt.Sprintf("acc-%d", len(r.accounts)+1)
	}
	r.accounts[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) FindByUsername(_ context.Context, username string) (*domain.Account, error) {
	for _, a := range r.accounts {
		if a.Username == username {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context) ([]*domain.Account, error) {
	var out []*domain.Account
	for _, a := range r.accounts {
		clone := *a
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubAccountRepo) ListClinicians(_ context.Context) ([]*domain.Clinician, error) {
	var out []*domain.Clinician
	for _, a := range r.accounts {
		if a.Role == domain.RoleAdmin {
			out = append(out, &domain.Clinician{ID: a.ID, Username: a.Username})
		}
	}
	return out, nil
}

func (r *stubAccountRepo) UpdateRole(_ context.Context, id, role string) (*domain.Account, error) {
	a, ok := r.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	a.Role = role
	clone := *a
	return &clone, nil
}

func (r *stubAccountRepo) UpdateProfilePhoto(_ context.Context, id, photoRef string) error {
	a, ok := r.accounts[id]
	if !ok {
		return domain.ErrAccountNotFound
	}
	a.ProfilePhoto = photoRef
	r.photoLog = append(r.photoLog, photoRef)
	return nil
}

type stubPatientRepo struct {
	patients  map[string]*domain.Patient
	insertLog []string // ids inserted, in order
	// hidden ids miss on FindByID but still conflict on Insert, which
	// simulates losing the check-then-create race to another request.
	hidden map[string]struct{}
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{
		patients: make(map[string]*domain.Patient),
		hidden:   make(map[string]struct{}),
	}
}

func (r *stubPatientRepo) add(p *domain.Patient) {
	clone := *p
	r.patients[p.ID] = &clone
}

func (r *stubPatientRepo) Insert(_ context.Context, p *domain.Patient) error {
	if p.ID == "" {
		p.ID = fmt.Sprintf("pat-%d", len(r.patients)+1)
	}
	if _, exists := r.patients[p.ID]; exists {
		return domain.ErrPatientExists
	}
	clone := *p
	r.patients[p.ID] = &clone
	r.insertLog = append(r.insertLog, p.ID)
	return nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id string) (*domain.Patient, error) {
	if _, isHidden := r.hidden[id]; isHidden {
		return nil, domain.ErrPatientNotFound
	}
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) List(_ context.Context) ([]*domain.Patient, error) {
	var out []*domain.Patient
	for _, p := range r.patients {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

// Search applies the same case-insensitive substring semantics as the Mongo
// regex query.
func (r *stubPatientRepo) Search(_ context.Context, term string) ([]*domain.Patient, error) {
	needle := strings.ToLower(term)
	var out []*domain.Patient
	for _, p := range r.patients {
		if strings.Contains(strings.ToLower(p.FirstName), needle) ||
			strings.Contains(strings.ToLower(p.LastName), needle) {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, p *domain.Patient) (*domain.Patient, error) {
	if _, ok := r.patients[p.ID]; !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	r.patients[p.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPatientRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.patients[id]; !ok {
		return domain.ErrPatientNotFound
	}
	delete(r.patients, id)
	return nil
}

type stubAppointmentRepo struct {
	appointments map[string]*ports.AppointmentRecord
	patients     *stubPatientRepo
	nextID       int
}

func newStubAppointmentRepo(patients *stubPatientRepo) *stubAppointmentRepo {
	return &stubAppointmentRepo{
		appointments: make(map[string]*ports.AppointmentRecord),
		patients:     patients,
	}
}

func (r *stubAppointmentRepo) Insert(_ context.Context, rec *ports.AppointmentRecord) (string, error) {
	r.nextID++
	id := fmt.Sprintf("appt-%d", r.nextID)
	clone := *rec
	clone.ID = id
	r.appointments[id] = &clone
	return id, nil
}

func (r *stubAppointmentRepo) FindByID(ctx context.Context, id string) (*domain.Appointment, error) {
	rec, ok := r.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	return r.resolve(ctx, rec)
}

func (r *stubAppointmentRepo) Update(_ context.Context, rec *ports.AppointmentRecord) error {
	if _, ok := r.appointments[rec.ID]; !ok {
		return domain.ErrAppointmentNotFound
	}
	clone := *rec
	r.appointments[rec.ID] = &clone
	return nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.appointments[id]; !ok {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *stubAppointmentRepo) ListByPatient(ctx context.Context, patientID string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, rec := range r.appointments {
		if rec.PatientID != patientID {
			continue
		}
		appt, err := r.resolve(ctx, rec)
		if err != nil {
			continue // dangling reference, never exposed
		}
		out = append(out, appt)
	}
	return out, nil
}

func (r *stubAppointmentRepo) ListByClinician(ctx context.Context, clinicianID string) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, rec := range r.appointments {
		if rec.ClinicianID != clinicianID {
			continue
		}
		appt, err := r.resolve(ctx, rec)
		if err != nil {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (r *stubAppointmentRepo) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, rec := range r.appointments {
		appt, err := r.resolve(ctx, rec)
		if err != nil {
			continue
		}
		out = append(out, appt)
	}
	return out, nil
}

func (r *stubAppointmentRepo) DeleteByPatient(_ context.Context, patientID string) (int64, error) {
	var removed int64
	for id, rec := range r.appointments {
		if rec.PatientID == patientID {
			delete(r.appointments, id)
			removed++
		}
	}
	return removed, nil
}

// resolve mirrors the $lookup: the patient is fetched eagerly and a missing
// one makes the appointment invisible.
func (r *stubAppointmentRepo) resolve(ctx context.Context, rec *ports.AppointmentRecord) (*domain.Appointment, error) {
	patient, err := r.patients.FindByID(ctx, rec.PatientID)
	if err != nil {
		return nil, err
	}
	return &domain.Appointment{
		ID:          rec.ID,
		Patient:     *patient,
		ClinicianID: rec.ClinicianID,
		ScheduledAt: rec.ScheduledAt,
	}, nil
}

// mustTime is a test helper for building expected instants.
func mustTime(day, month, year, hour, minute int) time.Time {
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.Local)
}
