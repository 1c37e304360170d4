package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

type stubPatientService struct {
	synced  []string
	syncErr error
}

func (s *stubPatientService) EnsureSynced(_ context.Context, accountID string) error {
	if s.syncErr != nil {
		return s.syncErr
	}
	s.synced = append(s.synced, accountID)
	return nil
}

func (s *stubPatientService) Create(context.Context, ports.PatientInput) (*domain.Patient, error) {
	return nil, nil
}

func (s *stubPatientService) Get(context.Context, string) (*domain.Patient, error) {
	return nil, nil
}

func (s *stubPatientService) List(context.Context) ([]*domain.Patient, error) {
	return nil, nil
}

func (s *stubPatientService) Update(context.Context, string, ports.PatientInput) (*domain.Patient, error) {
	return nil, nil
}

func (s *stubPatientService) Delete(context.Context, string) error { return nil }

func runSyncPatient(t *testing.T, patients *stubPatientService, role, accountID string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if role != "" {
		c.Set("role", role)
	}
	if accountID != "" {
		c.Set("account_id", accountID)
	}

	mw := SyncPatient(patients, zerolog.Nop())
	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	return rec
}

func TestSyncPatient_SyncsStandardCaller(t *testing.T) {
	patients := &stubPatientService{}
	rec := runSyncPatient(t, patients, domain.RoleStandard, "acc-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(patients.synced) != 1 || patients.synced[0] != "acc-1" {
		t.Fatalf("expected one sync for acc-1, got %v", patients.synced)
	}
}

func TestSyncPatient_SkipsAdmins(t *testing.T) {
	patients := &stubPatientService{}
	runSyncPatient(t, patients, domain.RoleAdmin, "adm-1")

	if len(patients.synced) != 0 {
		t.Fatalf("admins must not be converted into patients, got %v", patients.synced)
	}
}

func TestSyncPatient_FailureDoesNotBlockRequest(t *testing.T) {
	patients := &stubPatientService{syncErr: errors.New("mongo down")}
	rec := runSyncPatient(t, patients, domain.RoleStandard, "acc-1")

	if rec.Code != http.StatusOK {
		t.Fatalf("a sync failure must not block the request, got %d", rec.Code)
	}
}
