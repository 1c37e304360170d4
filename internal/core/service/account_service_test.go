package service

import (
	"context"
	"errors"
	"testing"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

func newAccountFixture() (*AccountService, *stubAccountRepo) {
	accounts := newStubAccountRepo()
	accounts.add(&domain.Account{ID: "adm-1", Username: "dr.garcia", Role: domain.RoleAdmin})
	accounts.add(&domain.Account{ID: "acc-1", Username: "ana", Role: domain.RoleStandard})
	return NewAccountService(accounts, discardLogger), accounts
}

func TestAccountService_UpdateRole_Promotes(t *testing.T) {
	svc, accounts := newAccountFixture()

	updated, err := svc.UpdateRole(context.Background(), "adm-1", "acc-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected promoted role, got %q", updated.Role)
	}
	if accounts.accounts["acc-1"].Role != domain.RoleAdmin {
		t.Fatalf("promotion did not persist")
	}
}

func TestAccountService_UpdateRole_RejectsOwnRole(t *testing.T) {
	svc, _ := newAccountFixture()

	_, err := svc.UpdateRole(context.Background(), "adm-1", "adm-1", domain.RoleStandard)
	if !errors.Is(err, domain.ErrOwnRole) {
		t.Fatalf("expected ErrOwnRole, got %v", err)
	}
}

func TestAccountService_UpdateRole_RejectsUnknownRole(t *testing.T) {
	svc, _ := newAccountFixture()

	_, err := svc.UpdateRole(context.Background(), "adm-1", "acc-1", "superuser")
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAccountService_UpdateRole_UnknownTarget(t *testing.T) {
	svc, _ := newAccountFixture()

	_, err := svc.UpdateRole(context.Background(), "adm-1", "ghost", domain.RoleAdmin)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestAccountService_ListClinicians(t *testing.T) {
	svc, _ := newAccountFixture()

	clinicians, err := svc.ListClinicians(context.Background())
	if err != nil {
		t.Fatalf("ListClinicians: %v", err)
	}
	if len(clinicians) != 1 || clinicians[0].Username != "dr.garcia" {
		t.Fatalf("expected only the admin account, got %+v", clinicians)
	}
}
