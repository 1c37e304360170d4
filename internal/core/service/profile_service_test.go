package service

import (
	"context"
	"errors"
	"testing"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stub photo store and locker
// ---------------------------------------------------------------------------

type stubPhotoStore struct {
	stored    []string
	deleted   []string
	deleteErr error
	storeErr  error
}

func (s *stubPhotoStore) Store(_ context.Context, originalName string, _ []byte) (string, error) {
	if s.storeErr != nil {
		return "", s.storeErr
	}
	ref := "stored_" + originalName
	s.stored = append(s.stored, ref)
	return ref, nil
}

func (s *stubPhotoStore) Delete(_ context.Context, ref string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.deleted = append(s.deleted, ref)
	return nil
}

type stubLocker struct {
	locks   int
	unlocks int
}

func (l *stubLocker) Lock(_ context.Context, _ string) (func(), error) {
	l.locks++
	return func() { l.unlocks++ }, nil
}

func newProfileFixture(currentPhoto string) (*ProfileService, *stubAccountRepo, *stubPhotoStore, *stubLocker) {
	accounts := newStubAccountRepo()
	accounts.add(&domain.Account{
		ID:           "acc-1",
		Username:     "ana",
		Role:         domain.RoleStandard,
		ProfilePhoto: currentPhoto,
	})

	photos := &stubPhotoStore{}
	locker := &stubLocker{}
	svc := NewProfileService(accounts, photos, locker, discardLogger)
	return svc, accounts, photos, locker
}

func TestProfileService_Replace_KeepsDefaultUntouched(t *testing.T) {
	svc, accounts, photos, locker := newProfileFixture(domain.DefaultProfilePhoto)

	ref, err := svc.ReplacePhoto(context.Background(), "acc-1", "new.png", []byte("img"))
	if err != nil {
		t.Fatalf("ReplacePhoto: %v", err)
	}

	if len(photos.deleted) != 0 {
		t.Fatalf("the sentinel default must never be deleted, got %v", photos.deleted)
	}
	if accounts.accounts["acc-1"].ProfilePhoto != ref {
		t.Fatalf("account should carry the new reference %q", ref)
	}
	if locker.locks != 1 || locker.unlocks != 1 {
		t.Fatalf("expected one lock/unlock cycle, got %d/%d", locker.locks, locker.unlocks)
	}
}

func TestProfileService_Replace_DeletesOldExactlyOnce(t *testing.T) {
	svc, _, photos, _ := newProfileFixture("old.png")

	if _, err := svc.ReplacePhoto(context.Background(), "acc-1", "new.png", []byte("img")); err != nil {
		t.Fatalf("ReplacePhoto: %v", err)
	}

	if len(photos.deleted) != 1 || photos.deleted[0] != "old.png" {
		t.Fatalf("expected exactly one deletion of old.png, got %v", photos.deleted)
	}
}

func TestProfileService_Replace_CleanupFailureIsNonFatal(t *testing.T) {
	svc, accounts, photos, _ := newProfileFixture("old.png")
	photos.deleteErr = errors.New("disk on fire")

	ref, err := svc.ReplacePhoto(context.Background(), "acc-1", "new.png", []byte("img"))
	if err != nil {
		t.Fatalf("cleanup failure must not fail the replacement, got %v", err)
	}
	if accounts.accounts["acc-1"].ProfilePhoto != ref {
		t.Fatalf("the new reference must land despite the failed cleanup")
	}
}

func TestProfileService_Replace_UnknownAccount(t *testing.T) {
	svc, _, photos, _ := newProfileFixture("old.png")

	_, err := svc.ReplacePhoto(context.Background(), "ghost", "new.png", []byte("img"))
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Fatalf("expected ErrAccountNotFound, got %v", err)
	}
	if len(photos.stored) != 0 {
		t.Fatalf("nothing should be stored for an unknown account")
	}
}
