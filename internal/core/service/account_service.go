package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// AccountService exposes the identity directory and role management.
type AccountService struct {
	repo   ports.AccountRepository
	logger zerolog.Logger
}

func NewAccountService(repo ports.AccountRepository, logger zerolog.Logger) *AccountService {
	return &AccountService{repo: repo, logger: logger}
}

func (s *AccountService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AccountService) List(ctx context.Context) ([]*domain.Account, error) {
	return s.repo.List(ctx)
}

func (s *AccountService) ListClinicians(ctx context.Context) ([]*domain.Clinician, error) {
	return s.repo.ListClinicians(ctx)
}

// UpdateRole promotes or demotes an account. An admin can never change
// their own role, which keeps the clinic from locking itself out.
func (s *AccountService) UpdateRole(ctx context.Context, callerID, targetID, role string) (*domain.Account, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}
	if callerID == targetID {
		return nil, domain.ErrOwnRole
	}

	account, err := s.repo.UpdateRole(ctx, targetID, role)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("account_id", targetID).
		Str("role", role).
		Msg("account role updated")
	return account, nil
}
