package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/api/metrics"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// ProfileService manages the single profile image associated with an
// account, including safe replacement of the previous one.
type ProfileService struct {
	accounts ports.AccountRepository
	photos   ports.PhotoStore
	locker   ports.AccountLocker
	logger   zerolog.Logger
}

func NewProfileService(
	accounts ports.AccountRepository,
	photos ports.PhotoStore,
	locker ports.AccountLocker,
	logger zerolog.Logger,
) *ProfileService {
	return &ProfileService{
		accounts: accounts,
		photos:   photos,
		locker:   locker,
		logger:   logger,
	}
}

// ReplacePhoto stores the uploaded image and swaps it onto the account. The
// read-delete-write sequence runs under a per-account lock so two concurrent
// replacements can neither leak an orphaned file nor delete a freshly
// assigned one. Removal of the previous image is best-effort: a failure is
// logged and counted, never surfaced, so the user-visible update always
// lands. The sentinel default image is never deleted.
func (s *ProfileService) ReplacePhoto(ctx context.Context, accountID, originalName string, data []byte) (string, error) {
	unlock, err := s.locker.Lock(ctx, accountID)
	if err != nil {
		return "", err
	}
	defer unlock()

	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return "", err
	}

	newRef, err := s.photos.Store(ctx, originalName, data)
	if err != nil {
		return "", err
	}

	if err := s.accounts.UpdateProfilePhoto(ctx, accountID, newRef); err != nil {
		// the account update failed, drop the freshly stored file instead
		if delErr := s.photos.Delete(ctx, newRef); delErr != nil {
			s.logger.Warn().Err(delErr).Str("photo", newRef).Msg("failed to remove unreferenced photo")
		}
		return "", err
	}

	oldRef := account.ProfilePhoto
	if oldRef != "" && oldRef != domain.DefaultProfilePhoto {
		if err := s.photos.Delete(ctx, oldRef); err != nil {
			metrics.PhotoCleanupFailuresTotal.Inc()
			s.logger.Warn().Err(err).
				Str("account_id", accountID).
				Str("photo", oldRef).
				Msg("failed to delete replaced profile photo")
		}
	}

	s.logger.Info().Str("account_id", accountID).Str("photo", newRef).Msg("profile photo replaced")
	return newRef, nil
}
