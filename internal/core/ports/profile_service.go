package ports

import "context"

// PhotoStore abstracts the profile image storage collaborator.
type PhotoStore interface {
	// Store persists the image bytes and returns the stored reference.
	Store(ctx context.Context, originalName string, data []byte) (string, error)
	// Delete removes a stored image. The sentinel default reference is
	// never passed here.
	Delete(ctx context.Context, ref string) error
}

// AccountLocker serialises the read-modify-write photo replacement per
// account identity.
type AccountLocker interface {
	// Lock acquires the per-account lock, returning an unlock func.
	Lock(ctx context.Context, accountID string) (func(), error)
}

// ProfileService manages the single profile image of an account.
type ProfileService interface {
	// ReplacePhoto stores the uploaded image, schedules removal of the
	// previous one (unless it is the default), and updates the account.
	ReplacePhoto(ctx context.Context, accountID, originalName string, data []byte) (string, error)
}
