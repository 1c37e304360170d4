package domain

import "time"

const (
	RoleStandard = "standard"
	RoleAdmin    = "admin"
)

// DefaultProfilePhoto is the well-known sentinel assigned to every new
// account. It is never passed to the photo store's delete operation.
const DefaultProfilePhoto = "perfil_default.png"

// ValidRole reports whether s is one of the recognised account roles.
func ValidRole(s string) bool {
	return s == RoleStandard || s == RoleAdmin
}

// Account models an authenticated actor: either a patient-facing standard
// user or a clinician with administrative privileges.
type Account struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	ProfilePhoto string    `json:"profile_photo"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsAdmin reports whether the account carries the clinician-admin role.
func (a *Account) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Clinician is the read-side projection of an admin account used to populate
// booking forms and to resolve an appointment's clinician display name.
type Clinician struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
