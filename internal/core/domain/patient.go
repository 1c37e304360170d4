package domain

import "time"

// SyncedFamilyName marks patient records auto-provisioned from an account.
// The literal value is kept from the original clinic deployment so existing
// documents remain recognisable.
const SyncedFamilyName = "(Sincronizado)"

// Patient is a clinical record. When synchronised from an account its ID
// equals the account ID; walk-in patients created directly by clinic staff
// have no backing account.
type Patient struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Phone     string    `json:"phone,omitempty"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Synced reports whether this record was auto-provisioned from an account.
func (p *Patient) Synced() bool {
	return p.LastName == SyncedFamilyName
}
