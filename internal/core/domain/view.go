package domain

// ViewMode is the tagged variant deciding what a caller's schedule view
// contains. It is resolved exactly once per request; downstream code
// dispatches on the mode instead of re-checking roles.
type ViewMode int

const (
	// ViewOwnAppointments lists appointments whose patient is the caller.
	ViewOwnAppointments ViewMode = iota
	// ViewOwnAgenda lists appointments assigned to the calling clinician.
	ViewOwnAgenda
	// ViewPatientSearch replaces the appointment list with a patient lookup.
	ViewPatientSearch
)

// ViewSpec is the resolved query shape for a schedule request.
type ViewSpec struct {
	Mode ViewMode
	// PatientID scopes ViewOwnAppointments.
	PatientID string
	// ClinicianID scopes ViewOwnAgenda.
	ClinicianID string
	// Search is the patient lookup term for ViewPatientSearch.
	Search string
}

// ResolveView maps (role, caller identity, optional search term) onto one of
// the three view shapes. Standard callers always see their own appointments
// and their search term is ignored; clinician-admins see their own agenda,
// or a patient search when a term is present. Any future role must add its
// own branch here rather than falling through.
func ResolveView(role, accountID, search string) ViewSpec {
	if role == RoleAdmin {
		if search != "" {
			return ViewSpec{Mode: ViewPatientSearch, Search: search}
		}
		return ViewSpec{Mode: ViewOwnAgenda, ClinicianID: accountID}
	}
	return ViewSpec{Mode: ViewOwnAppointments, PatientID: accountID}
}
