package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Auth ---

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type accountResponse struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	ProfilePhoto string `json:"profile_photo"`
}

type authResponse struct {
	Token   string          `json:"token,omitempty"`
	Account accountResponse `json:"account"`
}

// --- Appointments ---

type appointmentRequest struct {
	PatientID   string `json:"patient_id"   validate:"required"`
	ClinicianID string `json:"clinician_id" validate:"required"`
	Date        string `json:"date"         validate:"required"`
	Time        string `json:"time"         validate:"required"`
}

type patientResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
}

type appointmentResponse struct {
	ID            string          `json:"id"`
	Patient       patientResponse `json:"patient"`
	ClinicianID   string          `json:"clinician_id"`
	ClinicianName string          `json:"clinician_name"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
}

// appointmentDetailResponse adds the dd/mm/yyyy + HH:MM rendering the edit
// form prefills with.
type appointmentDetailResponse struct {
	appointmentResponse
	Date string `json:"date"`
	Time string `json:"time"`
}

// scheduleViewResponse is the single repurposing list of the schedule page:
// appointments for patients and clinician agendas, patient matches when a
// clinician searched.
type scheduleViewResponse struct {
	Mode         string                `json:"mode"`
	Appointments []appointmentResponse `json:"appointments"`
	Patients     []patientResponse     `json:"patients"`
}

// reportResponse is the clinic-wide admin overview.
type reportResponse struct {
	Appointments []appointmentResponse `json:"appointments"`
	Patients     []patientResponse     `json:"patients"`
}

// --- Patients ---

type patientRequest struct {
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Phone     string `json:"phone"      validate:"omitempty"`
	Email     string `json:"email"      validate:"omitempty,email"`
}

// --- Accounts ---

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=standard admin"`
}

type clinicianResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// --- Profile ---

type photoResponse struct {
	ProfilePhoto string `json:"profile_photo"`
}
