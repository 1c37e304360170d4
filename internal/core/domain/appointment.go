package domain

import "time"

// Appointment is the core scheduling aggregate. It references an existing
// Patient (always resolved eagerly on reads) and a clinician by stable
// account identity; the clinician's display name is denormalised at read
// time so a rename never breaks the agenda.
type Appointment struct {
	ID            string    `json:"id"`
	Patient       Patient   `json:"patient"`
	ClinicianID   string    `json:"clinician_id"`
	ClinicianName string    `json:"clinician_name"`
	ScheduledAt   time.Time `json:"scheduled_at"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
