package domain

import "errors"

var (
	ErrInvalidSchedule     = errors.New("invalid schedule date or time")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrPatientRef          = errors.New("appointment references an unknown patient")
	ErrClinicianRef        = errors.New("appointment references an unknown clinician")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountExists       = errors.New("account already exists")
	ErrPatientExists       = errors.New("patient already exists")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidRole         = errors.New("invalid role")
	ErrOwnRole             = errors.New("cannot change own role")
	ErrForbidden           = errors.New("access forbidden")
)
