package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/domain"
	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// ScheduleHandler handles HTTP requests for the appointment lifecycle and
// the role-scoped schedule view.
type ScheduleHandler struct {
	service ports.ScheduleService
}

func NewScheduleHandler(service ports.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// List returns the caller's schedule view. Standard callers see their own
// appointments; clinicians see their agenda, or patient search results when
// ?q= is present.
//
// @Summary      List the caller's schedule view
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        q  query  string  false  "Patient search term (clinicians only)"
// @Success      200  {object}  scheduleViewResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/appointments [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	accountID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	view, err := h.service.ListView(c.Request().Context(), ports.ViewRequest{
		Role:      role,
		AccountID: accountID,
		Search:    c.QueryParam("q"),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toScheduleViewResponse(view))
}

// Get returns one appointment with its schedule rendered for the edit form.
//
// @Summary      Get an appointment for editing
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      200  {object}  appointmentDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/appointments/{id} [get]
func (h *ScheduleHandler) Get(c echo.Context) error {
	detail, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appointmentDetailResponse{
		appointmentResponse: toAppointmentResponse(detail.Appointment),
		Date:                detail.Date,
		Time:                detail.Time,
	})
}

// Create books a new appointment.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      appointmentRequest  true  "Appointment details (date dd/mm/yyyy, time HH:MM)"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/appointments [post]
func (h *ScheduleHandler) Create(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Create(c.Request().Context(), ports.AppointmentInput{
		PatientID:   req.PatientID,
		ClinicianID: req.ClinicianID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

// Update replaces an appointment's patient, clinician, and schedule.
//
// @Summary      Update an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Appointment id"
// @Param        body  body      appointmentRequest  true  "Replacement fields"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/appointments/{id} [put]
func (h *ScheduleHandler) Update(c echo.Context) error {
	var req appointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appt, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AppointmentInput{
		PatientID:   req.PatientID,
		ClinicianID: req.ClinicianID,
		Date:        req.Date,
		Time:        req.Time,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Delete removes an appointment.
//
// @Summary      Delete an appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/appointments/{id} [delete]
func (h *ScheduleHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Report returns the clinic-wide overview. Admin only.
//
// @Summary      Clinic-wide appointment and patient report
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  reportResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/report [get]
func (h *ScheduleHandler) Report(c echo.Context) error {
	report, err := h.service.Report(c.Request().Context())
	if err != nil {
		return err
	}

	resp := reportResponse{
		Appointments: make([]appointmentResponse, 0, len(report.Appointments)),
		Patients:     make([]patientResponse, 0, len(report.Patients)),
	}
	for _, a := range report.Appointments {
		resp.Appointments = append(resp.Appointments, toAppointmentResponse(a))
	}
	for _, p := range report.Patients {
		resp.Patients = append(resp.Patients, toPatientResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// --- mapping ---

func toPatientResponse(p *domain.Patient) patientResponse {
	return patientResponse{
		ID:        p.ID,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Phone:     p.Phone,
		Email:     p.Email,
	}
}

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:            a.ID,
		Patient:       toPatientResponse(&a.Patient),
		ClinicianID:   a.ClinicianID,
		ClinicianName: a.ClinicianName,
		ScheduledAt:   a.ScheduledAt,
	}
}

func toScheduleViewResponse(view *ports.ViewResult) scheduleViewResponse {
	resp := scheduleViewResponse{
		Appointments: make([]appointmentResponse, 0, len(view.Appointments)),
		Patients:     make([]patientResponse, 0, len(view.Patients)),
	}

	switch view.Mode {
	case domain.ViewOwnAgenda:
		resp.Mode = "own_agenda"
	case domain.ViewPatientSearch:
		resp.Mode = "patient_search"
	default:
		resp.Mode = "own_appointments"
	}

	for _, a := range view.Appointments {
		resp.Appointments = append(resp.Appointments, toAppointmentResponse(a))
	}
	for _, p := range view.Patients {
		resp.Patients = append(resp.Patients, toPatientResponse(p))
	}
	return resp
}
