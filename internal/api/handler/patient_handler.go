package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// PatientHandler handles the admin-only patient record management,
// including walk-in patients with no backing account.
type PatientHandler struct {
	service ports.PatientService
}

func NewPatientHandler(service ports.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

// List returns every patient record.
//
// @Summary      List patients
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  patientResponse
// @Router       /v1/patients [get]
func (h *PatientHandler) List(c echo.Context) error {
	patients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]patientResponse, 0, len(patients))
	for _, p := range patients {
		out = append(out, toPatientResponse(p))
	}
	return c.JSON(http.StatusOK, out)
}

// Get returns one patient record.
//
// @Summary      Get a patient
// @Tags         patients
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient id"
// @Success      200  {object}  patientResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/patients/{id} [get]
func (h *PatientHandler) Get(c echo.Context) error {
	patient, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPatientResponse(patient))
}

// Create registers a walk-in patient.
//
// @Summary      Create a walk-in patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      patientRequest  true  "Patient details"
// @Success      201   {object}  patientResponse
// @Failure      400   {object}  errorResponse
// @Router       /v1/patients [post]
func (h *PatientHandler) Create(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.service.Create(c.Request().Context(), ports.PatientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toPatientResponse(patient))
}

// Update replaces a patient's editable fields.
//
// @Summary      Update a patient
// @Tags         patients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Patient id"
// @Param        body  body      patientRequest  true  "Replacement fields"
// @Success      200   {object}  patientResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/patients/{id} [put]
func (h *PatientHandler) Update(c echo.Context) error {
	var req patientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.PatientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toPatientResponse(patient))
}

// Delete removes a patient and cascades to their appointments.
//
// @Summary      Delete a patient
// @Tags         patients
// @Security     BearerAuth
// @Param        id  path  string  true  "Patient id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/patients/{id} [delete]
func (h *PatientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
