package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/EmmanuelLopez4/clinica-proyFin/internal/core/ports"
)

// maxPhotoBytes bounds profile image uploads.
const maxPhotoBytes = 5 << 20

// ProfileHandler handles profile photo uploads.
type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

// ReplacePhoto swaps the caller's profile image. The previous image is
// cleaned up best-effort; the update itself always wins.
//
// @Summary      Replace the caller's profile photo
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        photo  formData  file  true  "Image file"
// @Success      200  {object}  photoResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/profile/photo [put]
func (h *ProfileHandler) ReplacePhoto(c echo.Context) error {
	accountID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing photo file")
	}
	if fileHeader.Size > maxPhotoBytes {
		return echo.NewHTTPError(http.StatusBadRequest, "photo too large")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable photo file")
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxPhotoBytes))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "unreadable photo file")
	}

	ref, err := h.service.ReplacePhoto(c.Request().Context(), accountID, fileHeader.Filename, data)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, photoResponse{ProfilePhoto: ref})
}
