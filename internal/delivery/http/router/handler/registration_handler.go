// Package handler contains the HTTP handlers for the application.
package handler

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"resto/internal/delivery/http/response"
	"resto/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// RegistrationHandler holds dependencies for the registration endpoint.
type RegistrationHandler struct {
	uc     usecase.RegistrationUsecase
	logger *slog.Logger
}

// NewRegistrationHandler is the constructor for RegistrationHandler, injected by Fx.
func NewRegistrationHandler(uc usecase.RegistrationUsecase, logger *slog.Logger) *RegistrationHandler {
	return &RegistrationHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the restaurant registration submission. The body is
// multipart form data; every text field is read as submitted and judged by
// the use case, so a malformed value answers with that field's message
// rather than a generic binding error.
func (h *RegistrationHandler) Register(c echo.Context) error {
	input := &usecase.RegisterRestaurantInput{
		Name:          c.FormValue("name"),
		Category:      c.FormValue("category"),
		CuisineTypes:  cuisineTypes(c),
		ContactPerson: c.FormValue("contactPerson"),
		Phone:         c.FormValue("phone"),
		Email:         c.FormValue("email"),
		Address:       c.FormValue("address"),
		Pincode:       c.FormValue("pincode"),
		City:          c.FormValue("city"),
		State:         c.FormValue("state"),
		Country:       c.FormValue("country"),
		Coordinates:   c.FormValue("coordinates"),
		Hours:         c.FormValue("hours"),
		Website:       c.FormValue("website"),
		SocialLinks:   c.FormValue("socialLinks"),
		Description:   c.FormValue("description"),
		LicenseNumber: c.FormValue("licenseNumber"),
		GSTNumber:     c.FormValue("gstNumber"),
		Status:        c.FormValue("status"),
		Logo:          logoUpload(c),
	}

	if _, err := h.uc.RegisterRestaurant(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Restaurant Registered Successfully")
}

// cuisineTypes reads the repeated cuisine selection. The form submits it as
// cuisineTypes[]; the bare name is accepted as a fallback for older clients.
func cuisineTypes(c echo.Context) []string {
	form, err := c.MultipartForm()
	if err != nil || form == nil {
		return nil
	}

	if values, ok := form.Value["cuisineTypes[]"]; ok {
		return values
	}

	return form.Value["cuisineTypes"]
}

// logoUpload wraps the optional logo file part. The part is not read here;
// the use case opens it only after validation passes.
func logoUpload(c echo.Context) *usecase.LogoUpload {
	fileHeader, err := c.FormFile("logo")
	if err != nil {
		return nil
	}

	return &usecase.LogoUpload{
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Open: func() (io.ReadCloser, error) {
			return openPart(fileHeader)
		},
	}
}

func openPart(fileHeader *multipart.FileHeader) (io.ReadCloser, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, errors.Wrap(err, "failed to open uploaded logo")
	}

	return file, nil
}
