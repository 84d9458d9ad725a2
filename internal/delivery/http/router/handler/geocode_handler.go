package handler

import (
	"log/slog"
	"net/http"

	"resto/internal/delivery/http/response"
	domainerrors "resto/internal/domain/errors"
	"resto/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GeocodeHandler proxies pincode lookups so the provider API key never
// reaches the browser.
type GeocodeHandler struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// NewGeocodeHandler is the constructor for GeocodeHandler, injected by Fx.
// The geocoder is nil when the feature is not configured.
func NewGeocodeHandler(geocoder service.Geocoder, logger *slog.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocoder: geocoder,
		logger:   logger,
	}
}

type pincodeLookupRequest struct {
	Pincode string `query:"pincode" validate:"required,numeric,min=5,max=6"`
}

// Lookup resolves a pincode to city, state and country for form pre-fill.
func (h *GeocodeHandler) Lookup(c echo.Context) error {
	var req pincodeLookupRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "Invalid pincode")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "Invalid pincode")
	}

	if h.geocoder == nil {
		return errors.WithStack(domainerrors.ErrGeocodeDisabled)
	}

	location, err := h.geocoder.LookupPincode(c.Request().Context(), req.Pincode)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, location)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
