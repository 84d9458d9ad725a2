// Package geocode implements the pincode lookup against the Geoapify API.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"resto/config"
	domainerrors "resto/internal/domain/errors"
	"resto/internal/domain/service"
	"resto/internal/errors"
)

const defaultLookupTimeout = 10 * time.Second

// geoapifyGeocoder implements service.Geocoder against Geoapify's forward
// geocoding endpoint.
type geoapifyGeocoder struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// geoapifyResponse mirrors the slice of Geoapify's response we consume.
type geoapifyResponse struct {
	Features []struct {
		Properties struct {
			City    string `json:"city"`
			State   string `json:"state"`
			Country string `json:"country"`
		} `json:"properties"`
	} `json:"features"`
}

// NewGeocoder creates the Geoapify-backed geocoder. Returns nil (not an
// error) when no API key is configured, so deployments without the feature
// still start; the handler answers 503 in that case.
func NewGeocoder(cfg *config.Config, logger *slog.Logger) service.Geocoder {
	if cfg.Geocode == nil || cfg.Geocode.APIKey == "" {
		logger.Warn("Geocode lookup disabled: no API key configured")

		return nil
	}

	timeout := cfg.Geocode.Timeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	return &geoapifyGeocoder{
		endpoint: cfg.Geocode.Endpoint,
		apiKey:   cfg.Geocode.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// LookupPincode resolves a postal code to its city, state and country.
func (g *geoapifyGeocoder) LookupPincode(ctx context.Context, pincode string) (*service.Location, error) {
	query := url.Values{}
	query.Set("text", pincode)
	query.Set("type", "postcode")
	query.Set("apiKey", g.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		g.logger.Warn("Geocode request failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrGeocodeFailed, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)

		return nil, errors.Wrapf(domainerrors.ErrGeocodeFailed, "provider returned status %d", resp.StatusCode)
	}

	var decoded geoapifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, errors.Wrap(domainerrors.ErrGeocodeFailed, err.Error())
	}

	if len(decoded.Features) == 0 {
		return nil, errors.WithStack(domainerrors.ErrPincodeNotFound)
	}

	properties := decoded.Features[0].Properties

	return &service.Location{
		City:    properties.City,
		State:   properties.State,
		Country: properties.Country,
	}, nil
}
