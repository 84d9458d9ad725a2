package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "resto/internal/domain/errors"
	"resto/internal/domain/service"
	"resto/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	location   *service.Location
	err        error
	gotPincode string
}

func (s *stubGeocoder) LookupPincode(_ context.Context, pincode string) (*service.Location, error) {
	s.gotPincode = pincode
	if s.err != nil {
		return nil, s.err
	}

	return s.location, nil
}

func performLookup(t *testing.T, geocoder service.Geocoder, query string) *httptest.ResponseRecorder {
	t.Helper()

	e := newTestEcho()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewGeocodeHandler(geocoder, logger)
	e.GET("/geocode", h.Lookup)

	req := httptest.NewRequest(http.MethodGet, "/geocode"+query, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestLookup_Success(t *testing.T) {
	stub := &stubGeocoder{
		location: &service.Location{City: "Kochi", State: "Kerala", Country: "India"},
	}

	rec := performLookup(t, stub, "?pincode=682001")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"city":"Kochi","state":"Kerala","country":"India"}`, rec.Body.String())
	assert.Equal(t, "682001", stub.gotPincode)
}

func TestLookup_MissingPincode(t *testing.T) {
	rec := performLookup(t, &stubGeocoder{}, "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Invalid pincode", body["error"])
}

func TestLookup_MalformedPincode(t *testing.T) {
	rec := performLookup(t, &stubGeocoder{}, "?pincode=12ab")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLookup_NotConfigured(t *testing.T) {
	rec := performLookup(t, nil, "?pincode=682001")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Pincode lookup is not configured", body["error"])
}

func TestLookup_UpstreamFailure(t *testing.T) {
	stub := &stubGeocoder{
		err: errors.Wrap(domainerrors.ErrGeocodeFailed, "provider returned status 500"),
	}

	rec := performLookup(t, stub, "?pincode=682001")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}

func TestLookup_PincodeNotFound(t *testing.T) {
	stub := &stubGeocoder{err: errors.WithStack(domainerrors.ErrPincodeNotFound)}

	rec := performLookup(t, stub, "?pincode=999999")

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "No location found for that pincode", body["error"])
}
