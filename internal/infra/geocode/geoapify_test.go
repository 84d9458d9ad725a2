package geocode

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"resto/config"
	domainerrors "resto/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func geocoderFor(endpoint string) *geoapifyGeocoder {
	cfg := &config.Config{
		Geocode: &config.GeocodeConfig{
			Endpoint: endpoint,
			APIKey:   "test-key",
		},
	}

	return NewGeocoder(cfg, testLogger()).(*geoapifyGeocoder)
}

func TestNewGeocoder_DisabledWithoutAPIKey(t *testing.T) {
	assert.Nil(t, NewGeocoder(&config.Config{}, testLogger()))
	assert.Nil(t, NewGeocoder(&config.Config{Geocode: &config.GeocodeConfig{Endpoint: "https://example.test"}}, testLogger()))
}

func TestLookupPincode_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "682001", r.URL.Query().Get("text"))
		assert.Equal(t, "postcode", r.URL.Query().Get("type"))
		assert.Equal(t, "test-key", r.URL.Query().Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[{"properties":{"city":"Kochi","state":"Kerala","country":"India"}}]}`))
	}))
	defer server.Close()

	location, err := geocoderFor(server.URL).LookupPincode(context.Background(), "682001")
	require.NoError(t, err)
	assert.Equal(t, "Kochi", location.City)
	assert.Equal(t, "Kerala", location.State)
	assert.Equal(t, "India", location.Country)
}

func TestLookupPincode_NoMatches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	_, err := geocoderFor(server.URL).LookupPincode(context.Background(), "999999")
	assert.ErrorIs(t, err, domainerrors.ErrPincodeNotFound)
}

func TestLookupPincode_ProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := geocoderFor(server.URL).LookupPincode(context.Background(), "682001")
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeFailed)
}

func TestLookupPincode_ProviderUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	server.Close()

	_, err := geocoderFor(server.URL).LookupPincode(context.Background(), "682001")
	assert.ErrorIs(t, err, domainerrors.ErrGeocodeFailed)
}
