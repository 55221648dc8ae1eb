package airports

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trip-route-service/internal/domain"
)

func TestHTTPDirectoryNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/airports/nearby", r.URL.Path)
		assert.Equal(t, "35.680000", r.URL.Query().Get("lat"))
		assert.Equal(t, "139.760000", r.URL.Query().Get("lng"))
		assert.Equal(t, "150.0", r.URL.Query().Get("radius_km"))
		assert.Equal(t, "test-key", r.Header.Get("Authorization"))

		fmt.Fprint(w, `{"airports":[
			{"iata_code":"HND","name":"Tokyo Haneda","latitude":35.5494,"longitude":139.7798,"tier":1},
			{"iata_code":"","name":"nameless entry is dropped"},
			{"iata_code":"NRT","name":"Narita","latitude":35.7719,"longitude":140.3929,"tier":1}
		]}`)
	}))
	defer srv.Close()

	dir, err := NewHTTPDirectory(srv.URL, "test-key")
	require.NoError(t, err)

	got, err := dir.Nearby(context.Background(), domain.Coordinates{Lat: 35.68, Lng: 139.76}, 150)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "HND", got[0].Code)
	assert.Equal(t, "Tokyo Haneda", got[0].Name)
	assert.Equal(t, 1, got[0].Tier)
	assert.InDelta(t, 35.5494, got[0].Location.Lat, 1e-6)
	assert.Equal(t, "NRT", got[1].Code)
}

func TestHTTPDirectoryRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "temporarily unavailable", http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"airports":[{"iata_code":"HND","name":"Tokyo Haneda","latitude":35.5494,"longitude":139.7798,"tier":1}]}`)
	}))
	defer srv.Close()

	dir, err := NewHTTPDirectory(srv.URL, "")
	require.NoError(t, err)

	got, err := dir.Nearby(context.Background(), domain.Coordinates{Lat: 35.68, Lng: 139.76}, 150)
	require.NoError(t, err, "the third attempt succeeds")
	require.Len(t, got, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestHTTPDirectoryDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "bad radius", http.StatusBadRequest)
	}))
	defer srv.Close()

	dir, err := NewHTTPDirectory(srv.URL, "")
	require.NoError(t, err)

	_, err = dir.Nearby(context.Background(), domain.Coordinates{Lat: 35.68, Lng: 139.76}, 150)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryUnavailable))
	assert.Equal(t, int32(1), calls.Load(), "4xx responses are not retried")
}

func TestHTTPDirectoryExhaustsRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	dir, err := NewHTTPDirectory(srv.URL, "")
	require.NoError(t, err)

	_, err = dir.Nearby(context.Background(), domain.Coordinates{Lat: 35.68, Lng: 139.76}, 150)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDirectoryUnavailable))
	assert.Equal(t, int32(3), calls.Load())
}

func TestNewHTTPDirectoryRequiresBaseURL(t *testing.T) {
	_, err := NewHTTPDirectory("", "key")
	assert.Error(t, err)
}
