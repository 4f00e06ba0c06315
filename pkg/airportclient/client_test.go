package airportclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"flightservice/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchAirports(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/air/airports/key123", r.URL.Path)
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "demo", user)
		assert.Equal(t, "secret", pass)

		_, _ = w.Write([]byte(`{
			"GRU": {"city": "São Paulo", "lat": -23.425669, "lon": -46.481926, "state": "SP"},
			"STM": {"city": "Santarém", "lat": -2.424886, "lon": -54.78639, "state": "PA"}
		}`))
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "key123", "demo", "secret", logger.Nop())
	entries, err := c.FetchAirports(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, Entry{City: "Santarém", Lat: -2.424886, Lon: -54.78639, State: "PA"}, entries["STM"])
}

func TestFetchAirports_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), srv.URL, "key123", "demo", "secret", logger.Nop())
	_, err := c.FetchAirports(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "503")
}
