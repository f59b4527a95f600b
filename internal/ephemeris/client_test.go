package ephemeris

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/planet/mars", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)

		var q Query
		require.NoError(t, json.NewDecoder(r.Body).Decode(&q))
		assert.Equal(t, 1990, q.Year)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"jd":2451545.0,"name":"Mars","lon":327.9,"lat":-1.1,"dist":1.85,"speed_lon":0.77}`))
	})
	mux.HandleFunc("/planet/", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unknown body"}`, http.StatusNotFound)
	})
	return httptest.NewServer(mux)
}

func TestPlanet(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)
	pos, err := client.Planet(context.Background(), "Mars", Query{
		Year: 1990, Month: 3, Day: 15, Hour: 12,
	})
	require.NoError(t, err)
	assert.Equal(t, "Mars", pos.Name)
	assert.InDelta(t, 327.9, pos.Longitude, 1e-9)
	assert.InDelta(t, 2451545.0, pos.JulianDay, 1e-9)
}

func TestPlanetErrorStatus(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)
	_, err := client.Planet(context.Background(), "Vulcan", Query{Year: 1990, Month: 3, Day: 15})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 404")
}

// A body the service cannot answer for is skipped, not fatal.
func TestPositionsSkipsFailures(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)
	out := client.Positions(context.Background(), []string{"Mars", "Vulcan"}, Query{
		Year: 1990, Month: 3, Day: 15, Hour: 12,
	})
	require.Len(t, out, 1)
	assert.Equal(t, "Mars", out["Mars"].Name)
}

func TestHealth(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.NoError(t, client.Health(context.Background()))

	srv.Close()
	assert.Error(t, client.Health(context.Background()))
}
