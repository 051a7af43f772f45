package nearby

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const overpassFixture = `{
  "elements": [
    {"type": "node", "lat": 28.6129, "lon": 77.2295, "tags": {"tourism": "attraction", "name": "India Gate"}},
    {"type": "node", "lat": 28.6562, "lon": 77.2410, "tags": {"tourism": "attraction", "name": "Red Fort"}},
    {"type": "node", "lat": 28.6100, "lon": 77.2300, "tags": {"tourism": "hotel"}},
    {"type": "node", "lat": 28.6139, "lon": 77.2090, "tags": {"tourism": "museum", "name": "National Museum"}}
  ]
}`

func TestFindNearby(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/interpreter", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.PostForm.Get("data"), `node["tourism"]`)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(overpassFixture))
	}))
	defer srv.Close()

	svc := NewServiceWithBaseURL(srv.URL, zap.NewNop())
	places, err := svc.FindNearby(context.Background(), 28.6139, 77.2090, 5000)
	require.NoError(t, err)

	// The unnamed node is dropped, the rest come back sorted by distance
	// from the query point.
	require.Len(t, places, 3)
	assert.Equal(t, "National Museum", places[0].Name)
	assert.Equal(t, "India Gate", places[1].Name)
	assert.Equal(t, "Red Fort", places[2].Name)
	assert.Zero(t, places[0].DistanceKm)
	assert.Greater(t, places[2].DistanceKm, places[1].DistanceKm)
}

func TestFindNearbyCachesResults(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		_, _ = w.Write([]byte(overpassFixture))
	}))
	defer srv.Close()

	svc := NewServiceWithBaseURL(srv.URL, zap.NewNop())
	_, err := svc.FindNearby(context.Background(), 28.6139, 77.2090, 5000)
	require.NoError(t, err)
	_, err = svc.FindNearby(context.Background(), 28.6139, 77.2090, 5000)
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
}

func TestFindNearbyBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	svc := NewServiceWithBaseURL(srv.URL, zap.NewNop())
	_, err := svc.FindNearby(context.Background(), 28.6139, 77.2090, 5000)
	assert.Error(t, err)
}
