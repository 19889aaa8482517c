package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var woodbridge = Location{Latitude: 40.55, Longitude: -74.28}

func newServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestClient_URL(t *testing.T) {
	c := NewClient(http.DefaultClient, "https://api.open-meteo.com/v1/forecast")

	got, err := c.URL(woodbridge)
	require.NoError(t, err)
	assert.Equal(t,
		"https://api.open-meteo.com/v1/forecast?current_weather=true&latitude=40.55&longitude=-74.28&temperature_unit=fahrenheit",
		got,
	)
}

func TestClient_Current_SendsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "40.55", q.Get("latitude"))
		assert.Equal(t, "-74.28", q.Get("longitude"))
		assert.Equal(t, "true", q.Get("current_weather"))
		assert.Equal(t, "fahrenheit", q.Get("temperature_unit"))
		w.Write([]byte(`{"current_weather":{"temperature":72.5,"windspeed":3.1}}`))
	}))
	defer server.Close()

	c := NewClient(server.Client(), server.URL+"/v1/forecast")
	reading, err := c.Current(context.Background(), woodbridge)
	require.NoError(t, err)
	assert.Equal(t, 72.5, reading.TemperatureFahrenheit)
}

func TestClient_Current_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		stage  Stage
	}{
		{"server error", http.StatusInternalServerError, `{"error":true}`, StageStatus},
		{"not found", http.StatusNotFound, ``, StageStatus},
		{"malformed json", http.StatusOK, `{"current_weather":`, StageDecode},
		{"non numeric temperature", http.StatusOK, `{"current_weather":{"temperature":"warm"}}`, StageDecode},
		{"missing current_weather", http.StatusOK, `{"hourly":{}}`, StageMissingField},
		{"missing temperature", http.StatusOK, `{"current_weather":{"windspeed":4}}`, StageMissingField},
		{"null temperature", http.StatusOK, `{"current_weather":{"temperature":null}}`, StageMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newServer(t, tt.status, tt.body)
			c := NewClient(server.Client(), server.URL)

			_, err := c.Current(context.Background(), woodbridge)
			require.Error(t, err)

			var fetchErr *FetchError
			require.True(t, errors.As(err, &fetchErr))
			assert.Equal(t, tt.stage, fetchErr.Stage)
		})
	}
}

func TestClient_Current_TransportError(t *testing.T) {
	server := newServer(t, http.StatusOK, `{}`)
	url := server.URL
	server.Close()

	c := NewClient(&http.Client{Timeout: time.Second}, url)
	_, err := c.Current(context.Background(), woodbridge)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, StageTransport, fetchErr.Stage)
}

func TestClient_Current_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	c := NewClient(&http.Client{Timeout: 50 * time.Millisecond}, server.URL)
	_, err := c.Current(context.Background(), woodbridge)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, StageTransport, fetchErr.Stage)
}

func TestClient_Current_BadBaseURL(t *testing.T) {
	c := NewClient(http.DefaultClient, "://nope")
	_, err := c.Current(context.Background(), woodbridge)

	var fetchErr *FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Equal(t, StageRequest, fetchErr.Stage)
}
