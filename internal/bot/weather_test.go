package bot

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/j0lvera/botcenter/internal/weather"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var njLocation = weather.Location{Latitude: 40.55, Longitude: -74.28}

func newSkyScan(t *testing.T, url string, logs *bytes.Buffer) *WeatherFetcher {
	t.Helper()
	logger := zerolog.New(logs)
	client := weather.NewClient(&http.Client{Timeout: time.Second}, url)
	return NewWeatherFetcher("SkyScan", "3.0", "Woodbridge, NJ", njLocation, client, &logger)
}

func TestFetchLiveWeather_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":72.5}}`))
	}))
	defer server.Close()

	var logs bytes.Buffer
	report, err := newSkyScan(t, server.URL, &logs).FetchLiveWeather(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Report{Region: "Woodbridge, NJ", TemperatureFahrenheit: 72.5}, report)
}

// Malformed payloads and network errors look the same to the caller.
func TestFetchLiveWeather_FailuresAreIndistinguishable(t *testing.T) {
	malformed := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather": nope`))
	}))
	defer malformed.Close()

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	downURL := down.URL
	down.Close()

	var malformedLogs, downLogs bytes.Buffer
	r1, err1 := newSkyScan(t, malformed.URL, &malformedLogs).FetchLiveWeather(context.Background())
	r2, err2 := newSkyScan(t, downURL, &downLogs).FetchLiveWeather(context.Background())

	assert.ErrorIs(t, err1, ErrWeatherUnavailable)
	assert.ErrorIs(t, err2, ErrWeatherUnavailable)
	assert.Equal(t, err1, err2)
	assert.Equal(t, Report{}, r1)
	assert.Equal(t, Report{}, r2)

	// The cause is still visible in the logs.
	assert.Contains(t, malformedLogs.String(), `"stage":"decode"`)
	assert.Contains(t, downLogs.String(), `"stage":"transport"`)
}

func TestFetchLiveWeather_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	var logs bytes.Buffer
	_, err := newSkyScan(t, server.URL, &logs).FetchLiveWeather(context.Background())
	assert.ErrorIs(t, err, ErrWeatherUnavailable)
	assert.Contains(t, logs.String(), `"stage":"status"`)
}

func TestFetchLiveWeather_CanceledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":50}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var logs bytes.Buffer
	_, err := newSkyScan(t, server.URL, &logs).FetchLiveWeather(ctx)
	assert.ErrorIs(t, err, ErrWeatherUnavailable)
}

func TestWeatherFetcher_DefaultIntroduce(t *testing.T) {
	var logs bytes.Buffer
	w := newSkyScan(t, "http://unused", &logs)
	assert.Equal(t, "Hello! I am SkyScan, running on version 3.0.", w.Introduce())
}

func TestBots_SatisfyBot(t *testing.T) {
	var logs bytes.Buffer
	bots := []Bot{
		newChatty(),
		newSkyScan(t, "http://unused", &logs),
		newGlobeTrotter(),
	}

	names := make([]string, 0, len(bots))
	for _, b := range bots {
		names = append(names, b.Name()+" "+b.Version())
	}
	assert.Equal(t, []string{"Chatty 2.1", "SkyScan 3.0", "GlobeTrotter 1.0"}, names)
}
