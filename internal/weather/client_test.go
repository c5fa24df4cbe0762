package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		assert.Equal(t, "41.29", r.URL.Query().Get("latitude"))
		assert.Equal(t, "69.23", r.URL.Query().Get("longitude"))
		assert.Equal(t, "true", r.URL.Query().Get("current_weather"))
		w.Write([]byte(`{"current_weather":{"temperature":21.4,"windspeed":13.7,"weathercode":3}}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(srv.URL)
	reading, err := client.Fetch(context.Background(), 41.29, 69.23)
	require.NoError(t, err)

	assert.Equal(t, "Code 3", reading.Summary)
	assert.Equal(t, 21.4, reading.TemperatureC)
	assert.Equal(t, 13.7, reading.WindKph)
	assert.False(t, reading.FetchedAt.IsZero())
}

func TestFetchErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "server error status",
			status: http.StatusInternalServerError,
			body:   `{"current_weather":{"temperature":21.4,"windspeed":13.7,"weathercode":3}}`,
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `{"current_weather":`,
		},
		{
			name:   "missing current_weather",
			status: http.StatusOK,
			body:   `{"latitude":41.29}`,
		},
		{
			name:   "missing numeric fields",
			status: http.StatusOK,
			body:   `{"current_weather":{"weathercode":3}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewClientWithBaseURL(srv.URL)
			_, err := client.Fetch(context.Background(), 41.29, 69.23)
			assert.Error(t, err)
		})
	}
}

func TestFetchFollowsRedirect(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"current_weather":{"temperature":5.0,"windspeed":2.0,"weathercode":0}}`))
	}))
	defer target.Close()

	redirecting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL+r.URL.RequestURI(), http.StatusFound)
	}))
	defer redirecting.Close()

	client := NewClientWithBaseURL(redirecting.URL)
	reading, err := client.Fetch(context.Background(), 41.29, 69.23)
	require.NoError(t, err)
	assert.Equal(t, "Code 0", reading.Summary)
	assert.Equal(t, 5.0, reading.TemperatureC)
}
