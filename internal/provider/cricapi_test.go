package provider

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestCricAPI_Disabled(t *testing.T) {
	c := NewCricAPIClient("https://api.cricapi.com/v1", "", testLogger())
	assert.False(t, c.Enabled())

	_, err := c.CurrentMatches(context.Background())
	assert.Error(t, err)
}

func TestCricAPI_CurrentMatches(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/currentMatches", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("apikey"))
		w.Write([]byte(`{
			"status": "success",
			"data": [
				{"id": "m1", "name": "India vs Australia", "status": "Live",
				 "venue": "MCG", "teams": ["India", "Australia"],
				 "matchStarted": true, "matchEnded": false}
			]
		}`))
	}))
	defer srv.Close()

	c := NewCricAPIClient(srv.URL, "test-key", testLogger())
	scores, err := c.CurrentMatches(context.Background())
	require.NoError(t, err)
	require.Len(t, scores, 1)
	assert.Equal(t, "India vs Australia", scores[0].Name)
	assert.True(t, scores[0].Started)
	assert.Equal(t, []string{"India", "Australia"}, scores[0].Teams)
}

func TestCricAPI_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewCricAPIClient(srv.URL, "test-key", testLogger())
	_, err := c.CurrentMatches(context.Background())
	assert.Error(t, err)
}

func TestCricAPI_FailureStatusField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "failure", "data": []}`))
	}))
	defer srv.Close()

	c := NewCricAPIClient(srv.URL, "test-key", testLogger())
	_, err := c.CurrentMatches(context.Background())
	assert.Error(t, err)
}
