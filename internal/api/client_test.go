package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"cerebro/internal/intel"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m,
		// http.Transport keeps idle connections in a background goroutine.
		goleak.IgnoreTopFunction("net/http.(*persistConn).readLoop"),
		goleak.IgnoreTopFunction("net/http.(*persistConn).writeLoop"),
	)
}

func fastRetry() RetryConfig {
	return RetryConfig{
		MaxRetries:    2,
		InitialDelay:  time.Millisecond,
		MaxDelay:      5 * time.Millisecond,
		BackoffFactor: 2.0,
	}
}

func TestNewValidatesBaseURL(t *testing.T) {
	_, err := New("not a url")
	assert.Error(t, err)

	_, err = New("/relative")
	assert.Error(t, err)

	_, err = New("http://localhost:8080")
	assert.NoError(t, err)
}

func TestProjectsDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/projects", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"phantom","path":"/arch/phantom","description":"","status":"active","health_score":0.9,"intelligence_count":3},
			{"name":"cerebro-core","path":"/arch/cerebro","description":"","status":"maintenance","health_score":0.7,"intelligence_count":11}
		]`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRetry(fastRetry()))
	require.NoError(t, err)

	projects, err := c.Projects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "phantom", projects[0].Name)
	assert.Equal(t, intel.StatusActive, projects[0].Status)
	assert.Equal(t, 11, projects[1].IntelligenceCount)
}

func TestProjectEscapesName(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"name":"a b","path":"","description":"","status":"unknown","health_score":0,"intelligence_count":0}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRetry(fastRetry()))
	require.NoError(t, err)

	_, err = c.Project(context.Background(), "a b")
	require.NoError(t, err)
	assert.Equal(t, "/api/projects/a%20b", gotPath)
}

func TestGetRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"total_projects":4,"active_projects":2,"total_intelligence":40,"health_score":0.8}`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRetry(fastRetry()))
	require.NoError(t, err)

	status, err := c.Status(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, 4, status.TotalProjects)
}

func TestGetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "no such project", http.StatusNotFound)
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRetry(fastRetry()))
	require.NoError(t, err)

	_, err = c.Project(context.Background(), "ghost")
	require.Error(t, err)
	assert.False(t, IsTransient(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestGetGivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRetry(fastRetry()))
	require.NoError(t, err)

	_, err = c.Status(context.Background())
	require.Error(t, err)
	assert.True(t, IsTransient(err))
	// First attempt plus MaxRetries additional ones.
	assert.Equal(t, int32(3), calls.Load())
}

func TestMalformedPayloadIsInvalid(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRetry(fastRetry()))
	require.NoError(t, err)

	_, err = c.Briefing(context.Background())
	require.Error(t, err)
	assert.False(t, IsTransient(err))
}

func TestContextCancellationStopsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	c, err := New(srv.URL, WithRetry(RetryConfig{
		MaxRetries:    10,
		InitialDelay:  50 * time.Millisecond,
		MaxDelay:      time.Second,
		BackoffFactor: 2.0,
	}))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = c.Intelligence(ctx)
	require.Error(t, err)
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
