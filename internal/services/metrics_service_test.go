package services

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchPostMetricsArrayResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://instagram.com/p/abc", r.URL.Query().Get("postUrl"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"likesCount": 10, "commentsCount": 2, "ownerUsername": "x"}]`))
	}))
	defer srv.Close()

	svc := NewMetricsService(srv.URL, 5*time.Second)
	metrics, err := svc.FetchPostMetrics("https://instagram.com/p/abc")

	require.NoError(t, err)
	assert.Equal(t, 10, metrics.Likes)
	assert.Equal(t, 2, metrics.Comments)
	assert.Equal(t, 0, metrics.Views)
	assert.Equal(t, "", metrics.Name)
	assert.Equal(t, "x", metrics.Username)
}

func TestFetchPostMetricsObjectResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"likesCount": 7, "videoPlayCount": 300, "ownerFullName": "Sarah J", "ownerUsername": "sarahj"}`))
	}))
	defer srv.Close()

	svc := NewMetricsService(srv.URL, 5*time.Second)
	metrics, err := svc.FetchPostMetrics("https://instagram.com/p/xyz")

	require.NoError(t, err)
	assert.Equal(t, 7, metrics.Likes)
	assert.Equal(t, 0, metrics.Comments)
	assert.Equal(t, 300, metrics.Views)
	assert.Equal(t, "Sarah J", metrics.Name)
	assert.Equal(t, "sarahj", metrics.Username)
}

func TestFetchPostMetricsEmptyURL(t *testing.T) {
	svc := NewMetricsService("http://example.invalid", 5*time.Second)

	_, err := svc.FetchPostMetrics("")

	assert.ErrorIs(t, err, ErrPostURLRequired)
}

func TestFetchPostMetricsNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow not found", http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewMetricsService(srv.URL, 5*time.Second)
	_, err := svc.FetchPostMetrics("https://instagram.com/p/abc")

	var statusErr *WebhookStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchPostMetricsTimeout(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	svc := NewMetricsService(srv.URL, 50*time.Millisecond)

	start := time.Now()
	_, err := svc.FetchPostMetrics("https://instagram.com/p/slow")
	elapsed := time.Since(start)

	assert.True(t, errors.Is(err, ErrWebhookTimeout), "expected timeout error, got %v", err)
	assert.Less(t, elapsed, 2*time.Second)
}

func TestNormalizeMetricsEmptyPayload(t *testing.T) {
	metrics := normalizeMetrics([]interface{}{})

	assert.Equal(t, 0, metrics.Likes)
	assert.Equal(t, "", metrics.Username)
}
