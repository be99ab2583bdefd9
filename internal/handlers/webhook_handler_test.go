package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/the88gb/influencer-dashboard-backend/internal/models"
	"github.com/the88gb/influencer-dashboard-backend/internal/services"
)

func newWebhookRouter(webhookURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	metricsService := services.NewMetricsService(webhookURL, 5*time.Second)
	handler := NewWebhookHandler(metricsService)

	r := gin.New()
	r.POST("/webhook/fetch-post-metrics", handler.FetchPostMetrics)
	return r
}

func TestFetchPostMetricsEndpoint(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"likesCount": 10, "commentsCount": 2, "ownerUsername": "x"}]`))
	}))
	defer stub.Close()

	r := newWebhookRouter(stub.URL)

	req := httptest.NewRequest(http.MethodPost, "/webhook/fetch-post-metrics",
		strings.NewReader(`{"postUrl": "https://instagram.com/p/abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var metrics models.PostMetrics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &metrics))
	assert.Equal(t, 10, metrics.Likes)
	assert.Equal(t, 2, metrics.Comments)
	assert.Equal(t, 0, metrics.Views)
	assert.Equal(t, "", metrics.Name)
	assert.Equal(t, "x", metrics.Username)
}

func TestFetchPostMetricsEndpointMissingURL(t *testing.T) {
	r := newWebhookRouter("http://example.invalid")

	req := httptest.NewRequest(http.MethodPost, "/webhook/fetch-post-metrics",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Post URL is required")
}

func TestFetchPostMetricsEndpointUpstreamFailure(t *testing.T) {
	stub := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer stub.Close()

	r := newWebhookRouter(stub.URL)

	req := httptest.NewRequest(http.MethodPost, "/webhook/fetch-post-metrics",
		strings.NewReader(`{"postUrl": "https://instagram.com/p/abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to fetch post metrics")
}
