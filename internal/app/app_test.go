package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "reddit-explorer/docs"
	"reddit-explorer/internal/client"
	"reddit-explorer/internal/config"
	"reddit-explorer/internal/mocks"
	"reddit-explorer/internal/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := &config.Config{ServerPort: "0", RequestTimeout: 5 * time.Second}
	mockClient := &mocks.MockContentClient{
		SearchPostsFunc: func(ctx context.Context, query string, sort client.SearchSort, limit int) ([]models.Post, error) {
			return []models.Post{{
				ID:           "p1",
				Subreddit:    "golang",
				Title:        "Fresh post",
				Score:        500,
				CommentCount: 80,
				CreatedAt:    time.Now().UTC().Add(-time.Hour),
			}}, nil
		},
	}

	a, err := New(cfg, mockClient)
	require.NoError(t, err)
	return a
}

func serve(a *App, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.Echo.ServeHTTP(rec, req)
	return rec
}

func TestRoutesAreRegistered(t *testing.T) {
	a := newTestApp(t)

	routes := map[string]bool{}
	for _, r := range a.Echo.Routes() {
		routes[r.Method+" "+r.Path] = true
	}

	for _, want := range []string{
		"GET /",
		"GET /healthz",
		"GET /metrics",
		"GET /swagger/*",
		"POST /search_subreddits",
		"POST /trending_posts",
		"POST /search_posts",
		"POST /high_engagement_posts",
		"POST /high_engagement_posts/chart",
	} {
		assert.True(t, routes[want], "missing route %s", want)
	}
}

func TestIndexPage(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Contains(t, rec.Body.String(), "Reddit Explorer")
}

func TestHighEngagementEndToEnd(t *testing.T) {
	a := newTestApp(t)

	form := url.Values{"query": {"go"}, "min_upvotes": {"100"}, "min_comments": {"10"}, "days": {"1"}}
	req := httptest.NewRequest(http.MethodPost, "/high_engagement_posts", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)

	rec := serve(a, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"p1"`)
	assert.Contains(t, rec.Body.String(), `"scanned":1`)
}

func TestMetricsEndpoint(t *testing.T) {
	a := newTestApp(t)
	serve(a, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "explorer_http_requests_total")
}

func TestSwaggerDoc(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reddit Explorer API")
	assert.Contains(t, rec.Body.String(), "/high_engagement_posts")
}

func TestUnknownRoute(t *testing.T) {
	a := newTestApp(t)

	rec := serve(a, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
