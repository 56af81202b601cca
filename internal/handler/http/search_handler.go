// internal/handler/http/search_handler.go
package http

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/chart"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
	"reddit-explorer/internal/view"
)

// Form defaults of the high engagement search.
const (
	DefaultMinUpvotes  = 10
	DefaultMinComments = 0
	DefaultDays        = 7
)

type SearchHandler struct {
	svc     explorer.ExplorerService
	timeout time.Duration
}

func NewSearchHandler(svc explorer.ExplorerService, timeout time.Duration) *SearchHandler {
	return &SearchHandler{svc: svc, timeout: timeout}
}

// SearchPosts godoc
// @Summary Search Reddit for posts
// @Description Searches all of Reddit by relevance and returns up to 10 posts
// @Tags search
// @Accept x-www-form-urlencoded
// @Produce json,html
// @Param query formData string true "Search query string"
// @Success 200 {object} models.SearchResponse
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /search_posts [post]
func (h *SearchHandler) SearchPosts(c echo.Context) error {
	req := models.SearchRequest{Query: strings.TrimSpace(c.FormValue("query"))}
	page := view.PageData{Query: req.Query}

	if err := c.Validate(&req); err != nil {
		return respondError(c, err, page)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	startTime := time.Now()

	posts, err := h.svc.SearchPosts(ctx, req.Query)
	if err != nil {
		return respondError(c, err, page)
	}

	page.Posts = posts
	return respond(c, page, models.SearchResponse{
		Query: req.Query,
		Posts: nonNil(posts),
		Meta: models.ResponseMeta{
			RequestedLimit:   explorer.PostSearchLimit,
			Count:            len(posts),
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		},
	})
}

// HighEngagementPosts godoc
// @Summary Search posts and keep the high engagement ones
// @Description Searches all of Reddit for 50 posts and keeps those meeting every threshold
// @Tags search
// @Accept x-www-form-urlencoded
// @Produce json,html
// @Param query formData string true "Search query string"
// @Param min_upvotes formData int false "Minimum score" default(10)
// @Param min_comments formData int false "Minimum number of comments" default(0)
// @Param days formData int false "Maximum post age in days" default(7)
// @Success 200 {object} models.EngagementResponse
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /high_engagement_posts [post]
func (h *SearchHandler) HighEngagementPosts(c echo.Context) error {
	q, err := bindEngagementQuery(c)
	page := view.PageData{Engagement: &q}
	if err != nil {
		return respondError(c, err, page)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	startTime := time.Now()

	res, err := h.svc.HighEngagementPosts(ctx, q)
	if err != nil {
		return respondError(c, err, page)
	}

	dated := view.Dated(res.Posts)
	page.FilteredPosts = dated
	page.Scanned = res.Scanned
	return respond(c, page, models.EngagementResponse{
		Query:   q,
		Posts:   dated,
		Scanned: res.Scanned,
		Meta: models.ResponseMeta{
			RequestedLimit:   explorer.EngagementScanLimit,
			Count:            len(dated),
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		},
	})
}

// EngagementChart godoc
// @Summary Chart the high engagement posts
// @Description Same search as /high_engagement_posts rendered as a bar chart of upvotes and comments
// @Tags search
// @Accept x-www-form-urlencoded
// @Produce html
// @Param query formData string true "Search query string"
// @Param min_upvotes formData int false "Minimum score" default(10)
// @Param min_comments formData int false "Minimum number of comments" default(0)
// @Param days formData int false "Maximum post age in days" default(7)
// @Success 200 {string} string "HTML chart page"
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /high_engagement_posts/chart [post]
func (h *SearchHandler) EngagementChart(c echo.Context) error {
	q, err := bindEngagementQuery(c)
	page := view.PageData{Engagement: &q}
	if err != nil {
		return respondError(c, err, page)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	res, err := h.svc.HighEngagementPosts(ctx, q)
	if err != nil {
		return respondError(c, err, page)
	}

	var buf bytes.Buffer
	if err := chart.Render(&buf, q, res.Posts); err != nil {
		return respondError(c, err, page)
	}
	return c.HTMLBlob(http.StatusOK, buf.Bytes())
}

// bindEngagementQuery reads the thresholds, applying form defaults to empty
// fields. The returned query holds whatever was parsed even on error.
func bindEngagementQuery(c echo.Context) (models.EngagementQuery, error) {
	q := models.EngagementQuery{
		Query:       strings.TrimSpace(c.FormValue("query")),
		MinScore:    DefaultMinUpvotes,
		MinComments: DefaultMinComments,
		Days:        DefaultDays,
	}

	var err error
	if q.MinScore, err = formInt(c, "min_upvotes", DefaultMinUpvotes); err != nil {
		return q, err
	}
	if q.MinComments, err = formInt(c, "min_comments", DefaultMinComments); err != nil {
		return q, err
	}
	if q.Days, err = formInt(c, "days", DefaultDays); err != nil {
		return q, err
	}

	if err := c.Validate(&q); err != nil {
		return q, err
	}
	return q, nil
}
