// internal/handler/http/subreddit_handler.go
package http

import (
	"context"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
	"reddit-explorer/internal/view"
)

type SubredditHandler struct {
	svc     explorer.ExplorerService
	timeout time.Duration
}

func NewSubredditHandler(svc explorer.ExplorerService, timeout time.Duration) *SubredditHandler {
	return &SubredditHandler{svc: svc, timeout: timeout}
}

// SearchSubreddits godoc
// @Summary Find subreddits by keyword
// @Description Returns up to 10 subreddits matching the keyword
// @Tags subreddit
// @Accept x-www-form-urlencoded
// @Produce json,html
// @Param keyword formData string true "Keyword to search for"
// @Success 200 {object} models.SubredditSearchResponse
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /search_subreddits [post]
func (h *SubredditHandler) SearchSubreddits(c echo.Context) error {
	req := models.SubredditSearchRequest{Keyword: strings.TrimSpace(c.FormValue("keyword"))}
	page := view.PageData{Keyword: req.Keyword}

	if err := c.Validate(&req); err != nil {
		return respondError(c, err, page)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	startTime := time.Now()

	subs, err := h.svc.SearchSubreddits(ctx, req.Keyword)
	if err != nil {
		return respondError(c, err, page)
	}

	page.Subreddits = subs
	return respond(c, page, models.SubredditSearchResponse{
		Keyword:    req.Keyword,
		Subreddits: nonNil(subs),
		Meta: models.ResponseMeta{
			RequestedLimit:   explorer.SubredditSearchLimit,
			Count:            len(subs),
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		},
	})
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
