// internal/handler/http/post_handler.go
package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/models"
	"reddit-explorer/internal/view"
)

type PostHandler struct {
	svc     explorer.ExplorerService
	timeout time.Duration
}

func NewPostHandler(svc explorer.ExplorerService, timeout time.Duration) *PostHandler {
	return &PostHandler{svc: svc, timeout: timeout}
}

// TrendingPosts godoc
// @Summary List trending posts of a subreddit
// @Description Returns the first 5 posts of a subreddit listing
// @Tags post
// @Accept x-www-form-urlencoded
// @Produce json,html
// @Param subreddit formData string true "Subreddit name without the r/ prefix"
// @Param sort_by formData string false "hot, new, top, rising, controversial or default" default(hot)
// @Success 200 {object} models.TrendingResponse
// @Failure 400 {object} models.HTTPError
// @Failure 502 {object} models.HTTPError
// @Router /trending_posts [post]
func (h *PostHandler) TrendingPosts(c echo.Context) error {
	req := models.TrendingRequest{
		Subreddit: strings.TrimPrefix(strings.TrimSpace(c.FormValue("subreddit")), "r/"),
		SortBy:    c.FormValue("sort_by"),
	}
	page := view.PageData{SubredditName: req.Subreddit, Sort: strings.ToLower(strings.TrimSpace(req.SortBy))}

	if err := c.Validate(&req); err != nil {
		return respondError(c, err, page)
	}

	sort, err := client.ParseSortMode(req.SortBy)
	if err != nil {
		return respondError(c, echo.NewHTTPError(http.StatusBadRequest, err.Error()), page)
	}
	page.Sort = sort.String()

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	startTime := time.Now()

	posts, err := h.svc.TrendingPosts(ctx, req.Subreddit, sort)
	if err != nil {
		return respondError(c, err, page)
	}

	page.Trending = posts
	return respond(c, page, models.TrendingResponse{
		Subreddit: req.Subreddit,
		Sort:      sort.String(),
		Posts:     nonNil(posts),
		Meta: models.ResponseMeta{
			RequestedLimit:   explorer.TrendingLimit,
			Count:            len(posts),
			ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		},
	})
}
