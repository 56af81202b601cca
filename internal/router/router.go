// internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"reddit-explorer/internal/explorer"
	"reddit-explorer/internal/handler/http"
)

func NewRouter(e *echo.Echo, svc explorer.ExplorerService, requestTimeout time.Duration) {
	home := http.NewHomeHandler()
	sub := http.NewSubredditHandler(svc, requestTimeout)
	pst := http.NewPostHandler(svc, requestTimeout)
	sch := http.NewSearchHandler(svc, requestTimeout)

	e.GET("/", home.Index)
	e.GET("/healthz", home.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/search_subreddits", sub.SearchSubreddits)
	e.POST("/trending_posts", pst.TrendingPosts)
	e.POST("/search_posts", sch.SearchPosts)
	e.POST("/high_engagement_posts", sch.HighEngagementPosts)
	e.POST("/high_engagement_posts/chart", sch.EngagementChart)
}
