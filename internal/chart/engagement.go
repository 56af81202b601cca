// Package chart draws engagement results as an interactive bar chart.
package chart

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"reddit-explorer/internal/models"
)

const maxLabelRunes = 32

// EngagementBar builds a grouped bar chart with one category per post and
// a score and a comment series.
func EngagementBar(q models.EngagementQuery, posts []models.Post) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "High Engagement Posts",
			Theme:     types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("High engagement posts for %q", q.Query),
			Subtitle: fmt.Sprintf("min upvotes %d, min comments %d, last %d days", q.MinScore, q.MinComments, q.Days),
		}),
	)

	labels := make([]string, 0, len(posts))
	scores := make([]opts.BarData, 0, len(posts))
	comments := make([]opts.BarData, 0, len(posts))
	for _, p := range posts {
		labels = append(labels, label(p.Title))
		scores = append(scores, opts.BarData{Value: p.Score})
		comments = append(comments, opts.BarData{Value: p.CommentCount})
	}

	bar.SetXAxis(labels).
		AddSeries("Upvotes", scores).
		AddSeries("Comments", comments)
	return bar
}

// Render writes the chart page for posts to w.
func Render(w io.Writer, q models.EngagementQuery, posts []models.Post) error {
	return EngagementBar(q, posts).Render(w)
}

func label(title string) string {
	if utf8.RuneCountInString(title) <= maxLabelRunes {
		return title
	}
	runes := []rune(title)
	return string(runes[:maxLabelRunes-1]) + "…"
}
