// Package view renders the explorer's HTML page.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/models"
)

// IndexTemplate is the single page every route renders into.
const IndexTemplate = "index.html"

// DateLayout is the display format of post creation dates.
const DateLayout = "2006-01-02 15:04:05 UTC"

//go:embed templates/*.html
var templateFS embed.FS

// PageData carries whichever result section a route produced. Zero-valued
// sections are not rendered.
type PageData struct {
	Error string

	Keyword    string
	Subreddits []models.Subreddit

	SubredditName string
	Sort          string
	Trending      []models.Post

	Query string
	Posts []models.Post

	Engagement    *models.EngagementQuery
	FilteredPosts []models.DatedPost
	Scanned       int
}

// SortOptions lists the listing sorts offered by the trending form.
func (PageData) SortOptions() []string {
	modes := client.SortModes()
	out := make([]string, 0, len(modes))
	for _, m := range modes {
		out = append(out, m.String())
	}
	return out
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates *template.Template
}

var _ echo.Renderer = (*Renderer)(nil)

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").Funcs(template.FuncMap{
		"formatDate": FormatDate,
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{templates: t}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

// FormatDate renders t in UTC using DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Dated pairs each post with its display date.
func Dated(posts []models.Post) []models.DatedPost {
	out := make([]models.DatedPost, 0, len(posts))
	for _, p := range posts {
		out = append(out, models.DatedPost{Post: p, Date: FormatDate(p.CreatedAt)})
	}
	return out
}
