// internal/handler/http/home_handler.go
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/view"
)

type HomeHandler struct{}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Index godoc
// @Summary Explorer page
// @Description Renders the page with every search form and no results
// @Tags home
// @Produce html
// @Success 200 {string} string "HTML page"
// @Router / [get]
func (h *HomeHandler) Index(c echo.Context) error {
	return c.Render(http.StatusOK, view.IndexTemplate, view.PageData{})
}

// Health godoc
// @Summary Liveness probe
// @Tags home
// @Produce json
// @Success 200 {object} map[string]string
// @Router /healthz [get]
func (h *HomeHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
