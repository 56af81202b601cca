package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"reddit-explorer/internal/client"
	"reddit-explorer/internal/logging"
	"reddit-explorer/internal/models"
	"reddit-explorer/internal/view"
)

// wantsJSON reports whether the client asked for JSON instead of the page.
func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// respond writes body as JSON or renders page, depending on Accept.
func respond(c echo.Context, page view.PageData, body interface{}) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, body)
	}
	return c.Render(http.StatusOK, view.IndexTemplate, page)
}

// respondError maps err to a status and writes it in the negotiated format.
// HTML responses keep the submitted inputs and show no results.
func respondError(c echo.Context, err error, page view.PageData) error {
	status, msg := classify(err)
	if status >= http.StatusInternalServerError {
		logging.Error().Err(err).Str("route", c.Path()).Int("status", status).Msg("request failed")
	} else {
		logging.Debug().Err(err).Str("route", c.Path()).Msg("request rejected")
	}

	if wantsJSON(c) {
		return c.JSON(status, models.HTTPError{Code: status, Message: msg})
	}
	page.Error = msg
	return c.Render(status, view.IndexTemplate, page)
}

func classify(err error) (int, string) {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he.Code, fmt.Sprint(he.Message)
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "timed out waiting for Reddit"
	case errors.Is(err, client.ErrUpstream):
		return http.StatusBadGateway, fmt.Sprintf("Reddit API error: %v", err)
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// formInt reads an integer form field, returning def when it is empty.
func formInt(c echo.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.FormValue(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("invalid `%s`: must be a whole number", name))
	}
	return v, nil
}
